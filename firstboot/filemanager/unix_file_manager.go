package filemanager

import (
	"context"
	"fmt"
	"os"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type UnixFileManager struct {
	CommandManager cm.CommandManager
}

func (ufm *UnixFileManager) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (ufm *UnixFileManager) Contains(path, pattern string) (bool, error) {
	result, err := ufm.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "grep",
		Args:    []string{"-qE", pattern, path},
	})
	if result.ExitCode == 1 {
		// grep: no match, not an error.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (ufm *UnixFileManager) ReplacePattern(path, sedExpr string) error {
	result, err := ufm.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "sed",
		Sudo:    true,
		Args:    []string{"-i", sedExpr, path},
	})
	if err != nil {
		return fmt.Errorf("editing %s: %s", path, result.STDERR)
	}
	return nil
}

func (ufm *UnixFileManager) AppendLineIfMissing(path, line string) error {
	// Fixed-string whole-line match, so config lines with regex
	// metacharacters compare literally.
	result, err := ufm.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "grep",
		Args:    []string{"-qxF", line, path},
	})
	if result.ExitCode == 0 && err == nil {
		return nil
	}

	_, err = ufm.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "sh",
		Sudo:    true,
		Args:    []string{"-c", fmt.Sprintf("echo %q >> %s", line, path)},
	})
	if err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return nil
}
