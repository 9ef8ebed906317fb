package commandmanager

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// LocalCommandManager executes commands on the machine firstboot runs on.
type LocalCommandManager struct {
	SudoPassword string
}

func (l *LocalCommandManager) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	start := time.Now()

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	if config.Sudo {
		cmdArgs := append([]string{"sudo", "-S", config.Command}, config.Args...)
		cmd = exec.CommandContext(ctx, cmdArgs[0], cmdArgs[1:]...)
		cmd.Stdin = strings.NewReader(l.SudoPassword + "\n")
	}
	if len(config.Env) > 0 {
		cmd.Env = append(os.Environ(), config.Env...)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithFields(log.Fields{
		"command": config.Command,
		"args":    strings.Join(config.Args, " "),
		"sudo":    config.Sudo,
	}).Debug("Running command")

	err := cmd.Run()

	result := CommandResult{
		Command:   config.Command,
		STDOUT:    stdout.String(),
		STDERR:    stderr.String(),
		ExitCode:  getExitCode(err),
		Duration:  time.Since(start),
		Timestamp: start,
	}

	// Check for sudo-related errors
	if strings.Contains(result.STDERR, "incorrect password") {
		return result, errors.New("sudo: incorrect password provided")
	}
	if strings.Contains(result.STDERR, "is not in the sudoers file") {
		return result, errors.New("sudo: user is not in the sudoers file")
	}

	if err != nil {
		log.WithFields(log.Fields{
			"command":  config.Command,
			"exitCode": result.ExitCode,
			"stderr":   result.STDERR,
		}).Debug("Command failed")
	}

	return result, err
}

func (l *LocalCommandManager) LookPath(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

func getExitCode(err error) int {
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			status := exitError.Sys().(syscall.WaitStatus)
			return status.ExitStatus()
		}
	}
	return 0
}
