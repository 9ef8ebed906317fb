package commandmanager

import (
	"context"
	"testing"
	"time"
)

func TestRunLocal(t *testing.T) {
	manager := LocalCommandManager{}

	config := CommandConfig{
		Command: "echo",
		Args:    []string{"hello"},
	}

	result, err := manager.Run(context.Background(), config)
	if err != nil {
		t.Errorf("Run failed: %v", err)
	}
	if result.STDOUT != "hello\n" {
		t.Errorf("Expected stdout %q, got %q", "hello\n", result.STDOUT)
	}
	if result.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", result.ExitCode)
	}
}

func TestRunExitCode(t *testing.T) {
	manager := LocalCommandManager{}

	config := CommandConfig{
		Command: "sh",
		Args:    []string{"-c", "exit 3"},
	}

	result, err := manager.Run(context.Background(), config)
	if err == nil {
		t.Errorf("Expected an error for a failing command")
	}
	if result.ExitCode != 3 {
		t.Errorf("Expected exit code 3, got %d", result.ExitCode)
	}
}

func TestRunTimeout(t *testing.T) {
	manager := LocalCommandManager{}

	config := CommandConfig{
		Command: "sleep",
		Args:    []string{"5"},
		Timeout: 50 * time.Millisecond,
	}

	_, err := manager.Run(context.Background(), config)
	if err == nil {
		t.Errorf("Expected an error when the command times out")
	}
}

func TestLookPath(t *testing.T) {
	manager := LocalCommandManager{}

	if !manager.LookPath("sh") {
		t.Errorf("Expected sh to be present on PATH")
	}
	if manager.LookPath("definitely-not-a-real-tool") {
		t.Errorf("Expected missing tool to be reported as absent")
	}
}
