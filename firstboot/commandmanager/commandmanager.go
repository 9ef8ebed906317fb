package commandmanager

import (
	"context"
	"time"
)

// CommandConfig describes a single external command invocation.
type CommandConfig struct {
	Command string
	Args    []string
	Sudo    bool
	Env     []string
	Timeout time.Duration
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// CommandManager provides methods to execute commands on the local system.
type CommandManager interface {
	// Run executes a command and blocks until it finishes.
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)

	// LookPath reports whether the named tool is available on PATH.
	LookPath(tool string) bool
}
