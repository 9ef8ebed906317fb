// Package ledger persists the set of installation steps that have
// already completed, so an interrupted run can resume without redoing
// work. The record is a plain text file with one step name per line,
// written append-only: a torn final line can never equal a complete
// step name, so a crash mid-write is harmless.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
)

// Ledger records completed step names at a fixed per-user path.
type Ledger struct {
	path string
}

// New returns a ledger backed by the file at path.
func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Default returns the ledger at its well-known per-user location under
// the XDG state directory.
func Default() (*Ledger, error) {
	path, err := xdg.StateFile("firstboot/completed_steps")
	if err != nil {
		return nil, fmt.Errorf("resolving ledger path: %w", err)
	}
	return New(path), nil
}

// Path returns the location of the persisted record.
func (l *Ledger) Path() string {
	return l.path
}

// IsComplete reports whether the named step has already completed.
// A missing or unreadable record reads as "nothing done yet".
func (l *Ledger) IsComplete(name string) bool {
	_, ok := l.read()[name]
	return ok
}

// MarkComplete records the step as done. Marking an already-recorded
// step is a no-op. A persistence failure is returned so the caller can
// log it, but it only means the step will be re-run on a future resume;
// it must never abort the run.
func (l *Ledger) MarkComplete(name string) error {
	if l.IsComplete(name) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	entry := name + "\n"
	// A crash can leave a torn line without a trailing newline; start a
	// fresh line so the new entry cannot fuse with it.
	if data, err := os.ReadFile(l.path); err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
		entry = "\n" + entry
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("recording step %q: %w", name, err)
	}

	log.WithField("step", name).Debug("Step recorded as complete")
	return nil
}

// Clear removes the entire record. It is used when the user chooses to
// restart from scratch, and succeeds when no record exists.
func (l *Ledger) Clear() error {
	err := os.Remove(l.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing ledger: %w", err)
	}
	return nil
}

// HasAnyProgress reports whether the record exists and holds at least
// one completed step. It decides whether to offer resume-or-restart at
// start-up.
func (l *Ledger) HasAnyProgress() bool {
	return len(l.read()) > 0
}

// Completed returns the recorded step names in file order.
func (l *Ledger) Completed() []string {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}

func (l *Ledger) read() map[string]struct{} {
	set := make(map[string]struct{})
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).WithField("path", l.path).Warn("Ledger unreadable, treating as empty")
		}
		return set
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			set[line] = struct{}{}
		}
	}
	return set
}
