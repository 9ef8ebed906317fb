package packagemanager

import (
	"context"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type SnapManager struct {
	CommandManager cm.CommandManager
}

func (sm *SnapManager) Channel() string {
	return "snap"
}

func (sm *SnapManager) Install(ctx context.Context, id string) error {
	_, err := sm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "snap",
		Sudo:    true,
		Args:    []string{"install", id},
	})
	return err
}

func (sm *SnapManager) IsInstalled(ctx context.Context, id string) bool {
	result, err := sm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "snap",
		Args:    []string{"list", id},
	})
	return err == nil && result.ExitCode == 0
}

// EnsureReady makes sure snapd is running. Enabling the socket is
// enough; snap starts the daemon on demand.
func (sm *SnapManager) EnsureReady(ctx context.Context) error {
	_, err := sm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "systemctl",
		Sudo:    true,
		Args:    []string{"enable", "--now", "snapd.socket"},
	})
	return err
}
