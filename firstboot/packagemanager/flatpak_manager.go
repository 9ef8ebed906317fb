package packagemanager

import (
	"context"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type FlatpakManager struct {
	CommandManager cm.CommandManager
}

func (fm *FlatpakManager) Channel() string {
	return "flatpak"
}

func (fm *FlatpakManager) Install(ctx context.Context, id string) error {
	_, err := fm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "flatpak",
		Args:    []string{"install", "-y", "--noninteractive", "flathub", id},
	})
	return err
}

func (fm *FlatpakManager) IsInstalled(ctx context.Context, id string) bool {
	result, err := fm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "flatpak",
		Args:    []string{"info", id},
	})
	return err == nil && result.ExitCode == 0
}

// EnsureReady registers the flathub remote. flatpak itself must already
// be installed; the caller checks for the tool and installs it through
// the native channel first.
func (fm *FlatpakManager) EnsureReady(ctx context.Context) error {
	_, err := fm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "flatpak",
		Args:    []string{"remote-add", "--if-not-exists", "flathub", "https://dl.flathub.org/repo/flathub.flatpakrepo"},
	})
	return err
}
