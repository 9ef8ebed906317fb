package packagemanager

import (
	"context"
	"fmt"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
	"github.com/m-217/firstboot/firstboot/distro"
)

// NativeManager is the distribution's own package manager (and, on
// Arch, the AUR helper that extends it).
type NativeManager interface {
	Name() string
	Install(ctx context.Context, pkg string) error
	Remove(ctx context.Context, pkg string) error
	IsInstalled(ctx context.Context, pkg string) bool
	Refresh(ctx context.Context) error
	UpgradeAll(ctx context.Context) error
}

// UniversalManager is a cross-distro packaging channel used when no
// native package exists.
type UniversalManager interface {
	Channel() string
	Install(ctx context.Context, id string) error
	IsInstalled(ctx context.Context, id string) bool

	// EnsureReady performs one-time channel setup, like adding the
	// flathub remote.
	EnsureReady(ctx context.Context) error
}

// ForDistro returns the native manager matching the detected
// distribution.
func ForDistro(info distro.Info, manager cm.CommandManager) (NativeManager, error) {
	switch info.ID {
	case distro.Arch:
		return &PacmanPackageManager{CommandManager: manager}, nil
	case distro.Fedora:
		return &DnfPackageManager{CommandManager: manager}, nil
	case distro.Debian, distro.Ubuntu:
		return &AptPackageManager{CommandManager: manager}, nil
	case distro.OpenSUSE:
		return &ZypperPackageManager{CommandManager: manager}, nil
	}
	return nil, fmt.Errorf("no native package manager for distribution %q", info.ID)
}

// ForChannel returns the universal manager for a channel name.
func ForChannel(channel string, manager cm.CommandManager) (UniversalManager, error) {
	switch channel {
	case "flatpak":
		return &FlatpakManager{CommandManager: manager}, nil
	case "snap":
		return &SnapManager{CommandManager: manager}, nil
	}
	return nil, fmt.Errorf("unknown universal channel %q", channel)
}
