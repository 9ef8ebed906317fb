package packagemanager

import (
	"context"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

// YayPackageManager drives the yay AUR helper. It satisfies universal
// package keys through the native channel on Arch, so it implements
// NativeManager. yay must run as the regular user; it escalates with
// sudo internally when needed.
type YayPackageManager struct {
	CommandManager cm.CommandManager
}

func (ypm *YayPackageManager) Name() string {
	return "yay"
}

func (ypm *YayPackageManager) Install(ctx context.Context, pkg string) error {
	_, err := ypm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "yay",
		Args:    []string{"-S", "--noconfirm", "--needed", pkg},
	})
	return err
}

func (ypm *YayPackageManager) Remove(ctx context.Context, pkg string) error {
	_, err := ypm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "yay",
		Args:    []string{"-Rns", "--noconfirm", pkg},
	})
	return err
}

func (ypm *YayPackageManager) IsInstalled(ctx context.Context, pkg string) bool {
	result, err := ypm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Args:    []string{"-Q", pkg},
	})
	return err == nil && result.ExitCode == 0
}

func (ypm *YayPackageManager) Refresh(ctx context.Context) error {
	_, err := ypm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "yay",
		Args:    []string{"-Sy"},
	})
	return err
}

func (ypm *YayPackageManager) UpgradeAll(ctx context.Context) error {
	_, err := ypm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "yay",
		Args:    []string{"-Syu", "--noconfirm"},
	})
	return err
}
