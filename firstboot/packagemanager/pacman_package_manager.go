package packagemanager

import (
	"context"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type PacmanPackageManager struct {
	CommandManager cm.CommandManager
}

func (ppm *PacmanPackageManager) Name() string {
	return "pacman"
}

func (ppm *PacmanPackageManager) Install(ctx context.Context, pkg string) error {
	_, err := ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Sudo:    true,
		Args:    []string{"-S", "--noconfirm", "--needed", pkg},
	})
	return err
}

func (ppm *PacmanPackageManager) Remove(ctx context.Context, pkg string) error {
	_, err := ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Sudo:    true,
		Args:    []string{"-Rns", "--noconfirm", pkg},
	})
	return err
}

func (ppm *PacmanPackageManager) IsInstalled(ctx context.Context, pkg string) bool {
	result, err := ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Args:    []string{"-Q", pkg},
	})
	return err == nil && result.ExitCode == 0
}

func (ppm *PacmanPackageManager) Refresh(ctx context.Context) error {
	_, err := ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Sudo:    true,
		Args:    []string{"-Sy"},
	})
	return err
}

func (ppm *PacmanPackageManager) UpgradeAll(ctx context.Context) error {
	_, err := ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "pacman",
		Sudo:    true,
		Args:    []string{"-Syu", "--noconfirm"},
	})
	return err
}
