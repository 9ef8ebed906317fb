package packagemanager

import (
	"context"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type DnfPackageManager struct {
	CommandManager cm.CommandManager
}

func (dpm *DnfPackageManager) Name() string {
	return "dnf"
}

func (dpm *DnfPackageManager) Install(ctx context.Context, pkg string) error {
	_, err := dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Sudo:    true,
		Args:    []string{"install", "-y", pkg},
	})
	return err
}

func (dpm *DnfPackageManager) Remove(ctx context.Context, pkg string) error {
	_, err := dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Sudo:    true,
		Args:    []string{"remove", "-y", pkg},
	})
	return err
}

func (dpm *DnfPackageManager) IsInstalled(ctx context.Context, pkg string) bool {
	result, err := dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "rpm",
		Args:    []string{"-q", pkg},
	})
	return err == nil && result.ExitCode == 0
}

func (dpm *DnfPackageManager) Refresh(ctx context.Context) error {
	_, err := dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Sudo:    true,
		Args:    []string{"makecache", "--refresh"},
	})
	return err
}

func (dpm *DnfPackageManager) UpgradeAll(ctx context.Context) error {
	_, err := dpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dnf",
		Sudo:    true,
		Args:    []string{"upgrade", "-y"},
	})
	return err
}
