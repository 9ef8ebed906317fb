package packagemanager

import (
	"context"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type ZypperPackageManager struct {
	CommandManager cm.CommandManager
}

func (zpm *ZypperPackageManager) Name() string {
	return "zypper"
}

func (zpm *ZypperPackageManager) Install(ctx context.Context, pkg string) error {
	_, err := zpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "zypper",
		Sudo:    true,
		Args:    []string{"--non-interactive", "install", pkg},
	})
	return err
}

func (zpm *ZypperPackageManager) Remove(ctx context.Context, pkg string) error {
	_, err := zpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "zypper",
		Sudo:    true,
		Args:    []string{"--non-interactive", "remove", pkg},
	})
	return err
}

func (zpm *ZypperPackageManager) IsInstalled(ctx context.Context, pkg string) bool {
	result, err := zpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "rpm",
		Args:    []string{"-q", pkg},
	})
	return err == nil && result.ExitCode == 0
}

func (zpm *ZypperPackageManager) Refresh(ctx context.Context) error {
	_, err := zpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "zypper",
		Sudo:    true,
		Args:    []string{"--non-interactive", "refresh"},
	})
	return err
}

func (zpm *ZypperPackageManager) UpgradeAll(ctx context.Context) error {
	_, err := zpm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "zypper",
		Sudo:    true,
		Args:    []string{"--non-interactive", "update"},
	})
	return err
}
