package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type AptPackageManager struct {
	CommandManager cm.CommandManager
}

func (apm *AptPackageManager) Name() string {
	return "apt"
}

func (apm *AptPackageManager) Install(ctx context.Context, pkg string) error {
	_, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Sudo:    true,
		Env:     []string{"DEBIAN_FRONTEND=noninteractive"},
		Args:    []string{"install", "-y", "-o", "Dpkg::Options::=--force-confdef", "-o", "Dpkg::Options::=--force-confold", pkg},
	})
	return err
}

func (apm *AptPackageManager) Remove(ctx context.Context, pkg string) error {
	_, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Sudo:    true,
		Env:     []string{"DEBIAN_FRONTEND=noninteractive"},
		Args:    []string{"remove", "-y", pkg},
	})
	return err
}

func (apm *AptPackageManager) IsInstalled(ctx context.Context, pkg string) bool {
	result, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "dpkg-query",
		Args:    []string{"-W", "-f=${Status}", pkg},
	})
	// dpkg-query exits 0 for a package that was removed but not purged;
	// only the status string says whether it is actually installed.
	return err == nil && result.ExitCode == 0 &&
		strings.Contains(result.STDOUT, "install ok installed")
}

func (apm *AptPackageManager) Refresh(ctx context.Context) error {
	_, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Sudo:    true,
		Args:    []string{"update"},
	})
	return err
}

func (apm *AptPackageManager) UpgradeAll(ctx context.Context) error {
	_, err := apm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "apt-get",
		Sudo:    true,
		Env:     []string{"DEBIAN_FRONTEND=noninteractive"},
		Args:    []string{"dist-upgrade", "-y", "-o", "Dpkg::Options::=--force-confdef", "-o", "Dpkg::Options::=--force-confold"},
	})
	return err
}
