package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
	"github.com/m-217/firstboot/firstboot/distro"
)

// Catalog returns the installation steps in execution order.
func Catalog() []Step {
	return []Step{
		{Name: "check_prerequisites", Desc: "Checking system prerequisites", Run: checkPrerequisites},
		{Name: "tune_pacman", Desc: "Tuning pacman configuration", Run: tunePacman},
		{Name: "update_system", Desc: "Refreshing package databases and updating the system", Run: updateSystem},
		{Name: "install_microcode", Desc: "Installing CPU microcode", Run: installMicrocode},
		{Name: "install_kernel_headers", Desc: "Installing kernel headers", Run: installKernelHeaders},
		{Name: "install_gpu_drivers", Desc: "Detecting the GPU and installing drivers", Run: installGPUDrivers},
		{Name: "install_base_utilities", Desc: "Installing base utilities", Run: installBaseUtilities},
		{Name: "remove_desktop_conflicts", Desc: "Removing packages the desktop replaces", Run: removeDesktopConflicts},
		{Name: "install_desktop_packages", Desc: "Installing desktop packages", Run: installDesktopPackages},
		{Name: "install_universal_packages", Desc: "Installing universal packages", Run: installUniversalPackages},
		{Name: "quiet_boot", Desc: "Quieting the boot loader", Run: quietBoot},
		{Name: "setup_firewall", Desc: "Installing and configuring the firewall", Run: setupFirewall},
		{Name: "enable_services", Desc: "Enabling system services", Run: enableServices},
		{Name: "cleanup", Desc: "Cleaning up", Run: cleanup},
	}
}

func checkPrerequisites(ctx context.Context, env *Env) error {
	if os.Geteuid() == 0 {
		return errors.New("run as a regular user with sudo privileges, not as root")
	}

	tool := env.Installer.Native.Name()
	if tool == "apt" {
		tool = "apt-get"
	}
	if !env.Commands.LookPath(tool) {
		return fmt.Errorf("native package manager %q not found on PATH", tool)
	}

	// Connectivity worth a warning, not a failure: mirrors may come up
	// later and every install reports per package anyway.
	if _, err := env.Commands.Run(ctx, cm.CommandConfig{
		Command: "ping",
		Args:    []string{"-c", "1", "-W", "2", "archlinux.org"},
	}); err != nil {
		log.Warn("Network check failed, package installation may not succeed")
	}

	return nil
}

func tunePacman(ctx context.Context, env *Env) error {
	if env.Distro.ID != distro.Arch {
		return nil
	}

	const conf = "/etc/pacman.conf"
	for _, expr := range []string{
		"s/^#Color/Color/",
		"s/^#VerbosePkgLists/VerbosePkgLists/",
		"s/^#ParallelDownloads/ParallelDownloads/",
	} {
		if err := env.Files.ReplacePattern(conf, expr); err != nil {
			return err
		}
	}

	candy, err := env.Files.Contains(conf, "^ILoveCandy")
	if err == nil && !candy {
		if err := env.Files.ReplacePattern(conf, "/^Color/a ILoveCandy"); err != nil {
			return err
		}
	}

	multilib, err := env.Files.Contains(conf, `^\[multilib\]`)
	if err == nil && !multilib {
		// Uncomment the [multilib] section header and its Include line.
		if err := env.Files.ReplacePattern(conf, `/^#\[multilib\]/,/^#Include/s/^#//`); err != nil {
			return err
		}
	}
	return nil
}

func updateSystem(ctx context.Context, env *Env) error {
	if env.Distro.ID == distro.Arch && env.Commands.LookPath("reflector") {
		if _, err := env.Commands.Run(ctx, cm.CommandConfig{
			Command: "reflector",
			Sudo:    true,
			Args:    []string{"--protocol", "https", "--latest", "5", "--sort", "rate", "--save", "/etc/pacman.d/mirrorlist"},
		}); err != nil {
			log.WithError(err).Warn("Mirrorlist refresh failed, keeping the current mirrors")
		}
	}

	if err := env.Installer.Native.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing package databases: %w", err)
	}
	if err := env.Installer.Native.UpgradeAll(ctx); err != nil {
		return fmt.Errorf("updating system: %w", err)
	}
	return nil
}

func installMicrocode(ctx context.Context, env *Env) error {
	if env.Distro.ID != distro.Arch {
		return nil
	}

	cpuinfo, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return fmt.Errorf("reading cpuinfo: %w", err)
	}

	var key string
	switch {
	case strings.Contains(string(cpuinfo), "GenuineIntel"):
		key = "intel-ucode"
	case strings.Contains(string(cpuinfo), "AuthenticAMD"):
		key = "amd-ucode"
	default:
		log.Warn("Unable to determine CPU vendor, skipping microcode")
		return nil
	}

	env.Report = append(env.Report, env.Installer.InstallNative(ctx, []string{key})...)
	return nil
}

func installKernelHeaders(ctx context.Context, env *Env) error {
	if env.Distro.ID != distro.Arch {
		// Elsewhere one logical key covers it; the resolver picks the
		// distro's header package names.
		env.Report = append(env.Report, env.Installer.InstallNative(ctx, []string{"kernel-headers"})...)
		return nil
	}

	// On Arch, headers match each installed kernel flavor.
	var keys []string
	for _, kernel := range []string{"linux", "linux-lts", "linux-zen", "linux-hardened"} {
		result, err := env.Commands.Run(ctx, cm.CommandConfig{
			Command: "pacman",
			Args:    []string{"-Q", kernel},
		})
		if err == nil && result.ExitCode == 0 {
			keys = append(keys, kernel+"-headers")
		}
	}
	if len(keys) == 0 {
		log.Warn("No known kernel flavor detected, skipping headers")
		return nil
	}

	env.Report = append(env.Report, env.Installer.InstallNative(ctx, keys)...)
	return nil
}

func installGPUDrivers(ctx context.Context, env *Env) error {
	result, err := env.Commands.Run(ctx, cm.CommandConfig{
		Command: "lspci",
	})
	if err != nil {
		log.WithError(err).Warn("Cannot probe PCI devices, skipping GPU drivers")
		return nil
	}

	key := gpuVendorKey(result.STDOUT)
	if key == "" {
		log.Info("No supported GPU detected, skipping drivers")
		return nil
	}

	env.Report = append(env.Report, env.Installer.InstallNative(ctx, []string{key})...)
	return nil
}

// gpuVendorKey maps the first display controller found in lspci output
// to a logical driver key. Only VGA/3D/Display lines are considered:
// host bridges and CPUs also carry the Intel and AMD vendor strings.
func gpuVendorKey(lspci string) string {
	for _, line := range strings.Split(lspci, "\n") {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D") && !strings.Contains(line, "Display") {
			continue
		}
		switch {
		case strings.Contains(line, "NVIDIA"):
			return "gpu-nvidia"
		case strings.Contains(line, "AMD"), strings.Contains(line, "ATI"):
			return "gpu-amd"
		case strings.Contains(line, "Intel"):
			return "gpu-intel"
		}
	}
	return ""
}

func installBaseUtilities(ctx context.Context, env *Env) error {
	env.Report = append(env.Report, env.Installer.InstallNative(ctx, baseUtilities)...)
	return nil
}

func removeDesktopConflicts(ctx context.Context, env *Env) error {
	removals := DesktopRemovals(env.Distro.Desktop)
	if len(removals) == 0 {
		return nil
	}
	env.Report = append(env.Report, env.Installer.RemoveNative(ctx, removals)...)
	return nil
}

func installDesktopPackages(ctx context.Context, env *Env) error {
	keys := NativeKeys(env.Mode, env.Distro.Desktop)
	env.Report = append(env.Report, env.Installer.InstallNative(ctx, keys)...)
	return nil
}

func installUniversalPackages(ctx context.Context, env *Env) error {
	if env.Installer.Primary != nil {
		if err := env.Installer.Primary.EnsureReady(ctx); err != nil {
			log.WithError(err).Warn("Primary universal channel setup failed")
		}
	}
	if env.Installer.Backup != nil {
		if err := env.Installer.Backup.EnsureReady(ctx); err != nil {
			log.WithError(err).Warn("Backup universal channel setup failed")
		}
	}

	keys := UniversalKeys(env.Mode, env.Distro.Desktop)
	env.Report = append(env.Report, env.Installer.InstallUniversal(ctx, keys)...)
	return nil
}

func quietBoot(ctx context.Context, env *Env) error {
	if env.Distro.ID != distro.Arch {
		return nil
	}

	const loaderConf = "/boot/loader/loader.conf"
	if !env.Files.Exists(loaderConf) {
		log.Info("No systemd-boot loader.conf, skipping")
		return nil
	}

	if err := env.Files.ReplacePattern(loaderConf, "s/^#*timeout.*/timeout 3/"); err != nil {
		return err
	}
	if err := env.Files.AppendLineIfMissing(loaderConf, "console-mode max"); err != nil {
		return err
	}
	return nil
}

func setupFirewall(ctx context.Context, env *Env) error {
	report := env.Installer.InstallNative(ctx, []string{"ufw"})
	env.Report = append(env.Report, report...)
	if len(report.Failed()) > 0 {
		return errors.New("ufw install failed, firewall left unconfigured")
	}

	for _, args := range [][]string{
		{"default", "deny", "incoming"},
		{"default", "allow", "outgoing"},
		{"allow", "ssh"},
		{"--force", "enable"},
	} {
		if _, err := env.Commands.Run(ctx, cm.CommandConfig{
			Command: "ufw",
			Sudo:    true,
			Args:    args,
		}); err != nil {
			return fmt.Errorf("configuring firewall: %w", err)
		}
	}
	return nil
}

func enableServices(ctx context.Context, env *Env) error {
	for _, service := range services {
		if err := env.Services.EnableServiceNow(service); err != nil {
			log.WithError(err).WithField("service", service).Warn("Failed to enable service")
		}
	}
	return nil
}

func cleanup(ctx context.Context, env *Env) error {
	_, err := env.Commands.Run(ctx, cm.CommandConfig{Command: "sync"})
	return err
}
