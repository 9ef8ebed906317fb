package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
	"github.com/m-217/firstboot/firstboot/distro"
	"github.com/m-217/firstboot/firstboot/filemanager"
	"github.com/m-217/firstboot/firstboot/installer"
	"github.com/m-217/firstboot/firstboot/ledger"
	pm "github.com/m-217/firstboot/firstboot/packagemanager"
	"github.com/m-217/firstboot/firstboot/resolver"
	"github.com/m-217/firstboot/firstboot/servicemanager"
	"github.com/m-217/firstboot/firstboot/steps"
)

var minimal bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the post-installation steps",
	RunE:  runInstall,
}

func init() {
	runCmd.Flags().BoolVar(&minimal, "minimal", false, "Install the trimmed-down package set")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The one fatal precondition: without a distro identity nothing can
	// be resolved or installed.
	info, err := distro.Detect(distro.DefaultOSReleasePath)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Detected %s (%s desktop)", info.Name, info.Desktop)

	ledg, err := ledger.Default()
	if err != nil {
		return err
	}

	if ledg.HasAnyProgress() && interactive() {
		resume, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show("A previous run left progress behind. Resume it? (No restarts from scratch)")
		if !resume {
			if err := ledg.Clear(); err != nil {
				return err
			}
		}
	}

	password, err := promptSudoPassword()
	if err != nil {
		return err
	}

	commands := &cm.LocalCommandManager{SudoPassword: password}
	if _, err := commands.Run(ctx, cm.CommandConfig{Command: "true", Sudo: true}); err != nil {
		return fmt.Errorf("sudo validation failed: %w", err)
	}

	env, err := buildEnv(info, commands)
	if err != nil {
		return err
	}
	if minimal {
		env.Mode = steps.ModeMinimal
	}

	runner := &steps.Runner{Ledger: ledg, Steps: steps.Catalog()}
	out := runner.Run(ctx, env)

	printSummary(env.Report, out)
	return nil
}

func buildEnv(info distro.Info, commands cm.CommandManager) (*steps.Env, error) {
	native, err := pm.ForDistro(info, commands)
	if err != nil {
		return nil, err
	}

	var aur pm.NativeManager
	if info.ID == distro.Arch && commands.LookPath("yay") {
		aur = &pm.YayPackageManager{CommandManager: commands}
	}

	doc, err := resolver.Load(mappingPath)
	if err != nil {
		log.WithError(err).Warn("Mapping document unusable, falling back to the built-in table")
		doc = nil
	}
	res := resolver.New(doc, info.ID)

	primaryName, backupName := res.Channels()
	inst := &installer.Installer{
		Resolver: res,
		Native:   native,
		AUR:      aur,
		Primary:  universalIfAvailable(primaryName, commands),
		Backup:   universalIfAvailable(backupName, commands),
	}

	return &steps.Env{
		Distro:    info,
		Mode:      steps.ModeDefault,
		Commands:  commands,
		Installer: inst,
		Services:  &servicemanager.LinuxServiceManager{CommandManager: commands},
		Files:     &filemanager.UnixFileManager{CommandManager: commands},
	}, nil
}

func universalIfAvailable(channel string, commands cm.CommandManager) pm.UniversalManager {
	if !commands.LookPath(channel) {
		log.WithField("channel", channel).Debug("Universal channel tool not present")
		return nil
	}
	mgr, err := pm.ForChannel(channel, commands)
	if err != nil {
		return nil
	}
	return mgr
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func promptSudoPassword() (string, error) {
	if !interactive() {
		return "", nil
	}
	fmt.Print("Enter your sudo password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading sudo password: %w", err)
	}
	return string(passwordBytes), nil
}

func printSummary(report installer.Report, out steps.Outcome) {
	pterm.DefaultSection.Println("Install summary")

	if installed := report.Installed(); len(installed) > 0 {
		rows := pterm.TableData{{"Package", "Channel", "Status"}}
		for _, kr := range installed {
			rows = append(rows, []string{kr.Package, kr.Channel, string(kr.Status)})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	} else {
		pterm.Info.Println("No new packages were installed.")
	}

	for _, kr := range report.Failed() {
		pterm.Error.Printfln("%s (%s): %s", kr.Key, kr.Channel, kr.Detail)
	}

	if len(out.Failed) > 0 {
		pterm.Warning.Printfln("Failed steps (will re-run on resume): %v", out.Failed)
		if logPath != "" {
			pterm.Info.Printfln("See %s for details", logPath)
		}
		return
	}
	pterm.Success.Println("All steps completed successfully.")
}
