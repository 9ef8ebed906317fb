package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultMappingPath = "/etc/firstboot/packages.yaml"

var (
	debug       bool
	logFileName string
	mappingPath string
)

var rootCmd = &cobra.Command{
	Use:   "firstboot",
	Short: "Post-installation setup for a fresh Linux desktop",
	Long: `firstboot configures a freshly installed Linux desktop: it installs
packages across the native and universal channels, enables services and
applies system tweaks. Completed steps are recorded so an interrupted
run can resume where it stopped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug log level")
	rootCmd.PersistentFlags().StringVar(&logFileName, "log", "", "Log file path (defaults to the XDG state directory)")
	rootCmd.PersistentFlags().StringVar(&mappingPath, "mapping", defaultMappingPath, "Package mapping document")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(resetCmd)
}

func setupLogging() error {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	path := logFileName
	if path == "" {
		var err error
		path, err = xdg.StateFile("firstboot/firstboot.log")
		if err != nil {
			path = filepath.Join(os.TempDir(), "firstboot.log")
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.WithError(err).Warn("Cannot open log file, logging to stderr only")
		return nil
	}

	log.SetOutput(file)
	logPath = path
	return nil
}

// logPath is where the run log ended up, for the final summary.
var logPath string
