package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/m-217/firstboot/firstboot/ledger"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all recorded progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledg, err := ledger.Default()
		if err != nil {
			return err
		}

		if !ledg.HasAnyProgress() {
			pterm.Info.Println("Nothing to reset.")
			return nil
		}

		if !resetYes && interactive() {
			confirmed, _ := pterm.DefaultInteractiveConfirm.
				Show("Forget all recorded progress? The next run starts from scratch")
			if !confirmed {
				return nil
			}
		}

		if err := ledg.Clear(); err != nil {
			return err
		}
		pterm.Success.Println("Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}
