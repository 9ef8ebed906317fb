package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/m-217/firstboot/firstboot/ledger"
	"github.com/m-217/firstboot/firstboot/steps"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which steps have completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledg, err := ledger.Default()
		if err != nil {
			return err
		}

		if !ledg.HasAnyProgress() {
			pterm.Info.Println("No recorded progress.")
			return nil
		}

		rows := pterm.TableData{{"Step", "Status"}}
		for _, step := range steps.Catalog() {
			status := "pending"
			if ledg.IsComplete(step.Name) {
				status = "complete"
			}
			rows = append(rows, []string{step.Name, status})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}
