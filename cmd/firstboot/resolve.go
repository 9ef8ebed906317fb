package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/m-217/firstboot/firstboot/distro"
	"github.com/m-217/firstboot/firstboot/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <key>...",
	Short: "Show how logical package keys resolve on this system",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := distro.Detect(distro.DefaultOSReleasePath)
		if err != nil {
			return err
		}

		doc, err := resolver.Load(mappingPath)
		if err != nil {
			return err
		}
		res := resolver.New(doc, info.ID)
		primary, backup := res.Channels()

		rows := pterm.TableData{{"Key", "Native", primary, backup}}
		for _, key := range args {
			base := resolver.BaseName(key)
			rows = append(rows, []string{
				key,
				res.ResolveNative(key),
				orBase(res.ResolveUniversal(base, primary), base),
				orBase(res.ResolveUniversal(base, backup), base),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

func orBase(id, base string) string {
	if id == "" {
		return base + " (heuristic)"
	}
	return id
}
