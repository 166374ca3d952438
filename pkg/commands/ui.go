package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/itemlist/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command, r *root) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
itemlist ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := r.items()
			if err != nil {
				return err
			}
			return teaui.Run(cmd.Context(), s, r.log)
		},
	}

	topLevel.AddCommand(cmd)
}
