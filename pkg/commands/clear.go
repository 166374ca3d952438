package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/clearall"
)

func addClear(topLevel *cobra.Command, r *root) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Example: `
itemlist clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := r.dispatcher(cmd, false)
			if err != nil {
				return err
			}
			c := clearall.Clear{Dispatcher: d, Out: cmd.OutOrStdout()}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
