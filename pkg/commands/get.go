package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/get"
)

func addGet(topLevel *cobra.Command, r *root) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"get", "list"},
		Short:   "Show the list",
		Long: options.Wrap80(`Show the list with 1-based positions. The positions are the ones
"edit" and "rm" take. With --filter only matching items are shown, keeping
their positions.`),
		Example: `
itemlist ls
itemlist ls --filter milk
itemlist ls --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			d, err := r.dispatcher(cmd, false)
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Dispatcher: d,
				Query:      fo.Query,
				JSON:       oo.JSON,
				Out:        cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
