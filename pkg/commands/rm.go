package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, r *root) {
	po := &options.PositionOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <position>",
		Aliases: []string{"remove"},
		Short:   "Remove an item",
		Long: options.Wrap80(`Remove the item at a position shown by "itemlist ls". You are
asked to confirm first; pass --yes when stdin is not a terminal.`),
		Example: `
itemlist rm 3
itemlist rm 3 --yes
`,
		Args:              options.PositionArgs(po, false),
		ValidArgsFunction: r.positionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := r.dispatcher(cmd, co.Yes)
			if err != nil {
				return err
			}
			rm := remove.Remove{
				Dispatcher: d,
				Position:   po.Position,
				Out:        cmd.OutOrStdout(),
			}
			return rm.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
