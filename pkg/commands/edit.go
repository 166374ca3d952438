package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, r *root) {
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:   "edit <position> <text...>",
		Short: "Replace an item",
		Long: options.Wrap80(`Replace the item at a position shown by "itemlist ls". The
edited item moves to the end of the list.`),
		Example: `
itemlist edit 2 oat milk
`,
		Args:              options.PositionArgs(po, true),
		ValidArgsFunction: r.positionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := r.dispatcher(cmd, false)
			if err != nil {
				return err
			}
			e := edit.Edit{
				Dispatcher: d,
				Position:   po.Position,
				Text:       po.Text,
				Out:        cmd.OutOrStdout(),
			}
			return silenceRecoverable(cmd, e.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
