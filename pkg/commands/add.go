package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, r *root) {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item to the list",
		Example: `
itemlist add oat milk
itemlist add "eggs x6"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("add: missing item text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := r.dispatcher(cmd, false)
			if err != nil {
				return err
			}
			a := add.Add{
				Dispatcher: d,
				Text:       strings.Join(args, " "),
				Out:        cmd.OutOrStdout(),
			}
			return silenceRecoverable(cmd, a.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
