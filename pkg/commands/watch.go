package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command, r *root) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the list whenever it changes",
		Long: `Print the list, then print it again every time another itemlist
process changes it. Stop with ctrl+c.`,
		Example: `
itemlist watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := r.store(true)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{Persistence: p, Out: cmd.OutOrStdout(), Log: r.log}
			return w.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
