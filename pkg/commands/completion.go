package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command, r *root) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(itemlist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(itemlist completion)
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return topLevel.GenBashCompletionV2(cmd.OutOrStdout(), true)
		},
	}

	topLevel.AddCommand(cmd)
}

// positionCompletions offers the saved positions, described by their text.
func (r *root) positionCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := r.items()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	texts, err := s.List(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for i, text := range texts {
		pos := strconv.Itoa(i + 1)
		if strings.HasPrefix(pos, toComplete) {
			out = append(out, pos+"\t"+text)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
