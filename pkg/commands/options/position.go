package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// PositionOptions
type PositionOptions struct {
	Position int
	Text     string
}

// PositionArgs parses a 1-based row position, followed by the item text when
// wantText is set.
func PositionArgs(o *PositionOptions, wantText bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("%s: missing item position", cmd.Name())
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%s: position %q is not a number", cmd.Name(), args[0])
		}
		o.Position = n
		rest := args[1:]
		switch {
		case wantText && len(rest) == 0:
			return fmt.Errorf("%s: missing item text", cmd.Name())
		case !wantText && len(rest) > 0:
			return fmt.Errorf("%s: unexpected arguments %v", cmd.Name(), rest)
		}
		o.Text = strings.Join(rest, " ")
		return nil
	}
}
