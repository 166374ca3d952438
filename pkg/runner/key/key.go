// Package key provides CLI helpers to display the interactive key legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	teaui "tableflip.dev/itemlist/pkg/runner/tea"
)

// Key prints the key bindings understood by `itemlist ui`.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, teaui.Bindings())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders one table of bindings. Bindings sharing a help key are shown
// once.
func (k *Key) Key(_ context.Context, out io.Writer, bindings []key.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Action"))
	seen := map[string]bool{}
	for _, b := range bindings {
		h := b.Help()
		if seen[h.Key+h.Desc] {
			continue
		}
		seen[h.Key+h.Desc] = true
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
