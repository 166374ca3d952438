// Package clearall provides the runner logic for erasing the whole list.
package clearall

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/itemlist/pkg/app"
)

// Clear removes every item and the persisted slot itself.
type Clear struct {
	Dispatcher *app.Dispatcher
	Out        io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Dispatcher == nil {
		return errors.New("can not clear, no dispatcher")
	}
	st, err := n.Dispatcher.Load(ctx)
	if err != nil {
		return err
	}
	count := st.Rows.Len()
	if _, err := n.Dispatcher.Dispatch(ctx, st, app.ClearAll()); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	ok := color.New(color.FgGreen)
	_, _ = ok.Fprintf(out, "✔ cleared %d items\n", count)
	return nil
}
