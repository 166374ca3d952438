// Package remove provides the runner logic for removing one item.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner/edit"
)

// Remove deletes the item at Position (1-based) after confirmation.
type Remove struct {
	Dispatcher *app.Dispatcher
	Position   int
	Out        io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Dispatcher == nil {
		return errors.New("can not remove, no dispatcher")
	}
	st, err := n.Dispatcher.Load(ctx)
	if err != nil {
		return err
	}
	row, err := edit.RowAt(st.Rows, n.Position)
	if err != nil {
		return err
	}
	next, err := n.Dispatcher.Dispatch(ctx, st, app.ClickRow(row.ID, app.TargetRemove))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if next.Rows.Len() == st.Rows.Len() {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(n.out(), fmt.Sprintf("kept %q", row.Text))
		return nil
	}
	pp.TitleWithCount("Items", next.Rows.Len())
	pp.Rows(next.Rows.Rows())
	return nil
}

func (n *Remove) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
