// Package edit provides the runner logic for updating an item in place.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/render"
)

// Edit replaces the item at Position (1-based) with Text. The updated item
// moves to the end of the list.
type Edit struct {
	Dispatcher *app.Dispatcher
	Position   int
	Text       string
	Out        io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Dispatcher == nil {
		return errors.New("can not edit, no dispatcher")
	}
	st, err := n.Dispatcher.Load(ctx)
	if err != nil {
		return err
	}
	row, err := RowAt(st.Rows, n.Position)
	if err != nil {
		return err
	}
	st, err = n.Dispatcher.Run(ctx, st, app.ActivateRow(row.ID), app.Submit(n.Text))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.TitleWithCount("Items", st.Rows.Len())
	pp.Rows(st.Rows.Rows())
	return nil
}

// RowAt resolves a 1-based list position.
func RowAt(l render.List, position int) (render.Row, error) {
	row, ok := l.At(position - 1)
	if !ok {
		return render.Row{}, fmt.Errorf("index out of range: have %d, got %d", l.Len(), position)
	}
	return row, nil
}
