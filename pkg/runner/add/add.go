// Package add provides the runner logic for adding items.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
)

// Add submits one new item.
type Add struct {
	Dispatcher *app.Dispatcher
	Text       string
	Out        io.Writer
}

// Do loads the list, submits Text and prints the result.
func (n *Add) Do(ctx context.Context) error {
	if n.Dispatcher == nil {
		return errors.New("can not add, no dispatcher")
	}
	st, err := n.Dispatcher.Load(ctx)
	if err != nil {
		return err
	}
	st, err = n.Dispatcher.Dispatch(ctx, st, app.Submit(n.Text))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.TitleWithCount("Items", st.Rows.Len())
	pp.Rows(st.Rows.Rows())
	return nil
}
