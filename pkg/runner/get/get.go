// Package get provides the runner logic for listing items.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/render"
)

// Get prints the rows matching Query.
type Get struct {
	Dispatcher *app.Dispatcher
	Query      string
	JSON       bool
	Out        io.Writer
}

// Item is the JSON shape of one listed row.
type Item struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

func (n *Get) Do(ctx context.Context) error {
	if n.Dispatcher == nil {
		return errors.New("can not get, no dispatcher")
	}
	st, err := n.Dispatcher.Load(ctx)
	if err != nil {
		return err
	}
	st, err = n.Dispatcher.Dispatch(ctx, st, app.TypeFilter(n.Query))
	if err != nil {
		return err
	}

	positions, rows := visible(st.Rows)

	if n.JSON {
		out := make([]Item, len(rows))
		for i, r := range rows {
			out[i] = Item{Position: positions[i], Text: r.Text}
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.Query != "" {
		pp.TitleWithCount(fmt.Sprintf("Items matching %q", n.Query), len(rows))
	} else {
		pp.TitleWithCount("Items", len(rows))
	}
	pp.Numbered(positions, rows)
	return nil
}

func (n *Get) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func visible(l render.List) ([]int, []render.Row) {
	var positions []int
	var rows []render.Row
	for i, r := range l.Rows() {
		if r.Visible {
			positions = append(positions, i+1)
			rows = append(rows, r)
		}
	}
	return positions, rows
}
