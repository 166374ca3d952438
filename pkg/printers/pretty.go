package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/itemlist/pkg/render"
)

// PrettyPrint writes rows for humans.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Rows prints rows in order, highlighting the selected one.
func (pp *PrettyPrint) Rows(rows []render.Row) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	sel := color.New(color.FgGreen, color.Bold)
	for _, r := range rows {
		if r.Selected {
			_, _ = sel.Fprintln(pp.out(), r.Text)
			continue
		}
		_, _ = fmt.Fprintln(pp.out(), r.Text)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Numbered prints rows next to their 1-based positions in the full list.
func (pp *PrettyPrint) Numbered(positions []int, rows []render.Row) {
	if len(rows) == 0 {
		pp.Rows(nil)
		return
	}
	pos := color.New(color.FgHiYellow, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, r := range rows {
		tbl.AddRow(pos.Sprintf("%d.", positions[i]), r.Text)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}
