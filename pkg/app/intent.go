package app

import (
	"fmt"

	"tableflip.dev/itemlist/pkg/render"
)

// Kind keys the dispatch table.
type Kind int

const (
	KindPageLoad Kind = iota
	KindSubmit
	KindClickRow
	KindActivateRow
	KindActivateRemove
	KindClearAll
	KindTypeFilter
)

func (k Kind) String() string {
	switch k {
	case KindPageLoad:
		return "page-load"
	case KindSubmit:
		return "submit"
	case KindClickRow:
		return "click-row"
	case KindActivateRow:
		return "activate-row"
	case KindActivateRemove:
		return "activate-remove"
	case KindClearAll:
		return "clear-all"
	case KindTypeFilter:
		return "type-filter"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Target is the part of a row that was clicked.
type Target int

const (
	TargetText Target = iota
	TargetRemove
)

// Intent is one user action.
type Intent struct {
	Kind   Kind
	Text   string
	Row    render.RowID
	Target Target
}

func PageLoad() Intent { return Intent{Kind: KindPageLoad} }

func Submit(text string) Intent { return Intent{Kind: KindSubmit, Text: text} }

func ActivateRow(row render.RowID) Intent { return Intent{Kind: KindActivateRow, Row: row} }

func ActivateRemove(row render.RowID) Intent { return Intent{Kind: KindActivateRemove, Row: row} }

// ClickRow routes to ActivateRemove when target is the remove control and to
// ActivateRow otherwise.
func ClickRow(row render.RowID, target Target) Intent {
	return Intent{Kind: KindClickRow, Row: row, Target: target}
}

func ClearAll() Intent { return Intent{Kind: KindClearAll} }

func TypeFilter(query string) Intent { return Intent{Kind: KindTypeFilter, Text: query} }
