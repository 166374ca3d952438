// Package editmode tracks whether the next submit creates an item or updates
// the selected row.
package editmode

import "tableflip.dev/itemlist/pkg/render"

// Kind tags a Mode.
type Kind int

const (
	KindCreating Kind = iota
	KindEditing
)

func (k Kind) String() string {
	if k == KindEditing {
		return "editing"
	}
	return "creating"
}

// Mode is either Creating or Editing(row). The zero value is Creating.
type Mode struct {
	kind Kind
	row  render.RowID
}

// Creating is the initial mode.
func Creating() Mode {
	return Mode{kind: KindCreating}
}

// Editing selects row for update.
func Editing(row render.RowID) Mode {
	return Mode{kind: KindEditing, row: row}
}

// Kind returns the tag.
func (m Mode) Kind() Kind {
	return m.kind
}

// Row returns the row being edited; ok is false while creating.
func (m Mode) Row() (row render.RowID, ok bool) {
	if m.kind != KindEditing {
		return "", false
	}
	return m.row, true
}

// IsEditing reports whether a row is selected for update.
func (m Mode) IsEditing() bool {
	return m.kind == KindEditing
}

func (m Mode) String() string {
	if m.kind == KindEditing {
		return "editing(" + string(m.row) + ")"
	}
	return m.kind.String()
}

// Affordance is how the submit control presents itself.
type Affordance struct {
	Label string
	Icon  string
	Color string
}

var (
	addAffordance  = Affordance{Label: "Add Item", Icon: "+", Color: "#333333"}
	editAffordance = Affordance{Label: "Edit item", Icon: "✎", Color: "#228B22"}
)

// Submit returns the submit control's look for m.
func (m Mode) Submit() Affordance {
	if m.kind == KindEditing {
		return editAffordance
	}
	return addAffordance
}
