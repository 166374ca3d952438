// Package render projects the item collection into visible rows.
//
// List is a value: every operation returns a new List and leaves the receiver
// untouched, so a caller holding an older List keeps seeing the old rows.
package render

import (
	"github.com/google/uuid"
)

// RowID identifies a row independently of its text.
type RowID string

// NewRowID generates row identifiers. Tests may replace it.
var NewRowID = func() RowID {
	return RowID(uuid.NewString())
}

// Row is the rendered counterpart of one item.
type Row struct {
	ID       RowID
	Text     string
	Visible  bool
	Selected bool
}

// Controls are the list-level toggles derived from the row count.
type Controls struct {
	ClearVisible  bool
	FilterVisible bool
}

// List is the ordered set of rows.
type List struct {
	rows []Row
}

// Reload rebuilds every row from texts, discarding the old ones.
func Reload(texts []string) List {
	rows := make([]Row, 0, len(texts))
	for _, t := range texts {
		rows = append(rows, newRow(t))
	}
	return List{rows: rows}
}

func newRow(text string) Row {
	return Row{ID: NewRowID(), Text: text, Visible: true}
}

func (l List) clone() []Row {
	out := make([]Row, len(l.rows))
	copy(out, l.rows)
	return out
}

// Append adds a row for text at the end.
func (l List) Append(text string) (List, RowID) {
	r := newRow(text)
	rows := append(l.clone(), r)
	return List{rows: rows}, r.ID
}

// Delete removes the row with id. The bool reports whether it existed.
func (l List) Delete(id RowID) (List, bool) {
	_, pos, ok := l.Find(id)
	if !ok {
		return l, false
	}
	rows := l.clone()
	rows = append(rows[:pos], rows[pos+1:]...)
	return List{rows: rows}, true
}

// Clear drops every row.
func (l List) Clear() List {
	return List{}
}

// Find returns the row with id and its position.
func (l List) Find(id RowID) (Row, int, bool) {
	for i, r := range l.rows {
		if r.ID == id {
			return r, i, true
		}
	}
	return Row{}, -1, false
}

// At returns the row at pos.
func (l List) At(pos int) (Row, bool) {
	if pos < 0 || pos >= len(l.rows) {
		return Row{}, false
	}
	return l.rows[pos], true
}

// Select marks exactly the row with id as selected.
func (l List) Select(id RowID) List {
	rows := l.clone()
	for i := range rows {
		rows[i].Selected = rows[i].ID == id
	}
	return List{rows: rows}
}

// Deselect clears any selection.
func (l List) Deselect() List {
	return l.Select("")
}

// Selected returns the selected row, if any.
func (l List) Selected() (Row, bool) {
	for _, r := range l.rows {
		if r.Selected {
			return r, true
		}
	}
	return Row{}, false
}

// ApplyVisibility sets each row's Visible flag from show.
func (l List) ApplyVisibility(show func(text string) bool) List {
	rows := l.clone()
	for i := range rows {
		rows[i].Visible = show(rows[i].Text)
	}
	return List{rows: rows}
}

// Rows returns a copy of all rows in order.
func (l List) Rows() []Row {
	return l.clone()
}

// Visible returns the rows currently shown.
func (l List) Visible() []Row {
	out := make([]Row, 0, len(l.rows))
	for _, r := range l.rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// Texts returns the row texts in order.
func (l List) Texts() []string {
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Text
	}
	return out
}

// Len is the number of rows, shown or hidden.
func (l List) Len() int {
	return len(l.rows)
}

// Controls derives the clear-all and filter toggles from the row count.
func (l List) Controls() Controls {
	return ControlsFor(len(l.rows))
}

// ControlsFor hides both controls for an empty list and shows them otherwise.
func ControlsFor(count int) Controls {
	show := count > 0
	return Controls{ClearVisible: show, FilterVisible: show}
}
