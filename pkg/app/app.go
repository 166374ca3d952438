package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/itemlist/pkg/editmode"
	"tableflip.dev/itemlist/pkg/filter"
	"tableflip.dev/itemlist/pkg/items"
	"tableflip.dev/itemlist/pkg/render"
)

// Messages shown to the user.
const (
	MsgEmpty         = "Please add an item"
	MsgDuplicate     = "This item already exists!"
	MsgConfirmRemove = "Are you sure?"
)

var (
	// ErrEmpty is returned when an empty item is submitted.
	ErrEmpty = errors.New("app: empty item")
	// ErrDuplicate is returned when a submitted item already exists.
	ErrDuplicate = errors.New("app: item already exists")
	// ErrNotLoaded is returned for list-changing intents before PageLoad.
	ErrNotLoaded = errors.New("app: list not loaded")
	// ErrUnknownRow is returned when an intent names a row that is not shown.
	ErrUnknownRow = errors.New("app: unknown row")
)

// IsRecoverable reports whether err was already reported to the user and left
// the state unchanged.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrEmpty) || errors.Is(err, ErrDuplicate)
}

// Prompter shows warnings and asks for confirmation.
type Prompter interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, msg string) (bool, error)
}

// State is everything the dispatcher knows about the list on screen.
type State struct {
	Loaded   bool
	Input    string
	Query    string
	Mode     editmode.Mode
	Rows     render.List
	Controls render.Controls
}

// SubmitAffordance is the current look of the submit control.
func (s State) SubmitAffordance() editmode.Affordance {
	return s.Mode.Submit()
}

// Handler applies one intent to a state.
type Handler func(ctx context.Context, st State, in Intent) (State, error)

// Dispatcher turns intents into item store and edit-mode changes. On error the
// returned State is the one passed in.
type Dispatcher struct {
	Items    *items.Store
	Prompter Prompter
	Log      *zap.Logger

	handlers map[Kind]Handler
}

// New builds a Dispatcher with the default dispatch table.
func New(store *items.Store, p Prompter, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{Items: store, Prompter: p, Log: log}
	d.handlers = map[Kind]Handler{
		KindPageLoad:       d.pageLoad,
		KindSubmit:         loaded(d.submit),
		KindClickRow:       loaded(d.clickRow),
		KindActivateRow:    loaded(d.activateRow),
		KindActivateRemove: loaded(d.remove),
		KindClearAll:       loaded(d.clearAll),
		KindTypeFilter:     d.typeFilter,
	}
	return d
}

// Dispatch applies in to st.
func (d *Dispatcher) Dispatch(ctx context.Context, st State, in Intent) (State, error) {
	h, ok := d.handlers[in.Kind]
	if !ok {
		return st, fmt.Errorf("app: no handler for %s", in.Kind)
	}
	d.Log.Debug("dispatch",
		zap.Stringer("intent", in.Kind),
		zap.Stringer("mode", st.Mode),
		zap.Int("rows", st.Rows.Len()))
	next, err := h(ctx, st, in)
	if err != nil {
		d.Log.Debug("intent rejected", zap.Stringer("intent", in.Kind), zap.Error(err))
		return st, err
	}
	return next, nil
}

// Load starts a fresh State from the persisted collection.
func (d *Dispatcher) Load(ctx context.Context) (State, error) {
	return d.Dispatch(ctx, State{}, PageLoad())
}

// Run dispatches intents in order and stops at the first error.
func (d *Dispatcher) Run(ctx context.Context, st State, intents ...Intent) (State, error) {
	for _, in := range intents {
		var err error
		st, err = d.Dispatch(ctx, st, in)
		if err != nil {
			return st, err
		}
	}
	return st, nil
}

func loaded(h Handler) Handler {
	return func(ctx context.Context, st State, in Intent) (State, error) {
		if !st.Loaded {
			return st, ErrNotLoaded
		}
		return h(ctx, st, in)
	}
}

func (d *Dispatcher) alert(ctx context.Context, msg string) {
	if d.Prompter != nil {
		d.Prompter.Alert(ctx, msg)
	}
}

func (d *Dispatcher) pageLoad(ctx context.Context, st State, _ Intent) (State, error) {
	texts, err := d.Items.List(ctx)
	if err != nil {
		return st, err
	}
	st.Rows = render.Reload(texts)
	st.Loaded = true
	return reset(st), nil
}

// submit adds the input as a new item, or replaces the selected item in
// editing mode. Uniqueness holds in both modes: an edit may keep its own text
// but is rejected as a duplicate if it takes the text of another item. An edit
// is one write of the whole collection.
func (d *Dispatcher) submit(ctx context.Context, st State, in Intent) (State, error) {
	text := in.Text
	st.Input = text
	if text == "" {
		d.alert(ctx, MsgEmpty)
		return st, ErrEmpty
	}

	next := st
	if id, editing := st.Mode.Row(); editing {
		sel, pos, ok := st.Rows.Find(id)
		if !ok {
			return st, ErrUnknownRow
		}
		if text != sel.Text {
			if err := d.rejectDuplicate(ctx, text); err != nil {
				return st, err
			}
		}
		if err := d.Items.Replace(ctx, pos, sel.Text, text); err != nil {
			return st, err
		}
		next.Rows, _ = next.Rows.Delete(id)
		next.Mode = editmode.Creating()
	} else {
		if err := d.rejectDuplicate(ctx, text); err != nil {
			return st, err
		}
		if err := d.Items.Add(ctx, text); err != nil {
			return st, err
		}
	}

	next.Rows, _ = next.Rows.Append(text)
	next.Input = ""
	return refresh(next), nil
}

func (d *Dispatcher) rejectDuplicate(ctx context.Context, text string) error {
	exists, err := d.Items.Exists(ctx, text)
	if err != nil {
		return err
	}
	if exists {
		d.alert(ctx, MsgDuplicate)
		return ErrDuplicate
	}
	return nil
}

func (d *Dispatcher) clickRow(ctx context.Context, st State, in Intent) (State, error) {
	if in.Target == TargetRemove {
		return d.remove(ctx, st, in)
	}
	return d.activateRow(ctx, st, in)
}

func (d *Dispatcher) activateRow(_ context.Context, st State, in Intent) (State, error) {
	row, _, ok := st.Rows.Find(in.Row)
	if !ok {
		return st, ErrUnknownRow
	}
	st.Rows = st.Rows.Select(row.ID)
	st.Mode = editmode.Editing(row.ID)
	st.Input = row.Text
	return st, nil
}

func (d *Dispatcher) remove(ctx context.Context, st State, in Intent) (State, error) {
	row, pos, ok := st.Rows.Find(in.Row)
	if !ok {
		return st, ErrUnknownRow
	}
	if d.Prompter == nil {
		return st, errors.New("app: no prompter to confirm removal")
	}
	yes, err := d.Prompter.Confirm(ctx, MsgConfirmRemove)
	if err != nil {
		return st, err
	}
	if !yes {
		return st, nil
	}
	if err := d.Items.RemoveAt(ctx, pos, row.Text); err != nil {
		return st, err
	}
	st.Rows, _ = st.Rows.Delete(row.ID)
	return reset(st), nil
}

func (d *Dispatcher) clearAll(ctx context.Context, st State, _ Intent) (State, error) {
	if err := d.Items.Clear(ctx); err != nil {
		return st, err
	}
	st.Rows = st.Rows.Clear()
	return reset(st), nil
}

func (d *Dispatcher) typeFilter(_ context.Context, st State, in Intent) (State, error) {
	st.Query = in.Text
	return refresh(st), nil
}

// refresh re-applies the current query and recomputes the list controls.
func refresh(st State) State {
	st.Rows = st.Rows.ApplyVisibility(filter.Predicate(st.Query))
	st.Controls = st.Rows.Controls()
	return st
}

// reset returns to creating mode with an empty input.
func reset(st State) State {
	st.Mode = editmode.Creating()
	st.Rows = st.Rows.Deselect()
	st.Input = ""
	return refresh(st)
}
