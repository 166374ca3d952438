package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/items"
	"tableflip.dev/itemlist/pkg/render"
	"tableflip.dev/itemlist/pkg/runner/tea/internal/theme"
)

type focus int

const (
	placeholderCreating = "Add an item"
	placeholderEditing  = "Edit the selected item"
)

const (
	focusInput focus = iota
	focusList
	focusFilter
)

// prompter answers the dispatcher from inside the event loop. The model sets
// answer before dispatching a confirmed removal.
type prompter struct {
	alert  string
	answer bool
}

func (p *prompter) Alert(_ context.Context, msg string) {
	p.alert = msg
}

func (p *prompter) Confirm(_ context.Context, _ string) (bool, error) {
	return p.answer, nil
}

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	ctx      context.Context
	d        *app.Dispatcher
	st       app.State
	prompter *prompter

	input  textinput.Model
	filter textinput.Model
	focus  focus
	cursor int

	confirming render.RowID
	err        error

	keys  keyMap
	help  help.Model
	theme theme.Theme

	width  int
	height int
}

// New loads the list and returns a model focused on the input.
func New(ctx context.Context, store *items.Store, log *zap.Logger) (Model, error) {
	p := &prompter{}
	d := app.New(store, p, log)
	st, err := d.Load(ctx)
	if err != nil {
		return Model{}, err
	}

	in := textinput.New()
	in.Placeholder = placeholderCreating
	in.Prompt = "› "
	in.Focus()

	f := textinput.New()
	f.Placeholder = "Filter items"
	f.Prompt = "/ "

	return Model{
		ctx:      ctx,
		d:        d,
		st:       st,
		prompter: p,
		input:    in,
		filter:   f,
		focus:    focusInput,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    theme.Default(),
	}, nil
}

// State is the dispatcher state the model is showing.
func (m Model) State() app.State {
	return m.st
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.confirming != "" {
			return m.updateConfirm(msg)
		}
		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusFilter:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.prompter.answer = true
	case key.Matches(msg, m.keys.No):
		m.prompter.answer = false
	default:
		return m, nil
	}
	id := m.confirming
	m.confirming = ""
	m = m.dispatch(app.ActivateRemove(id))
	m.prompter.answer = false
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m = m.dispatch(app.Submit(m.input.Value()))
		return m, nil
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Switch):
		m = m.focusOn(focusList)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Submit):
		m = m.focusOn(focusList)
		return m, nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if q := m.filter.Value(); q != before {
		m = m.dispatch(app.TypeFilter(q))
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.st.Rows.Visible()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		if row, ok := m.current(); ok {
			m = m.dispatch(app.ActivateRow(row.ID))
			m = m.focusOn(focusInput)
		}
	case key.Matches(msg, m.keys.Remove):
		if row, ok := m.current(); ok {
			m.confirming = row.ID
		}
	case key.Matches(msg, m.keys.Clear):
		if m.st.Controls.ClearVisible {
			m = m.dispatch(app.ClearAll())
		}
	case key.Matches(msg, m.keys.Filter):
		if m.st.Controls.FilterVisible {
			m = m.focusOn(focusFilter)
		}
	case key.Matches(msg, m.keys.Input), key.Matches(msg, m.keys.Switch):
		m = m.focusOn(focusInput)
	}
	return m, nil
}

func (m Model) current() (render.Row, bool) {
	visible := m.st.Rows.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return render.Row{}, false
	}
	return visible[m.cursor], true
}

func (m Model) focusOn(f focus) Model {
	m.focus = f
	m.input.Blur()
	m.filter.Blur()
	switch f {
	case focusInput:
		m.input.Focus()
	case focusFilter:
		m.filter.Focus()
	}
	return m
}

// dispatch runs one intent and syncs the widgets to the resulting state.
// Unsubmitted input is part of the state, so intents that leave the input
// alone (filtering, a declined removal) keep whatever the user typed.
func (m Model) dispatch(in app.Intent) Model {
	m.prompter.alert = ""
	m.err = nil
	m.st.Input = m.input.Value()
	st, err := m.d.Dispatch(m.ctx, m.st, in)
	if err != nil {
		if !app.IsRecoverable(err) {
			m.err = err
		}
		return m
	}
	m.st = st
	if m.input.Value() != st.Input {
		m.input.SetValue(st.Input)
		m.input.CursorEnd()
	}
	m.input.Placeholder = placeholderCreating
	if st.Mode.IsEditing() {
		m.input.Placeholder = placeholderEditing
	}
	if !st.Controls.FilterVisible && m.focus == focusFilter {
		m = m.focusOn(focusList)
	}
	if n := len(st.Rows.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render(fmt.Sprintf("Items (%d)", m.st.Rows.Len())))
	b.WriteString("\n\n")

	button := t.Button(m.st.SubmitAffordance())
	a := m.st.SubmitAffordance()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		t.Input.Render(m.input.View()),
		" ",
		button.Render(a.Icon+" "+a.Label),
	))
	b.WriteString("\n")

	if m.st.Controls.FilterVisible {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.st.Rows.Visible()
	if len(visible) == 0 {
		label := "no items"
		if m.st.Rows.Len() > 0 {
			label = "no matching items"
		}
		b.WriteString(t.Hidden.Render(label))
		b.WriteString("\n")
	}
	for i, row := range visible {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	if m.st.Controls.ClearVisible {
		b.WriteString("\n")
		b.WriteString(t.Control.Render("C  Clear items"))
		b.WriteString("\n")
	}

	if m.prompter.alert != "" {
		b.WriteString("\n")
		b.WriteString(t.Alert.Render("! " + m.prompter.alert))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(t.Alert.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.confirming != "" {
		b.WriteString("\n")
		b.WriteString(t.Confirm.Render(app.MsgConfirmRemove + " [y/N]"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderRow(i int, row render.Row) string {
	t := m.theme
	marker := "  "
	style := t.Row
	if row.Selected {
		style = t.Selected
	}
	if m.focus == focusList && i == m.cursor {
		marker = t.Cursor.Render("› ")
		if !row.Selected {
			style = t.Cursor
		}
	}
	remove := t.Remove.Render(" ✕")
	text := row.Text
	if m.width > 0 {
		// marker and remove glyph take four cells
		if w := m.width - 4; w > 0 {
			text = truncate.StringWithTail(text, uint(w), "…")
		}
	}
	return marker + style.Render(text) + remove
}

// ErrNoTerminal is returned by Run when stdout is not a terminal.
var ErrNoTerminal = errors.New("teaui: no terminal")
