package teaui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/editmode"
	"tableflip.dev/itemlist/pkg/items"
	"tableflip.dev/itemlist/pkg/runner/tea/internal/theme"
	"tableflip.dev/itemlist/pkg/store"
)

func newModel(t *testing.T, seed ...string) (Model, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(seed...)
	m, err := New(context.Background(), items.New(mem, nil), nil)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.theme = theme.New(false)
	return m, mem
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func stored(t *testing.T, mem *store.Memory) []string {
	t.Helper()
	got, err := mem.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return got
}

func TestSubmitFromInput(t *testing.T) {
	m, mem := newModel(t)
	m = send(t, m, runes("milk"), enter)

	if diff := cmp.Diff([]string{"milk"}, stored(t, mem)); diff != "" {
		t.Fatalf("stored items (-want +got):\n%s", diff)
	}
	if got := m.input.Value(); got != "" {
		t.Fatalf("input not cleared, got %q", got)
	}
	if !m.State().Controls.ClearVisible || !m.State().Controls.FilterVisible {
		t.Fatalf("controls should show with one item: %+v", m.State().Controls)
	}
	if v := m.View(); !strings.Contains(v, "milk") || !strings.Contains(v, "Clear items") {
		t.Fatalf("view missing row or clear control:\n%s", v)
	}
}

func TestRejectedSubmitKeepsInput(t *testing.T) {
	m, mem := newModel(t, "milk")

	m = send(t, m, enter)
	if m.prompter.alert != app.MsgEmpty {
		t.Fatalf("expected empty alert, got %q", m.prompter.alert)
	}

	m = send(t, m, runes("milk"), enter)
	if m.prompter.alert != app.MsgDuplicate {
		t.Fatalf("expected duplicate alert, got %q", m.prompter.alert)
	}
	if got := m.input.Value(); got != "milk" {
		t.Fatalf("rejected text should stay in the input, got %q", got)
	}
	if mem.Writes() != 0 {
		t.Fatalf("rejected submits wrote %d times", mem.Writes())
	}
	if !strings.Contains(m.View(), app.MsgDuplicate) {
		t.Fatal("alert not rendered")
	}
}

func TestEditRow(t *testing.T) {
	m, mem := newModel(t, "milk", "eggs")

	m = send(t, m, tab, down, enter)
	if !m.State().Mode.IsEditing() {
		t.Fatalf("expected editing mode, got %s", m.State().Mode)
	}
	if got := m.input.Value(); got != "eggs" {
		t.Fatalf("input should hold the row text, got %q", got)
	}
	if m.focus != focusInput {
		t.Fatal("edit should focus the input")
	}
	if a := m.State().SubmitAffordance(); !strings.Contains(m.View(), a.Label) || a.Label != "Edit item" {
		t.Fatalf("edit affordance not shown: %+v", a)
	}

	m = send(t, m, runes(" x6"), enter)
	if diff := cmp.Diff([]string{"milk", "eggs x6"}, stored(t, mem)); diff != "" {
		t.Fatalf("stored items (-want +got):\n%s", diff)
	}
	if m.State().Mode.Kind() != editmode.KindCreating {
		t.Fatalf("expected creating mode after edit, got %s", m.State().Mode)
	}
}

func TestRemoveAsksFirst(t *testing.T) {
	m, mem := newModel(t, "milk", "eggs")

	m = send(t, m, tab, runes("d"))
	if m.confirming == "" {
		t.Fatal("remove should ask for confirmation")
	}
	if !strings.Contains(m.View(), app.MsgConfirmRemove) {
		t.Fatal("confirmation not rendered")
	}
	m = send(t, m, runes("n"))
	if m.confirming != "" {
		t.Fatal("confirmation still open after decline")
	}
	if diff := cmp.Diff([]string{"milk", "eggs"}, stored(t, mem)); diff != "" {
		t.Fatalf("declined remove changed items (-want +got):\n%s", diff)
	}

	m = send(t, m, runes("d"), runes("y"))
	if diff := cmp.Diff([]string{"eggs"}, stored(t, mem)); diff != "" {
		t.Fatalf("stored items (-want +got):\n%s", diff)
	}
	if m.prompter.answer {
		t.Fatal("answer should reset after removal")
	}
}

func TestClearAllHidesControls(t *testing.T) {
	m, mem := newModel(t, "milk", "eggs")

	m = send(t, m, tab, runes("C"))
	if mem.Present() {
		t.Fatal("clear should erase the slot")
	}
	if c := m.State().Controls; c.ClearVisible || c.FilterVisible {
		t.Fatalf("controls should hide with no rows: %+v", c)
	}
	if v := m.View(); strings.Contains(v, "Clear items") || !strings.Contains(v, "no items") {
		t.Fatalf("unexpected view after clear:\n%s", v)
	}
}

func TestFilterTyping(t *testing.T) {
	m, _ := newModel(t, "Milk", "eggs", "oat milk")

	m = send(t, m, tab, runes("/"), runes("mil"))
	var got []string
	for _, r := range m.State().Rows.Visible() {
		got = append(got, r.Text)
	}
	if diff := cmp.Diff([]string{"Milk", "oat milk"}, got); diff != "" {
		t.Fatalf("visible rows (-want +got):\n%s", diff)
	}

	m = send(t, m, esc)
	if m.focus != focusList {
		t.Fatal("esc should return to the list")
	}
	if m.State().Query != "mil" {
		t.Fatalf("query lost, got %q", m.State().Query)
	}
}

func TestQuitFromList(t *testing.T) {
	m, _ := newModel(t)
	m = send(t, m, tab)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestBindingsHaveHelp(t *testing.T) {
	for _, b := range Bindings() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Fatalf("binding %v has no help", b.Keys())
		}
	}
}

func TestFilterKeepsUnsubmittedInput(t *testing.T) {
	m, _ := newModel(t, "eggs")

	m = send(t, m, runes("milk"), tab, runes("/"), runes("a"))
	if got := m.input.Value(); got != "milk" {
		t.Fatalf("filtering changed the input: got %q, want %q", got, "milk")
	}
	if got := m.filter.Value(); got != "a" {
		t.Fatalf("expected query %q, got %q", "a", got)
	}
}

func TestDeclinedRemoveKeepsUnsubmittedInput(t *testing.T) {
	m, mem := newModel(t, "eggs")

	m = send(t, m, runes("milk"), tab, runes("d"), runes("n"))
	if got := m.input.Value(); got != "milk" {
		t.Fatalf("declined remove changed the input: got %q, want %q", got, "milk")
	}
	if mem.Writes() != 0 {
		t.Fatalf("declined remove wrote %d times", mem.Writes())
	}
}

func TestFilterWhileEditingKeepsEdits(t *testing.T) {
	m, mem := newModel(t, "Apples", "Bananas")

	m = send(t, m, tab, enter, runes("X"), tab, runes("/"), runes("b"))
	if got := m.input.Value(); got != "ApplesX" {
		t.Fatalf("filtering undid the edit: got %q, want %q", got, "ApplesX")
	}
	if !m.State().Mode.IsEditing() {
		t.Fatalf("filtering left edit mode: %s", m.State().Mode)
	}
	if m.input.Placeholder != placeholderEditing {
		t.Fatalf("expected the editing placeholder, got %q", m.input.Placeholder)
	}

	m = send(t, m, esc, runes("i"), enter)
	if diff := cmp.Diff([]string{"Bananas", "ApplesX"}, stored(t, mem)); diff != "" {
		t.Fatalf("stored items (-want +got):\n%s", diff)
	}
	if m.input.Placeholder != placeholderCreating {
		t.Fatalf("expected the creating placeholder, got %q", m.input.Placeholder)
	}
}
