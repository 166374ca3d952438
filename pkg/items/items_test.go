package items

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/itemlist/pkg/store"
)

type failingPersistence struct {
	store.Persistence
	err error
}

func (f failingPersistence) Write(context.Context, []string) error { return f.err }

func TestListEmptyWhenNothingPersisted(t *testing.T) {
	s := New(store.NewMemory(), nil)
	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestAddAppendsInOrderWithoutDedupe(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	s := New(mem, nil)
	for _, it := range []string{"b", "a", "b"} {
		if err := s.Add(ctx, it); err != nil {
			t.Fatalf("add %q: %v", it, err)
		}
	}
	got, _ := s.List(ctx)
	if diff := cmp.Diff([]string{"b", "a", "b"}, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if mem.Writes() != 3 {
		t.Fatalf("expected one whole-value write per add, got %d", mem.Writes())
	}
}

func TestRemoveDropsEveryEqualEntry(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory("x", "y", "x", "z"), nil)
	if err := s.Remove(ctx, "x"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	got, _ := s.List(ctx)
	if diff := cmp.Diff([]string{"y", "z"}, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveAt(t *testing.T) {
	tests := map[string]struct {
		seed []string
		pos  int
		text string
		want []string
	}{
		"matching position keeps equal entries elsewhere": {
			seed: []string{"x", "y", "x"},
			pos:  2,
			text: "x",
			want: []string{"x", "y"},
		},
		"mismatch falls back to by-value removal": {
			seed: []string{"x", "y", "x"},
			pos:  1,
			text: "x",
			want: []string{"y"},
		},
		"out of range falls back to by-value removal": {
			seed: []string{"a", "b"},
			pos:  5,
			text: "b",
			want: []string{"a"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := New(store.NewMemory(tc.seed...), nil)
			if err := s.RemoveAt(ctx, tc.pos, tc.text); err != nil {
				t.Fatalf("remove at: %v", err)
			}
			got, _ := s.List(ctx)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExistsIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory("Apples"), nil)
	if ok, _ := s.Exists(ctx, "Apples"); !ok {
		t.Fatal("expected Apples to exist")
	}
	if ok, _ := s.Exists(ctx, "apples"); ok {
		t.Fatal("expected apples not to exist")
	}
}

func TestClearErasesSlot(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory("a", "b")
	s := New(mem, nil)
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mem.Present() {
		t.Fatal("expected slot to be erased, not rewritten")
	}
}

func TestWriteFailurePropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	s := New(failingPersistence{Persistence: store.NewMemory(), err: boom}, nil)
	if err := s.Add(context.Background(), "a"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}

func TestNoPersistence(t *testing.T) {
	s := &Store{}
	if _, err := s.List(context.Background()); err == nil {
		t.Fatal("expected error without persistence")
	}
}

func TestReplaceAtPosition(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory("a", "b", "a")
	s := New(mem, nil)
	if err := s.Replace(ctx, 2, "a", "c"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, _ := s.List(ctx)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	if mem.Writes() != 1 {
		t.Fatalf("expected one write, got %d", mem.Writes())
	}
}

func TestReplaceFallsBackToValue(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory("b", "a", "a"), nil)
	if err := s.Replace(ctx, 0, "a", "c"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, _ := s.List(ctx)
	if diff := cmp.Diff([]string{"b", "c"}, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestReplaceWrapsWriteError(t *testing.T) {
	boom := errors.New("boom")
	s := New(failingPersistence{Persistence: store.NewMemory("a"), err: boom}, nil)
	if err := s.Replace(context.Background(), 0, "a", "b"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
}
