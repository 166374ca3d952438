package store

import (
	"context"
	"sync"
)

// NewMemory returns a Persistence kept in process memory. It starts absent
// unless items are given.
func NewMemory(items ...string) *Memory {
	m := &Memory{}
	if items != nil {
		m.items = append([]string{}, items...)
		m.present = true
	}
	return m
}

// Memory is an in-process Persistence used for tests and ephemeral sessions.
type Memory struct {
	mu       sync.Mutex
	items    []string
	present  bool
	writes   int
	watchers []chan Event
}

func (m *Memory) Read(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return []string{}, nil
	}
	return append([]string{}, m.items...), nil
}

func (m *Memory) Write(_ context.Context, items []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]string{}, items...)
	m.present = true
	m.writes++
	m.notify(Event{Type: EventWritten, Key: defaultKey})
	return nil
}

func (m *Memory) Erase(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.present = false
	m.notify(Event{Type: EventErased, Key: defaultKey})
	return nil
}

// Present reports whether the slot currently holds a value.
func (m *Memory) Present() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.present
}

// Writes counts full-value writes since creation.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

// notify must be called with m.mu held.
func (m *Memory) notify(ev Event) {
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}
