package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a slot change notification.
type EventType int

const (
	// EventWritten indicates the slot holds a new value.
	EventWritten EventType = iota

	// EventErased indicates the slot was removed entirely.
	EventErased

	// EventInvalidated signals the watcher could not classify a change and
	// callers should re-read the slot.
	EventInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventWritten:
		return "written"
	case EventErased:
		return "erased"
	default:
		return "invalidated"
	}
}

// Event is emitted by Persistence.Watch when the slot changes.
type Event struct {
	Type EventType
	Key  string
}

const throttleDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid losing events. The channel is closed once ctx is
// done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.log.Warn("watcher close", zap.Error(err))
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	slotPath := filepath.Join(p.basePath, p.key)
	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer re-reads the whole slot on any event, so a
				// dropped notification is covered by the next one.
			}
		}

		throttle := newEventThrottle(throttleDelay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Debug("watcher error", zap.Error(err))
				throttle.Enqueue(Event{Type: EventInvalidated, Key: p.key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != slotPath {
					continue
				}
				typ := EventWritten
				if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					if _, err := os.Stat(slotPath); errors.Is(err, os.ErrNotExist) {
						typ = EventErased
					}
				}
				throttle.Enqueue(Event{Type: typ, Key: p.key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so readers re-read the
// slot once per burst of filesystem activity instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]Event
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[ev.Type] = ev

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[EventType]Event)
	t.timer = nil

	// send never blocks, so it is safe under the lock.
	for _, typ := range []EventType{EventInvalidated, EventErased, EventWritten} {
		if ev, ok := pending[typ]; ok {
			send(ev)
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
