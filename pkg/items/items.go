// Package items is the in-memory view of the persisted item collection.
package items

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/itemlist/pkg/store"
)

var errNoPersistence = errors.New("items: no persistence configured")

// Store exposes ordered collection operations over a single persistence slot.
// Every mutation rewrites the whole slot.
type Store struct {
	Persistence store.Persistence
	Log         *zap.Logger
}

// New wraps p.
func New(p store.Persistence, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{Persistence: p, Log: log}
}

func (s *Store) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// List returns the full collection in insertion order; empty if nothing has
// been persisted yet.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Read(ctx)
}

// Add appends text. Callers are responsible for rejecting duplicates.
func (s *Store) Add(ctx context.Context, text string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	all = append(all, text)
	if err := s.Persistence.Write(ctx, all); err != nil {
		return fmt.Errorf("items: add: %w", err)
	}
	s.logger().Debug("item added", zap.String("text", text), zap.Int("count", len(all)))
	return nil
}

// Remove drops every element equal to text.
func (s *Store) Remove(ctx context.Context, text string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(all))
	for _, it := range all {
		if it != text {
			kept = append(kept, it)
		}
	}
	if err := s.Persistence.Write(ctx, kept); err != nil {
		return fmt.Errorf("items: remove: %w", err)
	}
	s.logger().Debug("item removed", zap.String("text", text), zap.Int("dropped", len(all)-len(kept)))
	return nil
}

// RemoveAt drops the element at pos when it still holds text. If the slot no
// longer matches (changed by another writer) it falls back to Remove(text).
func (s *Store) RemoveAt(ctx context.Context, pos int, text string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	if pos < 0 || pos >= len(all) || all[pos] != text {
		s.logger().Debug("position mismatch, removing by value",
			zap.Int("pos", pos), zap.String("text", text))
		return s.Remove(ctx, text)
	}
	kept := append(all[:pos:pos], all[pos+1:]...)
	if err := s.Persistence.Write(ctx, kept); err != nil {
		return fmt.Errorf("items: remove: %w", err)
	}
	s.logger().Debug("item removed", zap.String("text", text), zap.Int("pos", pos))
	return nil
}

// Replace drops the element at pos when it still holds old (every element
// equal to old otherwise) and appends text, in a single write.
func (s *Store) Replace(ctx context.Context, pos int, old, text string) error {
	all, err := s.List(ctx)
	if err != nil {
		return err
	}
	var kept []string
	if pos >= 0 && pos < len(all) && all[pos] == old {
		kept = append(all[:pos:pos], all[pos+1:]...)
	} else {
		s.logger().Debug("position mismatch, replacing by value",
			zap.Int("pos", pos), zap.String("text", old))
		kept = make([]string, 0, len(all)+1)
		for _, it := range all {
			if it != old {
				kept = append(kept, it)
			}
		}
	}
	kept = append(kept, text)
	if err := s.Persistence.Write(ctx, kept); err != nil {
		return fmt.Errorf("items: replace: %w", err)
	}
	s.logger().Debug("item replaced", zap.String("old", old), zap.String("text", text))
	return nil
}

// Exists reports whether text is in the collection, by exact match.
func (s *Store) Exists(ctx context.Context, text string) (bool, error) {
	all, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, it := range all {
		if it == text {
			return true, nil
		}
	}
	return false, nil
}

// Clear erases the slot itself rather than writing an empty collection.
func (s *Store) Clear(ctx context.Context) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := s.Persistence.Erase(ctx); err != nil {
		return fmt.Errorf("items: clear: %w", err)
	}
	s.logger().Debug("items cleared")
	return nil
}
