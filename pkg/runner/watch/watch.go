// Package watch provides the runner logic for following changes to the list.
package watch

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"tableflip.dev/itemlist/pkg/items"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/render"
	"tableflip.dev/itemlist/pkg/store"
)

// Watch reprints the list every time the persisted slot changes, until the
// context is cancelled.
type Watch struct {
	Persistence store.Persistence
	Out         io.Writer
	Log         *zap.Logger

	// printed is called after each print; tests use it to observe progress.
	printed func(texts []string)
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	s := items.New(n.Persistence, log)

	if err := n.print(ctx, s); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.Debug("slot changed", zap.Stringer("event", ev.Type))
			if err := n.print(ctx, s); err != nil {
				return err
			}
		}
	}
}

func (n *Watch) print(ctx context.Context, s *items.Store) error {
	texts, err := s.List(ctx)
	if err != nil {
		return err
	}
	rows := render.Reload(texts)

	pp := printers.PrettyPrint{Out: n.Out}
	pp.TitleWithCount("Items", rows.Len())
	pp.Rows(rows.Rows())
	if n.printed != nil {
		n.printed(texts)
	}
	return nil
}
