package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Persistence is the contract for the single persistence slot holding the
// ordered item collection.
type Persistence interface {
	// Read returns the stored collection. An absent slot reads as empty.
	Read(ctx context.Context) ([]string, error)
	// Write replaces the whole stored collection.
	Write(ctx context.Context, items []string) error
	// Erase removes the slot entirely.
	Erase(ctx context.Context) error
	// Watch streams change notifications until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Option customizes a Persistence created by Load.
type Option func(*persistence)

// WithLogger routes store diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(p *persistence) {
		if l != nil {
			p.log = l
		}
	}
}

const tempDirName = ".tmp"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath, err := homedir.Expand(cfg.BasePath())
	if err != nil {
		return nil, fmt.Errorf("store: expand base path: %w", err)
	}
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}

	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, tempDirName),
			CacheSizeMax: cfg.CacheSizeMax(),
		}),
		basePath: basePath,
		key:      cfg.Key(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
	log      *zap.Logger
}

func (p *persistence) Read(_ context.Context) ([]string, error) {
	if !p.d.Has(p.key) {
		return []string{}, nil
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	items, err := decode(val)
	if err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", p.key, err)
	}
	return items, nil
}

func (p *persistence) Write(_ context.Context, items []string) error {
	data, err := encode(items)
	if err != nil {
		return err
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	p.log.Debug("slot written", zap.String("key", p.key), zap.Int("items", len(items)))
	return nil
}

func (p *persistence) Erase(_ context.Context) error {
	if !p.d.Has(p.key) {
		return nil
	}
	if err := p.d.Erase(p.key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", p.key, err)
	}
	p.log.Debug("slot erased", zap.String("key", p.key))
	return nil
}

func encode(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

func decode(val []byte) ([]string, error) {
	items := []string{}
	if len(val) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, err
	}
	if items == nil {
		// a stored JSON null
		items = []string{}
	}
	return items, nil
}
