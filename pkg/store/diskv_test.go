package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Key() string {
	return "items"
}

func (t testConfig) CacheSizeMax() uint64 {
	return 0
}

func persistences(t *testing.T) map[string]Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return map[string]Persistence{
		"diskv":  p,
		"memory": NewMemory(),
	}
}

func TestReadAbsentSlotIsEmpty(t *testing.T) {
	for name, p := range persistences(t) {
		t.Run(name, func(t *testing.T) {
			got, err := p.Read(context.Background())
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Fatalf("expected empty non-nil collection, got %#v", got)
			}
		})
	}
}

func TestWriteReplacesWholeValue(t *testing.T) {
	ctx := context.Background()
	for name, p := range persistences(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Write(ctx, []string{"Apples", "Bananas", "Cherries"}); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := p.Write(ctx, []string{"Cherries", "Apples"}); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := p.Read(ctx)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if diff := cmp.Diff([]string{"Cherries", "Apples"}, got); diff != "" {
				t.Fatalf("read mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEraseRemovesSlot(t *testing.T) {
	ctx := context.Background()
	for name, p := range persistences(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Erase(ctx); err != nil {
				t.Fatalf("erase of absent slot: %v", err)
			}
			if err := p.Write(ctx, []string{"one"}); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := p.Erase(ctx); err != nil {
				t.Fatalf("erase: %v", err)
			}
			got, err := p.Read(ctx)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected empty after erase, got %v", got)
			}
		})
	}
}

func TestDiskvSlotIsJSONArray(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Write(context.Background(), []string{"milk", "eggs"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(base, "items"))
	if err != nil {
		t.Fatalf("read slot file: %v", err)
	}
	if string(b) != `["milk","eggs"]` {
		t.Fatalf("unexpected slot content %q", b)
	}

	if err := p.Erase(context.Background()); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "items")); !os.IsNotExist(err) {
		t.Fatalf("expected slot file removed, stat err = %v", err)
	}
}

func TestDiskvReadsValueWrittenByAnotherProcess(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "items"), []byte(`["from","elsewhere"]`), 0o644); err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	got, err := p.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff([]string{"from", "elsewhere"}, got); diff != "" {
		t.Fatalf("read mismatch (-want +got):\n%s", diff)
	}
}

func TestDiskvCorruptSlotIsAnError(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "items"), []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.Read(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	t.Setenv("ITEMLIST_CONFIG_PATH", t.TempDir())
	dir := t.TempDir()
	t.Setenv("ITEMLIST_PATH", dir)
	t.Setenv("ITEMLIST_KEY", "groceries")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != dir {
		t.Fatalf("expected base path %q, got %q", dir, cfg.BasePath())
	}
	if cfg.Key() != "groceries" {
		t.Fatalf("expected key groceries, got %q", cfg.Key())
	}
	if cfg.CacheSizeMax() != defaultCacheSize {
		t.Fatalf("expected default cache size, got %d", cfg.CacheSizeMax())
	}
	if Uncached(cfg).CacheSizeMax() != 0 {
		t.Fatal("expected uncached config to disable cache")
	}
}
