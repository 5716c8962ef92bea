package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"storefront-client/internal/domain"
)

// schemaVersion is the canonical on-disk format. Version 1 stores full
// product snapshots per line; the older bare id->quantity map lost product
// detail and is deliberately not readable (it parses as corrupt).
const schemaVersion = 1

type envelope struct {
	Version int               `json:"version"`
	Lines   []domain.CartLine `json:"lines"`
}

// File persists the cart as one JSON document at a fixed path, the
// equivalent of a single browser storage slot. Writes go through a temp
// file and rename so a crash never leaves a half-written cart behind.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) (domain.Cart, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("%w: %v", domain.ErrCartCorrupt, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: %v", domain.ErrCartCorrupt, err)
	}
	if env.Version != schemaVersion {
		return domain.Cart{}, fmt.Errorf("%w: unsupported schema version %d", domain.ErrCartCorrupt, env.Version)
	}
	return domain.Cart{Lines: env.Lines}, nil
}

func (f *File) Save(_ context.Context, c domain.Cart) error {
	raw, err := json.Marshal(envelope{Version: schemaVersion, Lines: c.Lines})
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("create temp cart file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write cart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close cart file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cart file: %w", err)
	}
	return nil
}

func (f *File) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear cart file: %w", err)
	}
	return nil
}
