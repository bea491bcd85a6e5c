package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// JSONStateRepo stores the state as a single indented JSON document.
type JSONStateRepo struct {
	path string
	mu   sync.Mutex
}

func NewJSONStateRepo(path string) *JSONStateRepo {
	return &JSONStateRepo{path: path}
}

func (r *JSONStateRepo) Location() string { return r.path }

func (r *JSONStateRepo) Load(_ context.Context) (domain.AppState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewAppState(), nil
		}
		return domain.AppState{}, fmt.Errorf("reading %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.AppState{}, fmt.Errorf("%s is empty: %w", r.path, domain.ErrCorruptData)
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.AppState{}, fmt.Errorf("decoding %s: %v: %w", r.path, err, domain.ErrCorruptData)
	}
	if err := state.CheckVersion(); err != nil {
		return domain.AppState{}, fmt.Errorf("%s: %w", r.path, err)
	}
	return state.Normalize(), nil
}

// Save writes to a temp file in the same directory and renames it over the
// old file, so a failed write never leaves a truncated document behind.
func (r *JSONStateRepo) Save(_ context.Context, state domain.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	payload, err := json.MarshalIndent(state.Normalize(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	payload = append(payload, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("syncing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	return nil
}

func (r *JSONStateRepo) Backup(_ context.Context, suffix string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", r.path, err)
	}
	dst := r.path + suffix
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", dst, err)
	}
	return dst, nil
}
