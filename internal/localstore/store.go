// Package localstore is a namespaced JSON file key-value store for
// client-local state that lives outside the backend: savings goals,
// notepad text and calculator history. One file per key, no schema
// versioning. Absent keys read as empty; malformed JSON is logged and
// reset to empty rather than surfaced as an error.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	KeySavingsGoals      = "savings_goals"
	KeyNotes             = "notes"
	KeyCalculatorHistory = "calculator_history"
)

type Store struct {
	dir string
	log zerolog.Logger
}

func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create localstore dir %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get unmarshals the value under key into v. A missing key leaves v at its
// zero value. A corrupt file is logged, removed, and treated as missing.
func (s *Store) Get(key string, v any) error {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("malformed local state, resetting")
		_ = os.Remove(s.path(key))
		return nil
	}
	return nil
}

// Put replaces the value under key. The write goes through a temp file and
// rename so a crash never leaves a half-written value behind.
func (s *Store) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}
