// Package snapshot persists one entity type per JSON file with whole-file
// load-mutate-store semantics. Every store serializes its operations behind
// a single critical section so concurrent request goroutines observe a
// linearizable history; read-only scans share a read lock.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Store is a durable key-to-record mapping backed by a single JSON snapshot
// file. Operations load the full snapshot, apply the mutation and replace the
// file atomically (temp file + rename). On first use a missing or empty file
// materializes as an empty snapshot.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	path string
	log  zerolog.Logger
}

func NewStore[K comparable, V any](path string, log zerolog.Logger) *Store[K, V] {
	return &Store[K, V]{
		path: path,
		log:  log.With().Str("snapshot", filepath.Base(path)).Logger(),
	}
}

// Get returns the record stored under key, or false when absent.
func (s *Store[K, V]) Get(key K) (V, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero V
	m, err := s.load()
	if err != nil {
		return zero, false, err
	}
	v, ok := m[key]
	if !ok {
		return zero, false, nil
	}
	return v, true, nil
}

// Put upserts a record under key.
func (s *Store[K, V]) Put(key K, value V) error {
	return s.Update(func(m map[K]V) error {
		m[key] = value
		return nil
	})
}

// Remove deletes the record under key. Removing an absent key is a no-op.
func (s *Store[K, V]) Remove(key K) error {
	return s.Update(func(m map[K]V) error {
		delete(m, key)
		return nil
	})
}

// Values returns every stored record. Order is unspecified but stable within
// one snapshot read.
func (s *Store[K, V]) Values() ([]V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.load()
	if err != nil {
		return nil, err
	}
	values := make([]V, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values, nil
}

// Update runs fn over the decoded snapshot under the exclusive lock and
// persists the result. When fn returns an error nothing is written.
func (s *Store[K, V]) Update(fn func(map[K]V) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return s.save(m)
}

func (s *Store[K, V]) load() (map[K]V, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(data) == 0) {
		m := make(map[K]V)
		if err := s.save(m); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot read %s: %w", s.path, err)
	}

	var m map[K]V
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("snapshot decode %s: %w", s.path, err)
	}
	if m == nil {
		m = make(map[K]V)
	}
	return m, nil
}

func (s *Store[K, V]) save(m map[K]V) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot encode %s: %w", s.path, err)
	}

	// Write to a unique temp file first so a crash mid-write never leaves a
	// truncated snapshot behind. Rename is atomic within the directory.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot temp %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot close %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("snapshot replace %s: %w", s.path, err)
	}
	return nil
}
