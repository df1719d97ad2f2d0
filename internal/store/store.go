// Package store holds the key/value map a kvshell session works on.
package store

import (
	"errors"
	"slices"

	"kvshell/internal/value"
)

var (
	// ErrKeyRequired is returned when an operation receives an empty key.
	ErrKeyRequired = errors.New("key is required")
	// ErrNotFound is returned by Get and Delete for an absent key.
	ErrNotFound = errors.New("key not found")
	// ErrNotExist is returned by Update when the key has never been set.
	ErrNotExist = errors.New("key does not exist")
)

// Store maps text keys to values. Entries are replaced and removed whole.
// A Store is owned by one session and is not safe for concurrent use.
type Store struct {
	entries map[string]value.Value
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[string]value.Value)}
}

// Set inserts or replaces the value under key.
func (s *Store) Set(key string, v value.Value) error {
	if key == "" {
		return ErrKeyRequired
	}
	s.entries[key] = v
	return nil
}

// Get returns the value under key.
func (s *Store) Get(key string) (value.Value, error) {
	if key == "" {
		return value.Value{}, ErrKeyRequired
	}
	v, ok := s.entries[key]
	if !ok {
		return value.Value{}, ErrNotFound
	}
	return v, nil
}

// Update replaces the value under an existing key.
func (s *Store) Update(key string, v value.Value) error {
	if key == "" {
		return ErrKeyRequired
	}
	if _, ok := s.entries[key]; !ok {
		return ErrNotExist
	}
	s.entries[key] = v
	return nil
}

// Delete removes key from the store.
func (s *Store) Delete(key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	if _, ok := s.entries[key]; !ok {
		return ErrNotFound
	}
	delete(s.entries, key)
	return nil
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Keys returns all keys in ascending byte order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
