package imagestore

import (
	"sync"

	"github.com/FocuswithJustin/Maestro/core/errors"
)

// memoryStore is a thread-safe in-memory image store.
type memoryStore struct {
	mu     sync.RWMutex
	images map[string][]byte
	hashes map[string]string
	order  []string
}

// NewMemory creates an empty in-memory image store.
func NewMemory() Store {
	return &memoryStore{
		images: make(map[string][]byte),
		hashes: make(map[string]string),
	}
}

// Add registers image data under name. First write wins; adding an
// existing name is a no-op.
func (s *memoryStore) Add(name string, data []byte) error {
	if name == "" {
		return errors.NewValidation("name", "image name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.images[name]; exists {
		return nil
	}

	// Copy so later mutation of the caller's slice cannot change the store.
	buf := make([]byte, len(data))
	copy(buf, data)

	s.images[name] = buf
	s.hashes[name] = hashData(buf)
	s.order = append(s.order, name)
	return nil
}

// Lookup retrieves image data by name.
func (s *memoryStore) Lookup(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.images[name]
	if !ok {
		return nil, errors.NewNotFound("image", name)
	}
	return data, nil
}

// Names returns the stored image names in insertion order.
func (s *memoryStore) Names() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names, nil
}

// Entries returns metadata for all stored images in insertion order.
func (s *memoryStore) Entries() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		entries = append(entries, Entry{
			Name:   name,
			BLAKE3: s.hashes[name],
			Size:   int64(len(s.images[name])),
		})
	}
	return entries, nil
}
