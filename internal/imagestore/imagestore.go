// Package imagestore provides the shared image cache used during score
// loading. Images embedded in score packages are registered by name; the
// store is append-only and idempotent per name, so repeated loads of the
// same package (or concurrent loads sharing the store) never corrupt it.
//
// The store is an injected dependency of the reader, not ambient global
// state, so tests can substitute an in-memory stub.
package imagestore

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Entry describes one stored image.
type Entry struct {
	Name string `json:"name"`
	// BLAKE3 is the hex-encoded BLAKE3 content hash of the image data.
	BLAKE3 string `json:"blake3"`
	Size   int64  `json:"size_bytes"`
}

// Store is the image cache consumed by the score reader.
//
// Add is idempotent per name: adding a name that already exists is a
// no-op and not an error, regardless of content. Implementations
// synchronize internally; callers need no external locking.
type Store interface {
	// Add registers image data under the given name.
	Add(name string, data []byte) error

	// Lookup retrieves image data by name.
	Lookup(name string) ([]byte, error)

	// Names returns the stored image names in insertion order.
	Names() ([]string, error)

	// Entries returns metadata for all stored images in insertion order.
	Entries() ([]Entry, error)
}

// hashData returns the hex-encoded BLAKE3 hash of data.
func hashData(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
