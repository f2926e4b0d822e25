package imagestore

import (
	"bytes"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/FocuswithJustin/Maestro/core/errors"
)

// backends returns a fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "images.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() {
		if closer, ok := sqliteStore.(interface{ Close() error }); ok {
			closer.Close()
		}
	})

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqliteStore,
	}
}

func TestAddLookup(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			data := []byte("png-bytes")
			if err := store.Add("cover.png", data); err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			got, err := store.Lookup("cover.png")
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("Lookup() = %q, want %q", got, data)
			}
		})
	}
}

func TestAddIdempotentPerName(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Add("logo.png", []byte("first")); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			// Second insert of the same name is a no-op, not an error.
			if err := store.Add("logo.png", []byte("second")); err != nil {
				t.Fatalf("Add() repeat error = %v", err)
			}

			got, err := store.Lookup("logo.png")
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if string(got) != "first" {
				t.Errorf("Lookup() after repeat Add = %q, want %q (first write wins)", got, "first")
			}

			names, err := store.Names()
			if err != nil {
				t.Fatalf("Names() error = %v", err)
			}
			if len(names) != 1 {
				t.Errorf("Names() len = %d, want 1", len(names))
			}
		})
	}
}

func TestLookupMissing(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Lookup("absent.png")
			if !errors.Is(err, errors.ErrNotFound) {
				t.Errorf("Lookup(absent) error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestEmptyNameRejected(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Add("", []byte("x")); !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("Add(\"\") error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNamesInsertionOrder(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := []string{"c.png", "a.png", "b.png"}
			for _, n := range want {
				if err := store.Add(n, []byte(n)); err != nil {
					t.Fatalf("Add(%q) error = %v", n, err)
				}
			}
			got, err := store.Names()
			if err != nil {
				t.Fatalf("Names() error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Names() = %v, want %v", got, want)
			}
		})
	}
}

func TestEntriesHaveContentHashes(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Add("x.png", []byte("same")); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if err := store.Add("y.png", []byte("same")); err != nil {
				t.Fatalf("Add() error = %v", err)
			}

			entries, err := store.Entries()
			if err != nil {
				t.Fatalf("Entries() error = %v", err)
			}
			if len(entries) != 2 {
				t.Fatalf("Entries() len = %d, want 2", len(entries))
			}
			if entries[0].BLAKE3 == "" {
				t.Error("entry hash is empty")
			}
			// Identical content yields identical hashes under different names.
			if entries[0].BLAKE3 != entries[1].BLAKE3 {
				t.Errorf("hashes differ for identical content: %s vs %s",
					entries[0].BLAKE3, entries[1].BLAKE3)
			}
			if entries[0].Size != int64(len("same")) {
				t.Errorf("Size = %d, want %d", entries[0].Size, len("same"))
			}
		})
	}
}

func TestConcurrentSameNameInserts(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					store.Add("race.png", []byte("payload"))
				}()
			}
			wg.Wait()

			names, err := store.Names()
			if err != nil {
				t.Fatalf("Names() error = %v", err)
			}
			if len(names) != 1 {
				t.Errorf("Names() len = %d, want 1 after concurrent same-name inserts", len(names))
			}
		})
	}
}
