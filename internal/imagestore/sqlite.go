package imagestore

import (
	"database/sql"

	"github.com/FocuswithJustin/Maestro/core/errors"
	"github.com/FocuswithJustin/Maestro/internal/sqlite"
)

// sqliteStore is a SQLite-backed image store. It persists the image
// cache across runs, keyed by name with the BLAKE3 content hash stored
// alongside for verification and deduplication reporting.
type sqliteStore struct {
	db *sql.DB
}

const imageSchema = `
CREATE TABLE IF NOT EXISTS images (
	seq    INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT NOT NULL UNIQUE,
	blake3 TEXT NOT NULL,
	size   INTEGER NOT NULL,
	data   BLOB NOT NULL
);
`

// OpenSQLite opens (creating if necessary) a SQLite-backed image store
// at the given path. The caller owns the returned store; Close releases
// the underlying database.
func OpenSQLite(path string) (Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(imageSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing image store schema")
	}
	return &sqliteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// Add registers image data under name. INSERT OR IGNORE makes the
// operation idempotent per name (first write wins), including under
// concurrent loads.
func (s *sqliteStore) Add(name string, data []byte) error {
	if name == "" {
		return errors.NewValidation("name", "image name must not be empty")
	}

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO images (name, blake3, size, data) VALUES (?, ?, ?, ?)",
		name, hashData(data), int64(len(data)), data,
	)
	if err != nil {
		return errors.Wrapf(err, "storing image %q", name)
	}
	return nil
}

// Lookup retrieves image data by name.
func (s *sqliteStore) Lookup(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM images WHERE name = ?", name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("image", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "looking up image %q", name)
	}
	return data, nil
}

// Names returns the stored image names in insertion order.
func (s *sqliteStore) Names() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM images ORDER BY seq")
	if err != nil {
		return nil, errors.Wrap(err, "listing images")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scanning image name")
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Entries returns metadata for all stored images in insertion order.
func (s *sqliteStore) Entries() ([]Entry, error) {
	rows, err := s.db.Query("SELECT name, blake3, size FROM images ORDER BY seq")
	if err != nil {
		return nil, errors.Wrap(err, "listing images")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.BLAKE3, &e.Size); err != nil {
			return nil, errors.Wrap(err, "scanning image entry")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
