package storage

import (
	"database/sql"
	"errors"
	"sync"

	_ "github.com/glebarez/go-sqlite"
)

// SQLiteStore serves content from a sqlite blob table instead of the
// filesystem. Useful when the whole served tree should live in a
// single file (or entirely in memory for tests).
type SQLiteStore struct {
	db         *sql.DB
	writeMutex *sync.Mutex
}

// NewSQLiteStore opens (or creates) the content database at the
// given DSN and bootstraps the schema.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS files (path TEXT PRIMARY KEY, bytes BLOB)"); err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}
	return &SQLiteStore{
		db:         db,
		writeMutex: &sync.Mutex{},
	}, nil
}

func (s *SQLiteStore) Load(path string) ([]byte, error) {
	var bytes []byte
	err := s.db.QueryRow("SELECT bytes FROM files WHERE path = ?", path).Scan(&bytes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// Put stores content under path, replacing any previous contents.
// It is used to load a content tree into the store; the serving
// path never writes.
func (s *SQLiteStore) Put(path string, bytes []byte) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("INSERT OR REPLACE INTO files (path, bytes) VALUES (?, ?)", path, bytes)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
