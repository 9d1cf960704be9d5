package cache

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/pkg/errors"
)

const dbFileName = "cache.db"

// SQLiteStorage keeps entries in a single SQLite database inside the cache directory.
type SQLiteStorage struct {
	db         *sql.DB
	writeMutex sync.Mutex
}

type persistedMeta struct {
	Method     string      `json:"method"`
	URL        string      `json:"url"`
	Vary       []string    `json:"vary,omitempty"`
	Headers    http.Header `json:"headers,omitempty"`
	StatusCode int         `json:"status"`
	Response   http.Header `json:"response"`
}

func NewSQLiteStorage(dir string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open cache database")
	}
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS cache (key TEXT PRIMARY KEY, meta BLOB, body BLOB, timestamp INTEGER)",
		"PRAGMA journal_mode=WAL",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, errors.Wrap(err, "failed to initialize cache database")
		}
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Retrieve(prefix string) (*Entry, error) {
	var (
		meta []byte
		body []byte
		ts   int64
	)
	err := s.db.QueryRow("SELECT meta, body, timestamp FROM cache WHERE key = ?", prefix).Scan(&meta, &body, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m persistedMeta
	if err := json.Unmarshal(meta, &m); err != nil {
		return nil, errors.Wrapf(err, "corrupted cache record %s", prefix)
	}
	key := Key{Method: m.Method, URL: m.URL, Vary: m.Vary, Headers: m.Headers}
	if key.Headers == nil {
		key.Headers = make(http.Header)
	}
	return NewEntry(key, Response{StatusCode: m.StatusCode, Header: m.Response}, body, time.UnixMilli(ts)), nil
}

func (s *SQLiteStorage) Store(e *Entry) error {
	key := e.Key()
	res := e.Response()
	meta, err := json.Marshal(persistedMeta{
		Method:     key.Method,
		URL:        key.URL,
		Vary:       key.Vary,
		Headers:    key.Headers,
		StatusCode: res.StatusCode,
		Response:   res.Header,
	})
	if err != nil {
		return err
	}

	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err = s.db.Exec("INSERT OR REPLACE INTO cache (key, meta, body, timestamp) VALUES (?, ?, ?, ?)",
		key.Prefix(), meta, e.Body(), e.Timestamp().UnixMilli())
	return err
}

func (s *SQLiteStorage) Remove(prefix string) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("DELETE FROM cache WHERE key = ?", prefix)
	return err
}

func (s *SQLiteStorage) Keys() ([]string, error) {
	rows, err := s.db.Query("SELECT key FROM cache ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
