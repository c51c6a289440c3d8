package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/findstar/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteFileName = "stars.sqlite"

// SQLite keeps one row per username in a database under the cache root.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the sqlite database under root.
func NewSQLite(root string) (*SQLite, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", root, err)
	}

	path := filepath.Join(root, sqliteFileName)

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS star_cache (
		username TEXT PRIMARY KEY,
		data     BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Exists(user string) bool {
	var one int

	err := s.db.QueryRow(`SELECT 1 FROM star_cache WHERE username = ?`, user).Scan(&one)

	return err == nil
}

func (s *SQLite) Create(user string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO star_cache (username, data) VALUES (?, ?)`, user, []byte{})

	return err
}

func (s *SQLite) Read(user string) ([]model.Star, error) {
	var data []byte

	err := s.db.QueryRow(`SELECT data FROM star_cache WHERE username = ?`, user).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry for %s: %w", user, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var stars []model.Star
	if err := json.Unmarshal(data, &stars); err != nil {
		return nil, nil
	}

	return stars, nil
}

func (s *SQLite) Write(user string, stars []model.Star) error {
	data, err := json.Marshal(stars)
	if err != nil {
		return fmt.Errorf("failed to serialize stars for %s: %w", user, err)
	}

	_, err = s.db.Exec(`INSERT INTO star_cache (username, data) VALUES (?, ?)
		ON CONFLICT(username) DO UPDATE SET data = excluded.data`, user, data)

	return err
}

func (s *SQLite) Clear(user string) error {
	_, err := s.db.Exec(`INSERT INTO star_cache (username, data) VALUES (?, ?)
		ON CONFLICT(username) DO UPDATE SET data = excluded.data`, user, []byte{})

	return err
}

func (s *SQLite) Delete(user string) error {
	_, err := s.db.Exec(`DELETE FROM star_cache WHERE username = ?`, user)

	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
