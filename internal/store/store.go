// Package store persists one serialized star collection per username.
package store

import (
	"github.com/inovacc/findstar/internal/model"
)

// Store is the cache lifecycle every backend implements. Entries are keyed
// by username and always replaced wholesale, never partially updated.
type Store interface {
	// Exists reports whether a persisted entry exists for user.
	Exists(user string) bool

	// Create ensures an initially empty entry exists. Calling it when the
	// entry already exists is a no-op.
	Create(user string) error

	// Read loads the user's stars. An empty or undecodable entry yields an
	// empty slice and no error: callers treat a corrupt cache exactly like
	// a missing one.
	Read(user string) ([]model.Star, error)

	// Write replaces the entry with the full record sequence. Readers never
	// observe a half-written entry.
	Write(user string, stars []model.Star) error

	// Clear truncates the entry to empty without deleting it.
	Clear(user string) error

	// Delete removes the entry entirely.
	Delete(user string) error

	Close() error
}

// Open returns the backend selected by cfg.Backend, rooted at cfg.CacheDir.
func Open(cfg model.Config) (Store, error) {
	switch cfg.Backend {
	case model.BackendFile, "":
		return NewFile(cfg.CacheDir)
	case model.BackendBolt:
		return NewBolt(cfg.CacheDir)
	case model.BackendSQLite:
		return NewSQLite(cfg.CacheDir)
	default:
		return nil, &UnknownBackendError{Name: cfg.Backend}
	}
}
