package store

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/inovacc/findstar/internal/model"
)

// File stores each user's stars as a gzip-compressed JSON file under root.
// This is the default backend.
type File struct {
	root string
}

// NewFile creates the cache root if needed and returns a file-backed store.
func NewFile(root string) (*File, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", root, err)
	}

	return &File{root: root}, nil
}

func (f *File) path(user string) string {
	return filepath.Join(f.root, user+".json.gz")
}

func (f *File) Exists(user string) bool {
	info, err := os.Stat(f.path(user))

	return err == nil && !info.IsDir()
}

func (f *File) Create(user string) error {
	if f.Exists(user) {
		return nil
	}

	return f.truncate(user)
}

// Read loads the user's stars. A missing, empty or undecodable entry yields
// an empty slice so a corrupt cache behaves exactly like an absent one.
func (f *File) Read(user string) ([]model.Star, error) {
	data, err := os.ReadFile(f.path(user))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read cache entry for %s: %w", user, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}

	raw, err := io.ReadAll(zr)
	_ = zr.Close()

	if err != nil {
		return nil, nil
	}

	var stars []model.Star
	if err := json.Unmarshal(raw, &stars); err != nil {
		return nil, nil
	}

	return stars, nil
}

// Write replaces the entry wholesale. The payload lands in a temporary file
// first and is renamed into place, so a concurrent Read never observes a
// half-written entry.
func (f *File) Write(user string, stars []model.Star) error {
	data, err := json.Marshal(stars)
	if err != nil {
		return fmt.Errorf("failed to serialize stars for %s: %w", user, err)
	}

	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("failed to compress stars for %s: %w", user, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to compress stars for %s: %w", user, err)
	}

	tmp, err := os.CreateTemp(f.root, user+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file for %s: %w", user, err)
	}

	// CreateTemp uses 0600; entries are 0644 regardless of which operation
	// last touched them
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to create temp cache file for %s: %w", user, err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to write cache entry for %s: %w", user, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to write cache entry for %s: %w", user, err)
	}

	if err := os.Rename(tmp.Name(), f.path(user)); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace cache entry for %s: %w", user, err)
	}

	return nil
}

func (f *File) Clear(user string) error {
	return f.truncate(user)
}

func (f *File) Delete(user string) error {
	if err := os.Remove(f.path(user)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache entry for %s: %w", user, err)
	}

	return nil
}

func (f *File) Close() error {
	return nil
}

func (f *File) truncate(user string) error {
	file, err := os.OpenFile(f.path(user), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create cache entry for %s: %w", user, err)
	}

	return file.Close()
}
