package model

import (
	"fmt"
	"os"
	"strconv"

	"github.com/inovacc/findstar/internal/params"
)

// Cache backend names accepted by FINDSTAR_BACKEND and --backend.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

const defaultPerPage = 50

// Config carries the runtime settings shared by every command.
type Config struct {
	// CacheDir is the root directory holding per-user cache entries
	CacheDir string

	// Backend selects the cache store implementation
	Backend string

	// PerPage is the page size requested from the listing endpoint
	PerPage int
}

// LoadConfig builds the configuration from defaults and FINDSTAR_*
// environment overrides.
func LoadConfig() (Config, error) {
	cacheDir, err := params.DefaultCacheDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CacheDir: cacheDir,
		Backend:  BackendFile,
		PerPage:  defaultPerPage,
	}

	if dir := os.Getenv("FINDSTAR_CACHE_DIR"); dir != "" {
		cfg.CacheDir = dir
	}

	if backend := os.Getenv("FINDSTAR_BACKEND"); backend != "" {
		cfg.Backend = backend
	}

	if raw := os.Getenv("FINDSTAR_PER_PAGE"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			return Config{}, fmt.Errorf("invalid FINDSTAR_PER_PAGE value %q", raw)
		}

		cfg.PerPage = perPage
	}

	return cfg, nil
}
