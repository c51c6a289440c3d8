package params

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/inovacc/findstar/internal/application"
)

var (
	once     sync.Once
	cacheDir string
	errDir   error
)

// DefaultCacheDir returns the per-user cache root for findstar.
// Linux: ~/.cache/findstar (via os.UserCacheDir)
func DefaultCacheDir() (string, error) {
	once.Do(lazyLoad)

	return cacheDir, errDir
}

func lazyLoad() {
	base, err := os.UserCacheDir()
	if err != nil {
		errDir = fmt.Errorf("failed to resolve user cache directory: %w", err)

		return
	}

	cacheDir = filepath.Join(base, application.AppName)
}
