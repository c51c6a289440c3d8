package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FINDSTAR_CACHE_DIR", "")
	t.Setenv("FINDSTAR_BACKEND", "")
	t.Setenv("FINDSTAR_PER_PAGE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.CacheDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, defaultPerPage, cfg.PerPage)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("FINDSTAR_CACHE_DIR", "/tmp/findstar-test")
	t.Setenv("FINDSTAR_BACKEND", BackendBolt)
	t.Setenv("FINDSTAR_PER_PAGE", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/findstar-test", cfg.CacheDir)
	assert.Equal(t, BackendBolt, cfg.Backend)
	assert.Equal(t, 10, cfg.PerPage)
}

func TestLoadConfigRejectsBadPerPage(t *testing.T) {
	tests := []string{"abc", "0", "-5"}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			t.Setenv("FINDSTAR_PER_PAGE", tt)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
