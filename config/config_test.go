package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	rq := require.New(t)

	cfg, err := Load("")
	rq.NoError(err)
	rq.Equal(Default(), cfg)
	rq.Equal(8000, cfg.Server.Port)
	rq.True(cfg.Server.Open)
	rq.Equal(900, cfg.Extract.MaxWords)
}

func TestLoadExplicitMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "embedviz.toml")
	rq.NoError(os.WriteFile(path, []byte(`
[server]
port = 9999
open = false

[extract]
max_words = 100
`), 0644))

	cfg, err := Load(path)
	rq.NoError(err)
	rq.Equal(9999, cfg.Server.Port)
	rq.False(cfg.Server.Open)
	rq.Equal(100, cfg.Extract.MaxWords)
	// Untouched keys keep their defaults.
	rq.Equal("vector_db.sqlite", cfg.Extract.Database)
	rq.Equal(128, cfg.Extract.Dimensions)
}

func TestLoadBadToml(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "embedviz.toml")
	rq.NoError(os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := Load(path)
	rq.Error(err)
}
