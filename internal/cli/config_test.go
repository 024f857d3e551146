package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://feed.example\nstate_path: /tmp/state.db\ntoken: from-file\n"), 0o600))
	t.Setenv("INFLO_TOKEN", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://feed.example", cfg.APIURL)
	assert.Equal(t, "/tmp/state.db", cfg.StatePath)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("INFLO_API_URL", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultAPIURL, cfg.APIURL)
	assert.NotEmpty(t, cfg.StatePath)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [unterminated"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
