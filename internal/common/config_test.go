package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "./output", config.Output.Dir)
	assert.Equal(t, "Crypto_Market_Analysis_Deck.pdf", config.Output.DeckFile)
	assert.Equal(t, "Crypto_Market_Analysis.pdf", config.Output.DocumentFile)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marketreport.toml")
	content := `
environment = "production"

[output]
dir = "/var/reports"

[logging]
level = "debug"
output = ["stdout", "file"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.True(t, config.IsProduction())
	assert.Equal(t, "/var/reports", config.Output.Dir)
	assert.Equal(t, "debug", config.Logging.Level)
	// Unset fields keep their defaults
	assert.Equal(t, "Crypto_Market_Analysis_Deck.pdf", config.Output.DeckFile)
}

func TestLoadFromFilesLayering(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	require.NoError(t, os.WriteFile(base, []byte("[logging]\nlevel = \"warn\"\n"), 0644))
	require.NoError(t, os.WriteFile(override, []byte("[logging]\nlevel = \"debug\"\n"), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MARKETREPORT_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("MARKETREPORT_LOG_LEVEL", "error")
	t.Setenv("MARKETREPORT_LOG_OUTPUT", "stdout, file")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", config.Output.Dir)
	assert.Equal(t, "error", config.Logging.Level)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
}
