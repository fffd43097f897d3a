package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "stagehand.db", cfg.DBPath)
	assert.Equal(t, "0 8 * * *", cfg.RemindCron)
	assert.Equal(t, 5*time.Minute, cfg.Traq.ChannelFreshFor)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stagehand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9999\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "stagehand.db", cfg.DBPath)
	assert.Equal(t, 10*time.Minute, cfg.Traq.ChannelStaleFor)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stagehand.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize_EnvOverrides(t *testing.T) {
	t.Setenv("STAGEHAND_DB", "/var/lib/stagehand/db.sqlite")
	t.Setenv("TRAQ_TOKEN", "tok-from-env")

	cfg := Default()
	cfg.Normalize()
	assert.Equal(t, "/var/lib/stagehand/db.sqlite", cfg.DBPath)
	assert.Equal(t, "tok-from-env", cfg.Traq.Token)
}

func TestNormalize_ExplicitTokenWins(t *testing.T) {
	t.Setenv("TRAQ_TOKEN", "tok-from-env")

	cfg := Default()
	cfg.Traq.Token = "tok-from-file"
	cfg.Normalize()
	assert.Equal(t, "tok-from-file", cfg.Traq.Token)
}

func TestNormalize_StaleForAtLeastFreshFor(t *testing.T) {
	cfg := Default()
	cfg.Traq.ChannelFreshFor = 20 * time.Minute
	cfg.Traq.ChannelStaleFor = time.Minute
	cfg.Normalize()
	assert.Equal(t, 40*time.Minute, cfg.Traq.ChannelStaleFor)
}
