package config

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	cfg.Currency = "EUR"
	cfg.Session = "march"
	cfg.EMF.Level5 = 5000

	path := filepath.Join(dir, FileName)
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.DataDir, loaded.DataDir)
	assert.Equal(t, "EUR", loaded.Currency)
	assert.Equal(t, "march", loaded.Session)
	assert.Equal(t, int64(5000), loaded.EMF.Level5)
	assert.Equal(t, cfg.History, loaded.History)
}

func TestDefault(t *testing.T) {
	cfg := Default("/tmp/proj")
	assert.Equal(t, filepath.Join("/tmp/proj", "sessions"), cfg.DataDir)
	assert.Equal(t, "default", cfg.Session)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.True(t, cfg.Sound.Enabled)
	assert.False(t, cfg.History.AutoCommit)
	assert.Equal(t, int64(500), cfg.EMF.Level2)
	assert.Equal(t, int64(2000), cfg.EMF.Level5)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestLoad_DataDirOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, Save(path, Default(dir)))

	t.Setenv(EnvDataDir, "/elsewhere/sessions")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/sessions", cfg.DataDir)
}

func TestDefaultPath_Override(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/huntbook.yaml")
	assert.Equal(t, "/etc/huntbook.yaml", DefaultPath("/proj"))
}

func TestEMFThresholds(t *testing.T) {
	cfg := Default(t.TempDir())
	th := cfg.EMF.Thresholds()
	assert.True(t, th[0].Equal(decimal.NewFromInt(500)))
	assert.True(t, th[3].Equal(decimal.NewFromInt(2000)))
}
