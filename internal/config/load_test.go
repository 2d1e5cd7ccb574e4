package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	Load("")

	assert.Equal(t, "large.xhtml", viper.GetString("input"))
	assert.Equal(t, "dom", viper.GetString("parser"))
	assert.Equal(t, "json", viper.GetString("history.backend"))
	assert.Equal(t, ".xbench/runs.json", viper.GetString("history.path"))
	assert.Equal(t, 10.0, viper.GetFloat64("threshold"))
	assert.Equal(t, 0, viper.GetInt("metrics_port"))
	assert.False(t, viper.GetBool("verbose"))
}

func TestLoadDoesNotCreateConfigFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)

	Load("")

	_, err := os.Stat(filepath.Join(dir, "xbench.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadConfigFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "xbench.yaml")
	cfg := "input: corpus/page.xhtml\nparser: sax\nhistory:\n  backend: sqlite\n  path: runs.db\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	Load(cfgPath)

	assert.Equal(t, "corpus/page.xhtml", viper.GetString("input"))
	assert.Equal(t, "sax", viper.GetString("parser"))
	assert.Equal(t, "sqlite", viper.GetString("history.backend"))
	assert.Equal(t, "runs.db", viper.GetString("history.path"))
}

func TestLoadEnvOverride(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("XBENCH_INPUT", "env.xhtml")
	t.Setenv("XBENCH_HISTORY_BACKEND", "sqlite")

	Load("")

	assert.Equal(t, "env.xhtml", viper.GetString("input"))
	assert.Equal(t, "sqlite", viper.GetString("history.backend"))
}
