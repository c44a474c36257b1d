package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv(EnvFileKey, "")
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "protx", cfg.AppName)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "json", cfg.Format)
	require.False(t, cfg.Indent)
}

func TestEnvironment(t *testing.T) {
	t.Setenv(EnvFileKey, "")
	t.Setenv("PROTX_FORMAT", "YAML")
	t.Setenv("PROTX_INDENT", "true")
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Format)
	require.True(t, cfg.Indent)
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PROTX_LOG_LEVEL=trace\n"), 0o600))
	t.Setenv(EnvFileKey, path)
	t.Setenv("PROTX_LOG_LEVEL", "error")
	t.Setenv("PROTX_FORMAT", "yaml")
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "trace", cfg.LogLevel)
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, path, cfg.EnvFile)
}

func TestBadFormat(t *testing.T) {
	t.Setenv(EnvFileKey, "")
	t.Setenv("PROTX_FORMAT", "xml")
	_, err := New()
	require.Error(t, err)
}

func TestPrintEnv(t *testing.T) {
	cfg := &C{AppName: "protx", LogLevel: "info", Format: "json"}
	buf := new(bytes.Buffer)
	cfg.PrintEnv(buf)
	require.Contains(t, buf.String(), "export PROTX_FORMAT=json\n")
	require.Contains(t, buf.String(), "export PROTX_INDENT=false\n")
}
