package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points DATAGRID_HOME at an empty temp dir and clears overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvPageSize, "")
	t.Setenv(EnvDataFile, "")
	t.Setenv(EnvLogLevel, "")
	return home
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestSetGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	custom := Default()
	custom.Table.PageSize = 3
	custom.Output.DefaultFormat = FormatJSON
	custom.Logging.Level = "debug"
	custom.Logging.File = "/tmp/datagrid-test.log"
	SetGlobalConfig(custom)

	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, 3, GetPageSize())
	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())
	assert.Equal(t, "yaml", GetOutputFormat("yaml"))
	assert.Equal(t, FormatJSON, GetOutputFormat(""))
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/datagrid-test.log", GetLogFile())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestGetConfigDir(t *testing.T) {
	home := isolateHome(t)
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	t.Setenv(EnvHome, "")
	t.Setenv("HOME", home)
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".datagrid"), dir)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(isolateHome(t), "nested", "home")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)
	logDir := filepath.Join(t.TempDir(), "logs")

	cfg := Default()
	cfg.Logging.File = filepath.Join(logDir, "datagrid.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	_, err := os.Stat(logDir)
	require.NoError(t, err)

	cfg.Logging.File = ""
	require.NoError(t, EnsureLogDir())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "warn", got.Level)

	lc.File = "/var/log/datagrid.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/var/log/datagrid.log", got.File)
}
