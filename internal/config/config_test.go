package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/datatable"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.Table.PageSize)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	assert.Empty(t, cfg.Data.File)
	require.NoError(t, cfg.Validate())
}

func TestNew_ReadsUserConfigAndEnv(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, home, "config.yaml", `
table:
  page_size: 25
output:
  default_format: json
`)

	cfg := New()
	assert.Equal(t, 25, cfg.Table.PageSize)
	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)

	t.Setenv(EnvPageSize, "7")
	t.Setenv(EnvDataFile, "/data/users.json")
	t.Setenv(EnvLogLevel, "debug")
	cfg = New()
	assert.Equal(t, 7, cfg.Table.PageSize)
	assert.Equal(t, "/data/users.json", cfg.Data.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNew_IgnoresBrokenConfig(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, home, "config.yaml", "table: [unclosed")

	cfg := New()
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv_IgnoresNonNumericPageSize(t *testing.T) {
	isolateHome(t)
	t.Setenv(EnvPageSize, "lots")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, 10, cfg.Table.PageSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "zero page size", mutate: func(c *Config) { c.Table.PageSize = 0 }, wantErr: ErrInvalidPageSize},
		{name: "negative page size", mutate: func(c *Config) { c.Table.PageSize = -2 }, wantErr: ErrInvalidPageSize},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Output.DefaultFormat = "xml" },
			wantErr: ErrInvalidOutputFormat,
		},
		{
			name:    "column without key",
			mutate:  func(c *Config) { c.Table.Columns = []datatable.Column{{Header: "ID"}} },
			wantErr: ErrInvalidColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}

	cfg := Default()
	cfg.Table.Sort = "id:sideways"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table.sort")
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "datagrid.yaml", `
table:
  page_size: 5
  sort: last_name:desc
  columns:
    - header: ID
      key: id
    - header: City
      key: address.city
data:
  file: ./people.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Table.PageSize)
	assert.Equal(t, "last_name:desc", cfg.Table.Sort)
	assert.Equal(t, []datatable.Column{{Header: "ID", Key: "id"}, {Header: "City", Key: "address.city"}}, cfg.Table.Columns)
	assert.Equal(t, "./people.json", cfg.Data.File)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat, "untouched sections keep defaults")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Table.PageSize = 15
	cfg.Table.Columns = []datatable.Column{{Header: "Email", Key: "email"}}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestFindProjectFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ProjectFileName, "table:\n  page_size: 4\n")
	deep := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0700))

	found := FindProjectFile(deep)
	assert.Equal(t, filepath.Join(root, ProjectFileName), found)
}

func TestNewWithOverlay(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()

	overlay := writeFile(t, dir, ProjectFileName, "table:\n  page_size: 4\n")
	cfg := NewWithOverlay(context.Background(), overlay)
	assert.Equal(t, 4, cfg.Table.PageSize)

	t.Setenv(EnvPageSize, "6")
	cfg = NewWithOverlay(context.Background(), overlay)
	assert.Equal(t, 6, cfg.Table.PageSize, "environment wins over the project file")

	t.Setenv(EnvPageSize, "")
	broken := writeFile(t, dir, "broken.yaml", "table: [")
	cfg = NewWithOverlay(context.Background(), broken)
	assert.Equal(t, 10, cfg.Table.PageSize)

	cfg = NewWithOverlay(context.Background(), "")
	assert.Equal(t, 10, cfg.Table.PageSize)
}
