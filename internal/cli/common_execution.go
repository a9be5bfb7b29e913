package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/app"
	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/dataset"
	"github.com/rshade/datagrid/internal/datatable"
)

// loadConfig resolves the effective configuration and installs it as the
// global config. An explicit --config file must load; otherwise the nearest
// project file is merged when one exists. Flags win over both.
func loadConfig(cmd *cobra.Command) error {
	var cfg *config.Config

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		loaded.ApplyEnv()
		cfg = loaded
	} else {
		project := ""
		if wd, err := os.Getwd(); err == nil {
			project = config.FindProjectFile(wd)
		}
		cfg = config.NewWithOverlay(cmd.Context(), project)
	}

	if cmd.Flags().Changed("page-size") {
		cfg.Table.PageSize, _ = cmd.Flags().GetInt("page-size")
	}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Data.File = data
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// columnsFor picks the configured columns, the bundled user columns for the
// bundled data, or nil to infer them from the first record.
func columnsFor(cfg *config.Config) []datatable.Column {
	switch {
	case len(cfg.Table.Columns) > 0:
		return cfg.Table.Columns
	case cfg.Data.File == "":
		return dataset.UserColumns()
	default:
		return nil
	}
}

// titleFor names the collection being shown.
func titleFor(cfg *config.Config) string {
	if cfg.Data.File == "" {
		return "Users"
	}
	return filepath.Base(cfg.Data.File)
}

// mountTable loads the configured data, keeps the records matching filters
// and mounts a fresh table. A non-empty sortExpr overrides the configured sort.
func mountTable(cmd *cobra.Command, sortExpr string, filters []string) (*app.Mounted, error) {
	cfg := config.GetGlobalConfig()
	if sortExpr == "" {
		sortExpr = cfg.Table.Sort
	}

	root := app.NewRoot(
		filteredProvider(dataset.ForFile(cfg.Data.File), filters),
		columnsFor(cfg),
		app.WithPageSize(cfg.Table.PageSize),
		app.WithSort(sortExpr),
	)

	mounted, err := root.Mount(cmd.Context())
	if err != nil {
		logger.Error().Err(err).Str("data_file", cfg.Data.File).Msg("failed to mount table")
		return nil, err
	}
	return mounted, nil
}
