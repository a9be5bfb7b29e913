package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// By default it writes the user configuration; with --project it writes a
// .datagrid.yaml in the current directory instead.
func NewConfigInitCmd() *cobra.Command {
	var (
		force   bool
		project bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The user configuration lives at $DATAGRID_HOME/config.yaml (default
~/.datagrid/config.yaml). A project file, .datagrid.yaml, is picked up from
the current directory or any parent and overrides the user configuration.`,
		Example: `  # Create the user configuration
  datagrid config init

  # Create a project file in the current directory
  datagrid config init --project

  # Create configuration, overwriting existing
  datagrid config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configInitPath(project)
			if err != nil {
				return err
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "write "+config.ProjectFileName+" in the current directory")

	return cmd
}

func configInitPath(project bool) (string, error) {
	if !project {
		return config.DefaultPath()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return filepath.Join(wd, config.ProjectFileName), nil
}

// initConfig writes the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Debug().Str("path", path).Msg("configuration initialized")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
	return nil
}
