package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// activeLog is the log opened by the running command.
var activeLog *logging.LogPathResult //nolint:gochecknoglobals // Closed by Execute after the command returns

// NewRootCmd creates the root Cobra command for the datagrid CLI.
// Without a subcommand it opens the interactive browser on a terminal and
// prints the first page otherwise.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datagrid",
		Short:         "Browse a record collection as a paginated, selectable table",
		Long:          "datagrid: page through JSON records and check rows from the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			activeLog = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, activeLog)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if tui.DetectOutputMode(false, false, false) == tui.OutputModeInteractive {
				return runBrowse(cmd, browseParams{})
			}
			return runShow(cmd, showParams{page: 1})
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file merged over the user configuration")
	cmd.PersistentFlags().String("data", "", "JSON array file to display instead of the bundled users")
	cmd.PersistentFlags().Int("page-size", 0, "rows per page (0 = use config default)")

	cmd.AddCommand(NewShowCmd(), NewBrowseCmd(), NewColumnsCmd(), newConfigCmd())

	return cmd
}

// Execute runs cmd and closes the log file once it returns. Cobra skips the
// post-run hooks when a command fails, so the file is also closed here.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if cerr := cleanupLogging(cmd, activeLog); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

const rootCmdExample = `  # Browse the bundled users interactively
  datagrid browse

  # Print page 3 of a JSON file, 25 rows per page
  datagrid show --data people.json --page 3 --page-size 25

  # Print the second page sorted by last name as JSON
  datagrid show --page 2 --sort last_name --output json

  # List the columns of a data file
  datagrid columns --data people.json

  # Create the user configuration file
  datagrid config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
