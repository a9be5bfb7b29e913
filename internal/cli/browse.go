package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/record"
	"github.com/rshade/datagrid/internal/tui"
)

type browseParams struct {
	sort    string
	filters []string
}

// NewBrowseCmd creates the browse command, the full-screen interactive table.
func NewBrowseCmd() *cobra.Command {
	var params browseParams

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the table and check rows interactively",
		Long: `Opens the table full screen. Move with the arrow keys, check rows with
space, check every row with "a" and switch pages with left/right or by
clicking a page button. Press ? for all keys.

When stdout is not a terminal the current page is printed instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.sort, "sort", "", "sort rows by field[:asc|desc] before paging")
	cmd.Flags().StringArrayVar(&params.filters, "filter", nil, "keep rows whose key contains value (key=value, repeatable)")

	return cmd
}

func runBrowse(cmd *cobra.Command, params browseParams) error {
	mounted, err := mountTable(cmd, params.sort, params.filters)
	if err != nil {
		return err
	}

	mode := tui.DetectOutputMode(false, false, false)
	if mode != tui.OutputModeInteractive {
		logger.Debug().Str("mode", mode.String()).Msg("not a terminal, printing page")
		return tui.RenderStatic(cmd.OutOrStdout(), mounted.Table, mode)
	}

	ctx := screenContext(cmd)
	model := tui.NewTableModel(ctx, titleFor(config.GetGlobalConfig()), mounted.Table)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}

	if m, ok := final.(tui.TableModel[record.Record]); ok {
		tbl := m.Table()
		if n := tbl.CheckedCount(); n > 0 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d row(s) checked on page %d of %d\n",
				n, tbl.CurrentPage(), tbl.PageCount())
		}
	}
	return nil
}
