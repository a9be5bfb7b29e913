package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/datatable"
)

// NewColumnsCmd creates the columns command, which lists the column
// descriptors the table would use.
func NewColumnsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the table's columns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mounted, err := mountTable(cmd, "", nil)
			if err != nil {
				return err
			}
			return renderColumns(cmd.OutOrStdout(), mounted.Table.Columns(), config.GetOutputFormat(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, plain, json, yaml")

	return cmd
}

func renderColumns(w io.Writer, columns []datatable.Column, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(columns)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(columns); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatTable, config.FormatPlain:
		rows := make([][]string, len(columns))
		for i, c := range columns {
			rows[i] = []string{fmt.Sprint(i + 1), c.Header, c.Key}
		}
		cell := lipgloss.NewStyle().Padding(0, 1)
		t := lgtable.New().
			Border(lipgloss.ASCIIBorder()).
			Headers("#", "HEADER", "KEY").
			Rows(rows...).
			StyleFunc(func(_, _ int) lipgloss.Style { return cell })
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unsupported output format: %s (supported: table, plain, json, yaml)", format)
	}
}
