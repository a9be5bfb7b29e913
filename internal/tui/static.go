package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/datagrid/internal/datatable"
	"github.com/rshade/datagrid/internal/pagination"
)

// EmptyPlaceholder replaces the whole table when there are no records.
const EmptyPlaceholder = "No data available"

const checkboxWidth = 3

//nolint:gochecknoglobals // Printer is read-only after init.
var printer = message.NewPrinter(language.English)

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// footerText summarizes the current page, e.g.
// "Page 2 of 6 | rows 11-20 of 57 | 3 selected".
func footerText(meta pagination.Meta, checked int) string {
	return printer.Sprintf("Page %d of %d | rows %d-%d of %d | %d selected",
		meta.CurrentPage, meta.TotalPages, meta.FirstItem, meta.LastItem, meta.TotalItems, checked)
}

// RenderStatic writes the current page of data to w once: the grid with its
// checkbox column, one control per page and a footer. Plain mode uses ASCII
// borders and no colors.
func RenderStatic[R datatable.Row](w io.Writer, data *datatable.Table[R], mode OutputMode) error {
	if data.IsEmpty() {
		_, err := fmt.Fprintln(w, EmptyPlaceholder)
		return err
	}

	styled := mode != OutputModePlain

	headers := append([]string{checkbox(data.CheckAll())}, data.Headers()...)
	visible := data.Visible()
	rows := make([][]string, len(visible))
	for i, r := range visible {
		rows[i] = append([]string{checkbox(data.Checked(i))}, data.Cells(r)...)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	t := lgtable.New().Headers(headers...).Rows(rows...)
	if styled {
		header := TableHeaderStyle.UnsetBorderStyle().UnsetBorderBottom()
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(SubtleStyle).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == lgtable.HeaderRow {
					return header
				}
				return cell
			})
	} else {
		t = t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style { return cell })
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(staticPageSelector(data.PageControls(), data.CurrentPage(), styled))
	b.WriteString("\n")
	footer := footerText(data.Meta(), data.CheckedCount())
	if styled {
		footer = SubtleStyle.Render(footer)
	}
	b.WriteString(footer)
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func staticPageSelector(controls []int, current int, styled bool) string {
	parts := make([]string, 0, len(controls)+1)
	parts = append(parts, "Pages:")
	for _, page := range controls {
		label := fmt.Sprint(page)
		switch {
		case styled && page == current:
			label = ActivePageStyle.Render(label)
		case styled:
			label = PageButtonStyle.Render(label)
		case page == current:
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
