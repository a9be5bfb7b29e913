package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/rshade/datagrid/internal/datatable"
	"github.com/rshade/datagrid/internal/logging"
)

const (
	defaultWidth  = 120
	defaultHeight = 40

	// gridHeaderLines is the header text plus its bottom border.
	gridHeaderLines = 2
	// checkboxCellWidth is the checkbox glyph plus the cell padding.
	checkboxCellWidth = checkboxWidth + 2
	maxColumnWidth    = 40

	gridZoneID = "grid"
)

// TableModel is the Bubble Tea model for browsing a datatable page by page
// and checking rows.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type TableModel[R datatable.Row] struct {
	ctx    context.Context
	logger zerolog.Logger
	title  string

	data   *datatable.Table[R]
	grid   table.Model
	widths []int
	cursor int

	help  help.Model
	keys  keyMap
	zones *zone.Manager

	width    int
	height   int
	quitting bool
}

// NewTableModel creates an interactive model over data. The caller owns the
// model and should Close it once the program exits.
func NewTableModel[R datatable.Row](ctx context.Context, title string, data *datatable.Table[R]) TableModel[R] {
	m := TableModel[R]{
		ctx:    ctx,
		logger: logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		title:  title,
		data:   data,
		help:   help.New(),
		keys:   newKeyMap(),
		zones:  zone.New(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.widths = columnWidths(data)
	m.rebuildTable()
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m TableModel[R]) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m TableModel[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	default:
		return m, nil
	}
}

// View renders the model (Bubble Tea interface).
func (m TableModel[R]) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(HeaderStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	if m.data.IsEmpty() {
		b.WriteString(InfoStyle.Render(EmptyPlaceholder))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return m.zones.Scan(b.String())
	}

	b.WriteString(m.zones.Mark(gridZoneID, m.grid.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderPageSelector())
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(footerText(m.data.Meta(), m.data.CheckedCount())))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.zones.Scan(b.String())
}

// Table returns the table driven by the model.
func (m TableModel[R]) Table() *datatable.Table[R] {
	return m.data
}

// Cursor returns the highlighted row index within the current page.
func (m TableModel[R]) Cursor() int {
	return m.cursor
}

// Close stops the mouse zone tracker.
func (m TableModel[R]) Close() {
	m.zones.Close()
}

func (m TableModel[R]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.data.IsEmpty() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.data.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.ToggleRow):
		m.toggleRow(m.cursor)
	case key.Matches(msg, m.keys.ToggleAll):
		m.toggleAll()
	case key.Matches(msg, m.keys.PrevPage):
		m.gotoPage(m.data.CurrentPage() - 1)
	case key.Matches(msg, m.keys.NextPage):
		m.gotoPage(m.data.CurrentPage() + 1)
	case key.Matches(msg, m.keys.FirstPage):
		m.gotoPage(1)
	case key.Matches(msg, m.keys.LastPage):
		m.gotoPage(m.data.PageCount())
	case key.Matches(msg, m.keys.GotoPage):
		m.gotoPage(int(msg.String()[0] - '0'))
	default:
		return m, nil
	}

	m.rebuildTable()
	return m, nil
}

func (m TableModel[R]) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.data.IsEmpty() {
		return m, nil
	}

	for _, page := range m.data.PageControls() {
		if z := m.zones.Get(pageZoneID(page)); z != nil && z.InBounds(msg) {
			m.gotoPage(page)
			m.rebuildTable()
			return m, nil
		}
	}

	if z := m.zones.Get(gridZoneID); z != nil && z.InBounds(msg) {
		x, y := z.Pos(msg)
		m.clickGrid(x, y)
		m.rebuildTable()
	}
	return m, nil
}

// clickGrid handles a click at (x, y) relative to the grid's top-left corner.
// The checkbox column toggles; any other cell only moves the cursor.
func (m *TableModel[R]) clickGrid(x, y int) {
	if y < 0 || x < 0 {
		return
	}
	onCheckbox := x < checkboxCellWidth

	if y == 0 {
		if onCheckbox {
			m.toggleAll()
		}
		return
	}

	row := y - gridHeaderLines
	if row < 0 || row >= len(m.data.Visible()) {
		return
	}
	m.cursor = row
	if onCheckbox {
		m.toggleRow(row)
	}
}

func (m *TableModel[R]) gotoPage(page int) {
	if page == m.data.CurrentPage() {
		return
	}
	if err := m.data.SetPage(page); err != nil {
		m.logger.Debug().Err(err).Msg("page change ignored")
		return
	}
	if n := len(m.data.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	m.logger.Debug().
		Int("page", page).
		Int("checked", m.data.CheckedCount()).
		Msg("page changed")
}

func (m *TableModel[R]) toggleRow(i int) {
	checked, err := m.data.ToggleRow(i)
	if err != nil {
		m.logger.Debug().Err(err).Msg("row toggle ignored")
		return
	}
	m.logger.Debug().Int("row", i).Bool("checked", checked).Msg("row toggled")
}

func (m *TableModel[R]) toggleAll() {
	all := m.data.ToggleCheckAll()
	m.logger.Debug().Bool("check_all", all).Msg("master toggled")
}

// rebuildTable reconstructs the grid from the current page and selection.
func (m *TableModel[R]) rebuildTable() {
	m.grid = m.buildGrid()
}

func (m *TableModel[R]) buildGrid() table.Model {
	headers := m.data.Headers()
	columns := make([]table.Column, 0, len(headers)+1)
	columns = append(columns, table.Column{Title: checkbox(m.data.CheckAll()), Width: checkboxWidth})
	for i, h := range headers {
		columns = append(columns, table.Column{Title: h, Width: m.widths[i]})
	}

	visible := m.data.Visible()
	rows := make([]table.Row, len(visible))
	for i, r := range visible {
		row := make(table.Row, 0, len(columns))
		row = append(row, checkbox(m.data.Checked(i)))
		row = append(row, m.data.Cells(r)...)
		rows[i] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	t.SetHeight(len(rows) + gridHeaderLines)
	if len(rows) > 0 {
		t.SetCursor(m.cursor)
	}

	return t
}

func (m TableModel[R]) renderPageSelector() string {
	controls := m.data.PageControls()
	buttons := make([]string, 0, len(controls)+1)
	buttons = append(buttons, LabelStyle.Render("Pages:"))
	for _, page := range controls {
		style := PageButtonStyle
		if page == m.data.CurrentPage() {
			style = ActivePageStyle
		}
		buttons = append(buttons, m.zones.Mark(pageZoneID(page), style.Render(fmt.Sprint(page))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinSpaced(buttons)...)
}

func pageZoneID(page int) string {
	return fmt.Sprintf("page_%d", page)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

// columnWidths sizes each column to its widest cell over the whole
// collection so widths stay put across pages.
func columnWidths[R datatable.Row](data *datatable.Table[R]) []int {
	headers := data.Headers()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range data.Records() {
		for i, cell := range data.Cells(r) {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}
