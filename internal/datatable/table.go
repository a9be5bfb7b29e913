package datatable

import (
	"fmt"

	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/record"
)

// DefaultPageSize is the number of rows per page when no option overrides it.
const DefaultPageSize = pagination.DefaultPageSize

// Option configures a Table.
type Option func(*options)

type options struct {
	pageSize int
}

// WithPageSize sets the number of rows per page. Values below 1 make New fail.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = n
	}
}

// Table is a paginated, selectable view over a fixed record collection.
// It is not safe for concurrent use; it is owned by a single UI loop.
type Table[R Row] struct {
	records []R
	columns []Column

	pageSize    int
	pageCount   int
	currentPage int

	// checkAll is the master toggle.
	checkAll bool
	// checked holds one flag per visible row slot.
	checked []bool
}

// New creates a Table showing records with the given columns.
// It returns ErrInvalidConfiguration if the page size is below 1.
func New[R Row](records []R, columns []Column, opts ...Option) (*Table[R], error) {
	o := options{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pageSize < pagination.MinPageSize {
		return nil, fmt.Errorf("%w: page size must be >= %d, got %d",
			ErrInvalidConfiguration, pagination.MinPageSize, o.pageSize)
	}

	t := &Table[R]{
		records:     append([]R(nil), records...),
		columns:     append([]Column(nil), columns...),
		pageSize:    o.pageSize,
		currentPage: pagination.DefaultPage,
	}
	t.pageCount = pagination.TotalPages(len(t.records), t.pageSize)
	t.checked = make([]bool, t.visibleCount())
	return t, nil
}

// IsEmpty reports whether the table has no records. Renderers show only a
// placeholder for an empty table.
func (t *Table[R]) IsEmpty() bool {
	return len(t.records) == 0
}

// Len returns the total number of records.
func (t *Table[R]) Len() int {
	return len(t.records)
}

// Records returns a copy of the whole collection in display order.
func (t *Table[R]) Records() []R {
	return append([]R(nil), t.records...)
}

// Columns returns a copy of the column descriptors.
func (t *Table[R]) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Headers returns the column labels in order.
func (t *Table[R]) Headers() []string {
	headers := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.Header
	}
	return headers
}

// PageSize returns the number of rows per page.
func (t *Table[R]) PageSize() int {
	return t.pageSize
}

// PageCount returns ceil(Len / PageSize), or 0 for an empty table.
func (t *Table[R]) PageCount() int {
	return t.pageCount
}

// CurrentPage returns the 1-based current page.
func (t *Table[R]) CurrentPage() int {
	return t.currentPage
}

// PageControls returns one page number per page selector, 1 through PageCount.
func (t *Table[R]) PageControls() []int {
	if t.pageCount == 0 {
		return nil
	}
	controls := make([]int, t.pageCount)
	for i := range controls {
		controls[i] = i + 1
	}
	return controls
}

// Params returns the pagination parameters of the current page.
func (t *Table[R]) Params() pagination.Params {
	return pagination.Params{Page: t.currentPage, PageSize: t.pageSize}
}

// Meta returns metadata describing the current page.
func (t *Table[R]) Meta() pagination.Meta {
	return pagination.NewMeta(t.Params(), len(t.records))
}

// SetPage makes page the current page, as activating its page control does.
// It returns ErrPageOutOfRange if page is outside [1, PageCount].
func (t *Table[R]) SetPage(page int) error {
	if page < 1 || page > t.pageCount {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrPageOutOfRange, page, t.pageCount)
	}
	t.currentPage = page
	t.resizeSlots()
	return nil
}

// NextPage advances one page. It reports false when already on the last page.
func (t *Table[R]) NextPage() bool {
	return t.SetPage(t.currentPage+1) == nil
}

// PrevPage goes back one page. It reports false when already on the first page.
func (t *Table[R]) PrevPage() bool {
	return t.SetPage(t.currentPage-1) == nil
}

// FirstPage jumps to page 1.
func (t *Table[R]) FirstPage() bool {
	if t.currentPage == 1 {
		return false
	}
	return t.SetPage(1) == nil
}

// LastPage jumps to the last page.
func (t *Table[R]) LastPage() bool {
	if t.currentPage == t.pageCount {
		return false
	}
	return t.SetPage(t.pageCount) == nil
}

// Visible returns the records of the current page in their original order.
func (t *Table[R]) Visible() []R {
	return pagination.Apply(t.Params(), t.records)
}

// Cells returns the display text of each column for r.
func (t *Table[R]) Cells(r R) []string {
	cells := make([]string, len(t.columns))
	for i, c := range t.columns {
		cells[i] = record.Render(r.Field(c.Key))
	}
	return cells
}

// CheckAll returns the master toggle.
func (t *Table[R]) CheckAll() bool {
	return t.checkAll
}

// SetCheckAll sets the master toggle and forces every visible row to match it.
func (t *Table[R]) SetCheckAll(v bool) {
	t.checkAll = v
	for i := range t.checked {
		t.checked[i] = v
	}
}

// ToggleCheckAll flips the master toggle and returns its new value.
func (t *Table[R]) ToggleCheckAll() bool {
	t.SetCheckAll(!t.checkAll)
	return t.checkAll
}

// Checked reports whether visible row i is checked.
// Out-of-range indexes report false.
func (t *Table[R]) Checked(i int) bool {
	if i < 0 || i >= len(t.checked) {
		return false
	}
	return t.checked[i]
}

// SetRow sets visible row i. The master toggle is left unchanged.
func (t *Table[R]) SetRow(i int, v bool) error {
	if i < 0 || i >= len(t.checked) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrRowOutOfRange, i, len(t.checked))
	}
	t.checked[i] = v
	return nil
}

// ToggleRow flips visible row i and returns its new value.
func (t *Table[R]) ToggleRow(i int) (bool, error) {
	if err := t.SetRow(i, !t.Checked(i)); err != nil {
		return false, err
	}
	return t.checked[i], nil
}

// CheckedRows returns a copy of the visible rows' checked flags.
func (t *Table[R]) CheckedRows() []bool {
	return append([]bool(nil), t.checked...)
}

// CheckedCount returns the number of checked visible rows.
func (t *Table[R]) CheckedCount() int {
	n := 0
	for _, c := range t.checked {
		if c {
			n++
		}
	}
	return n
}

// visibleCount returns the number of rows on the current page.
func (t *Table[R]) visibleCount() int {
	start, end := t.Params().Bounds(len(t.records))
	return end - start
}

// resizeSlots fits the row slots to the current page. Slots shared with the
// previous page keep their state; new slots start at the master value.
func (t *Table[R]) resizeSlots() {
	n := t.visibleCount()
	if n <= len(t.checked) {
		t.checked = t.checked[:n]
		return
	}
	for len(t.checked) < n {
		t.checked = append(t.checked, t.checkAll)
	}
}
