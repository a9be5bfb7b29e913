package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/datagrid/internal/record"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "valid default", params: NewParams()},
		{name: "valid page mode", params: Params{Page: 3, PageSize: 25}},
		{name: "zero page size", params: Params{Page: 1, PageSize: 0}, wantErr: ErrInvalidPageSize},
		{name: "negative page size", params: Params{Page: 1, PageSize: -4}, wantErr: ErrInvalidPageSize},
		{name: "zero page", params: Params{Page: 0, PageSize: 10}, wantErr: ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, pageSize, want int
	}{
		{total: 0, pageSize: 10, want: 0},
		{total: 1, pageSize: 10, want: 1},
		{total: 10, pageSize: 10, want: 1},
		{total: 11, pageSize: 10, want: 2},
		{total: 23, pageSize: 10, want: 3},
		{total: 23, pageSize: 1, want: 23},
		{total: 5, pageSize: 0, want: 0},
		{total: 5, pageSize: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.pageSize), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestParams_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", params: Params{Page: 1, PageSize: 10}, total: 23, wantStart: 0, wantEnd: 10},
		{name: "middle page", params: Params{Page: 2, PageSize: 10}, total: 23, wantStart: 10, wantEnd: 20},
		{name: "short last page", params: Params{Page: 3, PageSize: 10}, total: 23, wantStart: 20, wantEnd: 23},
		{name: "beyond last page", params: Params{Page: 9, PageSize: 10}, total: 23, wantStart: 23, wantEnd: 23},
		{name: "empty collection", params: Params{Page: 1, PageSize: 10}, total: 0, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Bounds(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestApply(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i + 1
	}

	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, Apply(Params{Page: 2, PageSize: 10}, items))
	assert.Equal(t, []int{21, 22, 23}, Apply(Params{Page: 3, PageSize: 10}, items))
	assert.Empty(t, Apply(Params{Page: 4, PageSize: 10}, items))
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name      string
		sortStr   string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{name: "empty uses defaults", sortStr: "", wantField: "", wantOrder: "asc"},
		{name: "field only", sortStr: "last_name", wantField: "last_name", wantOrder: "asc"},
		{name: "field and desc", sortStr: "id:desc", wantField: "id", wantOrder: "desc"},
		{name: "order is case-insensitive", sortStr: "id: DESC ", wantField: "id", wantOrder: "desc"},
		{name: "too many parts", sortStr: "a:b:c", wantErr: ErrInvalidSortFormat},
		{name: "empty field", sortStr: ":asc", wantErr: ErrEmptySortField},
		{name: "bad order", sortStr: "id:sideways", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, order, err := ParseSort(tt.sortStr)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Page: 3, PageSize: 10}, 23)
	assert.Equal(t, Meta{
		CurrentPage: 3,
		PageSize:    10,
		TotalPages:  3,
		TotalItems:  23,
		FirstItem:   21,
		LastItem:    23,
		HasPrevious: true,
		HasNext:     false,
	}, meta)

	empty := NewMeta(NewParams(), 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, 0, empty.FirstItem)
	assert.Equal(t, 0, empty.LastItem)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrevious)
}

func sortFixture() []record.Record {
	return []record.Record{
		record.MustParse(`{"id":3,"name":"carol","vip":true}`),
		record.MustParse(`{"id":1,"name":"alice","vip":false}`),
		record.MustParse(`{"id":2,"name":"bob"}`),
		record.MustParse(`{"id":10,"name":"Dave","vip":false}`),
	}
}

func ids(records []record.Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Field("id").Num()
	}
	return out
}

func TestRecordSorter_Sort(t *testing.T) {
	sorter := NewRecordSorter("id", "name", "vip")
	records := sortFixture()

	assert.Equal(t, []float64{1, 2, 3, 10}, ids(sorter.Sort(records, "id", SortOrderAsc)))
	assert.Equal(t, []float64{10, 3, 2, 1}, ids(sorter.Sort(records, "id", SortOrderDesc)))
	// Byte-wise comparison puts the capitalised name first.
	assert.Equal(t, []float64{10, 1, 2, 3}, ids(sorter.Sort(records, "name", SortOrderAsc)))
	// false before true, missing last; ties keep input order.
	assert.Equal(t, []float64{1, 10, 3, 2}, ids(sorter.Sort(records, "vip", SortOrderAsc)))

	// Original slice is untouched.
	assert.Equal(t, []float64{3, 1, 2, 10}, ids(records))
}

func TestRecordSorter_InvalidField(t *testing.T) {
	sorter := NewRecordSorter("id", "name")
	records := sortFixture()

	assert.Equal(t, ids(records), ids(sorter.Sort(records, "email", SortOrderAsc)))
	assert.Equal(t, []string{"id", "name"}, sorter.GetValidFields())
	require.NoError(t, sorter.Validate(""))
	require.NoError(t, sorter.Validate("id"))
	err := sorter.Validate("email")
	require.ErrorIs(t, err, ErrInvalidSortField)
	assert.Contains(t, err.Error(), "id, name")
}

func TestCompareValues_MixedKinds(t *testing.T) {
	assert.Negative(t, CompareValues(record.Number(5), record.Text("a")))
	assert.Positive(t, CompareValues(record.Missing(), record.Null()))
	assert.Zero(t, CompareValues(record.Null(), record.Null()))
	assert.Negative(t, CompareValues(record.Structured(`[1]`), record.Structured(`[2]`)))
}
