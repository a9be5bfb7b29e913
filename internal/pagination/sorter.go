package pagination

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/datagrid/internal/record"
)

// Sorter defines the interface for sorting records by a field key.
type Sorter interface {
	// Sort sorts a slice of records by the specified field and order.
	Sort(records []record.Record, field, order string) []record.Record
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// RecordSorter implements Sorter for records whose sortable fields are the
// keys of the table's columns.
type RecordSorter struct {
	validFields map[string]bool
}

// NewRecordSorter creates a RecordSorter that accepts the given field keys.
func NewRecordSorter(fields ...string) *RecordSorter {
	valid := make(map[string]bool, len(fields))
	for _, f := range fields {
		valid[f] = true
	}
	return &RecordSorter{validFields: valid}
}

// IsValidField checks if the field is valid for sorting.
func (s *RecordSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *RecordSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns ErrInvalidSortField when field is set but not sortable.
func (s *RecordSorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// Sort sorts records by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *RecordSorter) Sort(records []record.Record, field, order string) []record.Record {
	if !s.IsValidField(field) {
		return records
	}

	sorted := make([]record.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}
		return CompareValues(sorted[i].Field(field), sorted[j].Field(field)) < 0
	})

	return sorted
}

// CompareValues orders two field values. Values of the same kind compare
// naturally; mixed kinds order by kind, with missing values after all others.
func CompareValues(a, b record.Value) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(kindRank(a.Kind()), kindRank(b.Kind()))
	}

	switch a.Kind() {
	case record.KindNumber:
		return cmp.Compare(a.Num(), b.Num())
	case record.KindText:
		return strings.Compare(a.Str(), b.Str())
	case record.KindBool:
		return cmp.Compare(boolRank(a.Truth()), boolRank(b.Truth()))
	case record.KindStructured:
		return strings.Compare(a.Raw(), b.Raw())
	case record.KindNull, record.KindMissing:
		return 0
	default:
		return 0
	}
}

func kindRank(k record.Kind) int {
	switch k {
	case record.KindNumber:
		return 0
	case record.KindText:
		return 1
	case record.KindBool:
		return 2 //nolint:mnd // Rank order.
	case record.KindStructured:
		return 3 //nolint:mnd // Rank order.
	case record.KindNull:
		return 4 //nolint:mnd // Rank order.
	default:
		return 5 //nolint:mnd // Missing sorts last.
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
