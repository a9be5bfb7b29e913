package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination defaults and sort orders.
const (
	DefaultPageSize  = 10
	MinPageSize      = 1
	DefaultPage      = 1
	MinPage          = 1
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page size must be >= 1")
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'last_name:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the current page and the page size.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the maximum number of records per page.
	PageSize int
}

// NewParams creates Params for the first page with the default page size.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks that both the page and the page size are at least 1.
func (p Params) Validate() error {
	if p.PageSize < MinPageSize {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Page < MinPage {
		return fmt.Errorf("%w, got %d", ErrInvalidPage, p.Page)
	}
	return nil
}

// TotalPages returns ceil(total / PageSize). It returns 0 for an empty
// collection or a non-positive page size.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// CalculateTotalPages returns the page count for a collection of totalResults items.
func (p Params) CalculateTotalPages(totalResults int) int {
	return TotalPages(totalResults, p.PageSize)
}

// Offset returns the index of the first item of the page.
func (p Params) Offset() int {
	if p.Page < MinPage || p.PageSize < MinPageSize {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Bounds returns the half-open index range of the page within a collection
// of total items. Pages beyond the end yield an empty range at total.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) Bounds(total int) (start, end int) {
	start = p.Offset()
	if start > total {
		start = total
	}
	end = start + p.PageSize
	if end > total {
		end = total
	}
	return start, end
}

// Apply returns the items on the page described by p, in their original order.
// The returned slice aliases items.
func Apply[T any](p Params, items []T) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "last_name", "id:desc", "email:asc"
// Returns the field name and order, or an error if invalid.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
