// Package app is the page root: it loads the record collection from a data
// provider and mounts exactly one table over it.
package app

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/datagrid/internal/dataset"
	"github.com/rshade/datagrid/internal/datatable"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/pagination"
	"github.com/rshade/datagrid/internal/record"
)

// UserTable is the table type mounted by the root.
type UserTable = datatable.Table[record.Record]

// Root composes a data provider, column descriptors and table options.
type Root struct {
	provider dataset.Provider
	columns  []datatable.Column
	pageSize int
	sort     string
}

// Option configures a Root.
type Option func(*Root)

// WithPageSize sets the page size of the mounted table.
func WithPageSize(n int) Option {
	return func(r *Root) { r.pageSize = n }
}

// WithSort orders the records by "field" or "field:asc|desc" before mounting.
// The field must be one of the column keys.
func WithSort(expr string) Option {
	return func(r *Root) { r.sort = expr }
}

// NewRoot creates a Root. When columns is empty they are inferred from the
// first record at mount time.
func NewRoot(provider dataset.Provider, columns []datatable.Column, opts ...Option) *Root {
	r := &Root{
		provider: provider,
		columns:  columns,
		pageSize: datatable.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mounted is a table instance together with its mount identity.
type Mounted struct {
	ID    ulid.ULID
	Table *UserTable
}

// Mount loads the records once and builds a fresh table on page 1 with
// nothing selected. Each call yields an independent instance.
func (r *Root) Mount(ctx context.Context) (*Mounted, error) {
	id := ulid.Make()
	logger := logging.FromContext(ctx).With().
		Str("component", "app").
		Str("instance", id.String()).
		Logger()

	records, err := r.provider.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	columns := r.columns
	if len(columns) == 0 {
		columns = dataset.InferColumns(records)
		logger.Debug().Int("columns", len(columns)).Msg("columns inferred from first record")
	}

	// An empty collection has no inferred columns to check a sort field
	// against; it renders the placeholder instead.
	if r.sort != "" && len(records) > 0 {
		records, err = sortRecords(records, columns, r.sort)
		if err != nil {
			return nil, err
		}
	}

	tbl, err := datatable.New(records, columns, datatable.WithPageSize(r.pageSize))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Int("records", tbl.Len()).
		Int("page_size", tbl.PageSize()).
		Int("pages", tbl.PageCount()).
		Msg("table mounted")

	return &Mounted{ID: id, Table: tbl}, nil
}

func sortRecords(records []record.Record, columns []datatable.Column, expr string) ([]record.Record, error) {
	field, order, err := pagination.ParseSort(expr)
	if err != nil {
		return nil, err
	}
	sorter := pagination.NewRecordSorter(datatable.Keys(columns)...)
	if err = sorter.Validate(field); err != nil {
		return nil, err
	}
	return sorter.Sort(records, field, order), nil
}
