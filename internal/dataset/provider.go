// Package dataset supplies record collections to the table.
//
// A Provider returns the whole collection at once. The bundled mock users are
// served by Embedded; File reads a JSON array from disk. Either can be swapped
// for another source without touching the table.
package dataset

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/rshade/datagrid/internal/datatable"
	"github.com/rshade/datagrid/internal/logging"
	"github.com/rshade/datagrid/internal/record"
)

//go:embed users.json
var usersJSON []byte

// Provider returns a finite, ordered record collection.
type Provider interface {
	Records(ctx context.Context) ([]record.Record, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) ([]record.Record, error)

// Records calls f.
func (f ProviderFunc) Records(ctx context.Context) ([]record.Record, error) {
	return f(ctx)
}

// Static returns a Provider that always yields records.
func Static(records []record.Record) Provider {
	return ProviderFunc(func(context.Context) ([]record.Record, error) {
		return records, nil
	})
}

// Embedded returns the bundled mock user dataset.
func Embedded() Provider {
	return ProviderFunc(func(ctx context.Context) ([]record.Record, error) {
		records, err := record.ParseArray(usersJSON)
		if err != nil {
			return nil, fmt.Errorf("parsing bundled users: %w", err)
		}
		logging.FromContext(ctx).Debug().
			Str("component", "dataset").
			Str("source", "embedded").
			Int("records", len(records)).
			Msg("records loaded")
		return records, nil
	})
}

// File returns a Provider reading a JSON array of objects from path.
func File(path string) Provider {
	return ProviderFunc(func(ctx context.Context) ([]record.Record, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading data file: %w", err)
		}
		records, err := record.ParseArray(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		logging.FromContext(ctx).Debug().
			Str("component", "dataset").
			Str("source", path).
			Int("records", len(records)).
			Msg("records loaded")
		return records, nil
	})
}

// ForFile returns File(path), or Embedded() when path is empty.
func ForFile(path string) Provider {
	if path == "" {
		return Embedded()
	}
	return File(path)
}

// UserColumns returns the column descriptors of the bundled user dataset.
func UserColumns() []datatable.Column {
	return []datatable.Column{
		{Header: "ID", Key: "id"},
		{Header: "First Name", Key: "first_name"},
		{Header: "Last Name", Key: "last_name"},
		{Header: "Email", Key: "email"},
		{Header: "Gender", Key: "gender"},
		{Header: "IP Address", Key: "ip_address"},
	}
}

// InferColumns derives one column per top-level key of the first record,
// using the key as header. Keys are escaped so that names holding path
// characters such as "." or "#" still address the top-level key. It returns
// nil for an empty collection.
func InferColumns(records []record.Record) []datatable.Column {
	if len(records) == 0 {
		return nil
	}
	keys := records[0].Keys()
	columns := make([]datatable.Column, len(keys))
	for i, k := range keys {
		columns[i] = datatable.Column{Header: k, Key: gjson.Escape(k)}
	}
	return columns
}
