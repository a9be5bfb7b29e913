package datatable

import "github.com/rshade/datagrid/internal/record"

// Column maps a record field to a table column.
type Column struct {
	// Header is the label printed in the header row.
	Header string `yaml:"header" json:"header"`

	// Key is the record field shown in this column.
	Key string `yaml:"key" json:"key"`
}

// Row is implemented by anything a Table can display.
type Row interface {
	Field(key string) record.Value
}

// Keys returns the field keys of columns in order.
func Keys(columns []Column) []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}
