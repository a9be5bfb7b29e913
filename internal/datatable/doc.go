// Package datatable implements a generic paginated table with row selection.
//
// A Table holds an immutable record collection and a list of column
// descriptors. It slices the records into fixed-size pages and tracks one
// checked flag per visible row together with a master "select all" toggle.
// Changing the master toggle forces every visible row to its value; a row may
// then be toggled on its own until the master changes again.
//
// The package has no rendering code. Renderers read Headers, Visible, Cells,
// PageControls and the selection accessors and call the mutators in response
// to user input.
package datatable
