// Package record holds the uniform JSON records shown by the data table and
// the closed Value variant used to turn a record field into cell text.
//
// Records are parsed with gjson and are immutable once created. Field keys are
// gjson paths, so a column may address a top-level key ("email") or a nested
// one ("address.city").
package record
