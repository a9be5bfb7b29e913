// Package pagination provides page arithmetic, sort parsing and result metadata.
//
// This package contains the pagination logic shared by the data table and the CLI:
//   - Params: page/page-size values and their validation
//   - Meta: metadata describing one page of a collection
//   - RecordSorter: column-keyed sorting of records with field validation
//
// Pages are 1-indexed. A page spans the half-open range
// [PageSize*(Page-1), PageSize*Page) clamped to the collection bounds.
package pagination
