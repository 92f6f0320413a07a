// Package sqlres adapts database/sql calls to containers: a missing row
// is an absence, a query or scan error is a failure, and result sets
// can stream straight into a pipeline.
//
// Key constructs:
//   - Scanner: reads the current row into a value.
//   - QueryRow, QueryBuffered, Query: one row, all rows, or a stream.
//   - Exec: statement execution as a rows-affected container.
package sqlres
