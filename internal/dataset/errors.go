package dataset

import "fmt"

// SchemaMismatchError reports a row whose field count differs from the header.
type SchemaMismatchError struct {
	Row  int // 1-based data row index, header excluded
	Want int
	Got  int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("row %d: expected %d fields, got %d", e.Row, e.Want, e.Got)
}

// SchemaTypeError reports a cell that cannot be parsed as its column's type.
type SchemaTypeError struct {
	Row    int
	Column string
	Type   ColumnType
	Value  string
	Err    error
}

func (e *SchemaTypeError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot parse %q as %s: %v", e.Row, e.Column, e.Value, e.Type, e.Err)
}

func (e *SchemaTypeError) Unwrap() error { return e.Err }
