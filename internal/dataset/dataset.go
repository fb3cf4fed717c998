// Package dataset holds the typed, tabular form of extracted run records
// and reads/writes the tab-separated interchange format.
package dataset

import (
	"errors"
	"strconv"
	"strings"
)

// Dataset is an ordered sequence of rows sharing one typed header.
type Dataset struct {
	Columns []string
	Types   []ColumnType
	Rows    [][]Value

	index map[string]int
}

// New returns an empty dataset with the given header. Column types come
// from ColumnTypeOf.
func New(columns []string) *Dataset {
	ds := &Dataset{
		Columns: append([]string(nil), columns...),
		Types:   make([]ColumnType, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		ds.Types[i] = ColumnTypeOf(c)
		if _, dup := ds.index[c]; !dup {
			ds.index[c] = i
		}
	}
	return ds
}

// Len returns the number of rows.
func (ds *Dataset) Len() int {
	return len(ds.Rows)
}

// Index returns the position of the named column.
func (ds *Dataset) Index(name string) (int, bool) {
	i, ok := ds.index[name]
	return i, ok
}

// Get returns the named cell of row. A column missing from the header
// reads as null.
func (ds *Dataset) Get(row []Value, name string) Value {
	if i, ok := ds.index[name]; ok && i < len(row) {
		return row[i]
	}
	return Null(ColumnTypeOf(name))
}

// AppendStrings parses one row of raw cells and appends it. row is the
// 1-based data row index used in errors.
func (ds *Dataset) AppendStrings(row int, cells []string) error {
	if len(cells) != len(ds.Columns) {
		return &SchemaMismatchError{Row: row, Want: len(ds.Columns), Got: len(cells)}
	}
	values := make([]Value, len(cells))
	for i, cell := range cells {
		v, err := ParseValue(ds.Types[i], cell)
		if err != nil {
			return &SchemaTypeError{Row: row, Column: ds.Columns[i], Type: ds.Types[i], Value: cell, Err: err}
		}
		values[i] = v
	}
	ds.Rows = append(ds.Rows, values)
	return nil
}

// FromRows builds a dataset from a header and raw string rows.
func FromRows(header []string, rows [][]string) (*Dataset, error) {
	ds := New(header)
	for i, cells := range rows {
		if err := ds.AppendStrings(i+1, cells); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

var errBool = errors.New("expected true or false")

// ParseValue converts one raw token to a value of type t. The empty token
// is null for every type.
func ParseValue(t ColumnType, token string) (Value, error) {
	if token == "" {
		return Null(t), nil
	}
	switch t {
	case Bool:
		switch {
		case strings.EqualFold(token, "true"):
			return BoolValue(true), nil
		case strings.EqualFold(token, "false"):
			return BoolValue(false), nil
		}
		return Value{}, errBool
	case Int:
		i, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	case Float:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil
	}
	return TextValue(token), nil
}
