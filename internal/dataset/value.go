package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Value is a nullable, typed cell.
type Value struct {
	Type  ColumnType
	Valid bool
	b     bool
	i     int64
	f     float64
	s     string
}

// Null returns a null value of type t.
func Null(t ColumnType) Value { return Value{Type: t} }

func BoolValue(b bool) Value     { return Value{Type: Bool, Valid: true, b: b} }
func IntValue(i int64) Value     { return Value{Type: Int, Valid: true, i: i} }
func FloatValue(f float64) Value { return Value{Type: Float, Valid: true, f: f} }
func TextValue(s string) Value   { return Value{Type: Text, Valid: true, s: s} }

// Bool returns the boolean payload; ok is false for nulls and other types.
func (v Value) Bool() (b bool, ok bool) {
	return v.b, v.Valid && v.Type == Bool
}

// Text returns the string payload; ok is false for nulls and other types.
func (v Value) Text() (s string, ok bool) {
	return v.s, v.Valid && v.Type == Text
}

// Int returns the integer payload; ok is false for nulls and other types.
func (v Value) Int() (i int64, ok bool) {
	return v.i, v.Valid && v.Type == Int
}

// Number returns integer and float payloads as float64.
func (v Value) Number() (f float64, ok bool) {
	if !v.Valid {
		return 0, false
	}
	switch v.Type {
	case Int:
		return float64(v.i), true
	case Float:
		return v.f, true
	}
	return 0, false
}

// Equal reports whether both values are non-null and equal. Like SQL, a
// null never equals anything.
func (v Value) Equal(o Value) bool {
	if !v.Valid || !o.Valid {
		return false
	}
	return Compare(v, o) == 0
}

// Compare orders values with nulls first, then numerically for numbers,
// false before true for booleans and byte-wise for text.
func Compare(a, b Value) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	}
	if af, ok := a.Number(); ok {
		if bf, ok := b.Number(); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	if a.Type == Bool && b.Type == Bool {
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		}
		return 1
	}
	return strings.Compare(a.String(), b.String())
}

// String renders the value for tabular output; nulls render empty.
func (v Value) String() string {
	if !v.Valid {
		return ""
	}
	switch v.Type {
	case Bool:
		return strconv.FormatBool(v.b)
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return FormatFloat(v.f)
	}
	return v.s
}

// FormatFloat prints f in its shortest form, keeping a ".0" suffix on
// integral values so floats stay recognisable as such (15 -> "15.0").
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
