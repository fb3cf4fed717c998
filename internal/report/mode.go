package report

import (
	"fmt"
	"strings"
)

// Mode names one report.
type Mode string

const (
	ModeBase         Mode = "BASE"
	ModeAggregate    Mode = "AGGREGATE"
	ModeFullTable    Mode = "FULL_TABLE"
	ModeTable        Mode = "TABLE"
	ModeRuntimeTable Mode = "RUNTIME_TABLE"
)

var modes = []struct {
	mode        Mode
	description string
}{
	{ModeBase, "Get the base results."},
	{ModeAggregate, "Aggregate over iteration and split."},
	{ModeFullTable, "Get the full aggregate table."},
	{ModeTable, "Get the aggregate table with some data dropped."},
	{ModeRuntimeTable, "Get the aggregate runtime table with some data dropped."},
}

// Modes lists every report mode in display order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	for i, m := range modes {
		out[i] = m.mode
	}
	return out
}

// Description returns a one-line summary of the mode.
func (m Mode) Description() string {
	for _, it := range modes {
		if it.mode == m {
			return it.description
		}
	}
	return ""
}

// UnknownModeError is returned for a mode name that is not one of Modes.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m.mode)
	}
	return fmt.Sprintf("unknown mode %q (expected one of %s)", e.Mode, strings.Join(names, ", "))
}

// ParseMode resolves a mode name, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	want := Mode(strings.ToUpper(strings.TrimSpace(s)))
	for _, m := range modes {
		if m.mode == want {
			return want, nil
		}
	}
	return "", &UnknownModeError{Mode: s}
}
