// Package extract turns experiment run logs into run records.
package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const scanBufferCapacity = 1024 * 1024

var (
	reIdentifier     = regexp.MustCompile(`([\p{L}\p{N}_\-]+)::([\p{L}\p{N}_\-]+)`)
	reTimeout        = regexp.MustCompile(`^-- TIMEOUT --$`)
	reLearnStart     = regexp.MustCompile(`^(\d+) -- Starting learning engine\.$`)
	reInferDataStart = regexp.MustCompile(`^(\d+) -- Loading inference data\.$`)
	reInferStart     = regexp.MustCompile(`^(\d+) -- Starting inference engine\.$`)
	reEvalStart      = regexp.MustCompile(`^(\d+) -- Starting evaluation\.$`)
	reEvalResult     = regexp.MustCompile(`^Evaluation Result -- Metric: ([^,]+), Relation: ([^,]+), Value: (.*)$`)
)

// MalformedLogError reports a log line the extractor cannot interpret.
type MalformedLogError struct {
	Path   string
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *MalformedLogError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedLogError) Unwrap() error { return e.Err }

// Identifiers returns every key::value segment of path. Later segments
// win when a key repeats.
func Identifiers(path string) map[string]string {
	ids := make(map[string]string)
	for _, m := range reIdentifier.FindAllStringSubmatch(path, -1) {
		ids[m[1]] = m[2]
	}
	return ids
}

// marker is the last occurrence of a timestamped line.
type marker struct {
	seen bool
	ts   int64
	line int
}

func (m *marker) set(ts int64, line int) {
	m.seen = true
	m.ts = ts
	m.line = line
}

// ParseFile opens and parses one run log.
func ParseFile(path string) (Record, error) {
	fr, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to open log: %w", err)
	}
	defer fr.Close()
	return ParseLog(path, fr)
}

// ParseLog parses the text of one run log. path only supplies the
// identifier fields and error context.
func ParseLog(path string, r io.Reader) (Record, error) {
	rec := Record{
		Path:        path,
		Identifiers: Identifiers(path),
	}

	var learnStart, inferDataStart, inferStart, evalStart marker
	timestamped := []struct {
		re *regexp.Regexp
		m  *marker
	}{
		{reLearnStart, &learnStart},
		{reInferDataStart, &inferDataStart},
		{reInferStart, &inferStart},
		{reEvalStart, &evalStart},
	}

	scn := bufio.NewScanner(r)
	buf := make([]byte, scanBufferCapacity)
	scn.Buffer(buf, scanBufferCapacity)
	lineNo := 0
	for scn.Scan() {
		lineNo++
		line := strings.TrimSpace(scn.Text())
		if line == "" {
			continue
		}

		if reTimeout.MatchString(line) {
			rec.Timeout = true
			continue
		}

		matched := false
		for _, t := range timestamped {
			sub := t.re.FindStringSubmatch(line)
			if sub == nil {
				continue
			}
			ts, err := strconv.ParseInt(sub[1], 10, 64)
			if err != nil {
				return Record{}, &MalformedLogError{Path: path, Line: lineNo, Text: line, Reason: "bad timestamp", Err: err}
			}
			t.m.set(ts, lineNo)
			matched = true
			break
		}
		if matched {
			continue
		}

		if sub := reEvalResult.FindStringSubmatch(line); sub != nil {
			value, err := strconv.ParseFloat(strings.TrimSpace(sub[3]), 64)
			if err == nil && (math.IsNaN(value) || math.IsInf(value, 0)) {
				err = errors.New("value is not finite")
			}
			if err != nil {
				return Record{}, &MalformedLogError{Path: path, Line: lineNo, Text: line, Reason: "bad evaluation value", Err: err}
			}
			rec.Evals = append(rec.Evals, Eval{Metric: sub[1], Relation: sub[2], Value: value})
		}
	}
	if err := scn.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read log %s: %w", path, err)
	}

	switch {
	case learnStart.seen && evalStart.seen:
		if !inferDataStart.seen || !inferStart.seen {
			return Record{}, &MalformedLogError{
				Path:   path,
				Line:   learnStart.line,
				Reason: "learning run is missing the inference data or inference start marker",
			}
		}
		rec.LearnTime = inferDataStart.ts - learnStart.ts
		rec.InferTime = evalStart.ts - inferStart.ts
		rec.Runtime = rec.LearnTime + rec.InferTime
	case inferStart.seen && evalStart.seen:
		rec.LearnTime = 0
		rec.InferTime = evalStart.ts - inferStart.ts
		rec.Runtime = rec.InferTime
	case rec.Timeout:
		rec.Runtime, rec.LearnTime, rec.InferTime = TimedOut, TimedOut, TimedOut
	default:
		rec.Runtime, rec.LearnTime, rec.InferTime = Incomplete, Incomplete, Incomplete
	}
	return rec, nil
}
