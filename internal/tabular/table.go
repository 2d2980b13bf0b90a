package tabular

import (
	"math"
	"strconv"
	"strings"
)

// Table holds a loaded CSV export: ordered headers plus one map per row
// keyed by the original header text. A lowercase lookup index is built
// once per load so column resolution never rescans the header row.
type Table struct {
	Headers []string
	Rows    []map[string]string

	lowered map[string]string
}

// NewTable builds a table from headers and rows and indexes the headers
// for case-insensitive resolution. When two headers collide after
// lowercasing, the first one wins.
func NewTable(headers []string, rows []map[string]string) *Table {
	lowered := make(map[string]string, len(headers))
	for _, h := range headers {
		key := strings.ToLower(h)
		if _, ok := lowered[key]; !ok {
			lowered[key] = h
		}
	}
	return &Table{Headers: headers, Rows: rows, lowered: lowered}
}

// Resolve returns the first header matching any candidate name,
// case-insensitively. A miss is a normal outcome, not an error: the
// caller propagates it as a null aggregate.
func (t *Table) Resolve(candidates ...string) (string, bool) {
	for _, name := range candidates {
		if header, ok := t.lowered[strings.ToLower(name)]; ok {
			return header, true
		}
	}
	return "", false
}

// Len returns the row count.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Float parses a cell tolerantly. Anything that is not a finite number
// yields (0, false); partial data must never abort an aggregate.
func Float(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Truthy reports whether a cell marks its row as flagged. Any nonzero
// number counts, as do the usual boolean spellings; everything else,
// including unparseable noise, counts as clean.
func Truthy(cell string) bool {
	if v, ok := Float(cell); ok {
		return v != 0
	}
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "yes", "y":
		return true
	}
	return false
}

// Sum adds every parseable cell in a column. The second return is the
// number of cells that parsed; zero means the column held nothing
// numeric and the aggregate should be null.
func (t *Table) Sum(header string) (float64, int) {
	var total float64
	var n int
	for _, row := range t.Rows {
		if v, ok := Float(row[header]); ok {
			total += v
			n++
		}
	}
	return total, n
}

// Mean averages every parseable cell in a column.
func (t *Table) Mean(header string) (float64, int) {
	total, n := t.Sum(header)
	if n == 0 {
		return 0, 0
	}
	return total / float64(n), n
}

// CountTruthy counts rows whose cell in the column is truthy.
func (t *Table) CountTruthy(header string) int {
	var n int
	for _, row := range t.Rows {
		if Truthy(row[header]) {
			n++
		}
	}
	return n
}
