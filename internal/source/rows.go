package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Row is one CSV record keyed by header name
type Row map[string]string

// ReadRows decodes a header-led CSV stream into rows. Records shorter or
// longer than the header are tolerated; extra fields are dropped.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// First resolves a value through an ordered list of accepted column aliases:
// the first alias with a non-empty value wins. Column naming varies across
// source vintages, so every normalizer declares its aliases explicitly.
func (r Row) First(aliases ...string) string {
	for _, name := range aliases {
		if v := strings.TrimSpace(r[name]); v != "" {
			return v
		}
	}
	return ""
}

// Numeric resolves a column through aliases and coerces it to a number.
// Rows whose value does not parse are expected to be skipped by the caller.
func (r Row) Numeric(aliases ...string) (float64, bool) {
	return Number(r.First(aliases...))
}

// Number coerces a numeric string, stripping thousands separators
func Number(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Year parses an integer year, returning 0 when absent or malformed.
// A zero year places the fact in the implicit "NA" pairing group.
func (r Row) Year(aliases ...string) int {
	v, ok := r.Numeric(aliases...)
	if !ok {
		return 0
	}
	return int(v)
}

// LooksLikeHTML reports whether supposed CSV content is actually an HTML
// error page. Some upstream servers answer 200 with an HTML body.
func LooksLikeHTML(data []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(data)), "<")
}
