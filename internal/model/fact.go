package model

import (
	"math"
	"strconv"
)

// GeographyType distinguishes the two kinds of places facts describe
type GeographyType string

const (
	GeographyState GeographyType = "state" // bare state name, e.g. "Texas"
	GeographyCity  GeographyType = "city"  // "<Place>, <State>", e.g. "Austin, TX"
)

// Fact is one normalized (geography, metric, year) -> value record.
// Values are already unit-normalized and rounded by the source normalizer.
type Fact struct {
	MetricID      string        `json:"metric_id"`   // stable slug, e.g. "crime_murder"
	MetricName    string        `json:"metric_name"` // display label used for question phrasing
	Unit          string        `json:"unit"`        // display unit, e.g. "per 100k people"
	GeographyType GeographyType `json:"geography_type"`
	GeographyID   string        `json:"geography_id"`   // identity key for dedup and allowlisting
	GeographyName string        `json:"geography_name"` // display name (same format as the ID)
	Year          int           `json:"year,omitempty"` // 0 when the source has no temporal dimension
	Value         float64       `json:"value"`
	SourceName    string        `json:"source_name"`
	SourceURL     string        `json:"source_url"`
}

// Valid reports whether the fact may be emitted. Invalid rows are dropped
// silently during normalization, never treated as errors.
func (f Fact) Valid() bool {
	if f.GeographyID == "" || f.GeographyName == "" {
		return false
	}
	return !math.IsNaN(f.Value) && !math.IsInf(f.Value, 0)
}

// YearKey returns the year component of a pairing group key. Facts without a
// year form a single implicit "NA" group.
func (f Fact) YearKey() string {
	if f.Year == 0 {
		return "NA"
	}
	return strconv.Itoa(f.Year)
}

// GroupKey identifies the pairing group a fact belongs to. Facts may only be
// compared within the same metric and year.
func (f Fact) GroupKey() string {
	return f.MetricID + "|" + f.YearKey()
}
