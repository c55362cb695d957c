package source

import (
	"math"
	"regexp"
	"strings"

	"github.com/mkarev/whichmore/internal/model"
)

// Normalizer maps one source family's raw rows into canonical facts.
// Malformed rows are skipped silently; a normalizer never fails.
type Normalizer interface {
	// Name returns the source family name, e.g. "crime"
	Name() string

	// Normalize converts raw CSV rows into facts
	Normalize(rows []Row) []model.Fact
}

// Rounding is a metric's display precision rule. There is no default: every
// allowed metric declares its rounding explicitly, so a new metric cannot be
// ingested without one.
type Rounding int

const (
	RoundNone Rounding = iota // keep the source value as-is (index values)
	RoundInt                  // whole numbers (dollar amounts, counts)
	Round1                    // 1 decimal place (rates per 100k)
	Round2                    // 2 decimal places (percentages, per-capita)
)

// Apply rounds a value per the rule. Rounding is stable: applying it twice
// yields the same value as once.
func (r Rounding) Apply(v float64) float64 {
	switch r {
	case RoundInt:
		return math.Round(v)
	case Round1:
		return math.Round(v*10) / 10
	case Round2:
		return math.Round(v*100) / 100
	default:
		return v
	}
}

var slugPattern = regexp.MustCompile(`[^a-z]+`)

// Slug derives the metric_id suffix from a display name: lowercased, with
// runs of non-letters collapsed to underscores ("Motor Vehicle Theft" ->
// "motor_vehicle_theft").
func Slug(name string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(name), "_")
}

// keep collects only valid facts
func keep(facts []model.Fact, f model.Fact) []model.Fact {
	if !f.Valid() {
		return facts
	}
	return append(facts, f)
}
