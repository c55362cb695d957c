package source

import (
	"fmt"

	"github.com/mkarev/whichmore/internal/model"
)

// Libraries normalizes IMLS Public Libraries Survey outlet files. The survey
// reports one row per library branch, so visits are summed per city before
// emission.
type Libraries struct{}

// Name returns the source family name
func (Libraries) Name() string { return "libraries" }

// Normalize sums per-branch visit counts into one fact per city
func (Libraries) Normalize(rows []Row) []model.Fact {
	byCity := make(map[string]float64)
	for _, r := range rows {
		state := r.First("STABR", "State")
		city := r.First("CITY", "City", "MCITY")
		if state == "" || city == "" {
			continue
		}
		visits, ok := r.Numeric("VISITS", "TOTVISIT", "VISITS_FY")
		if !ok {
			continue
		}
		byCity[fmt.Sprintf("%s, %s", city, state)] += visits
	}

	var facts []model.Fact
	for geo, total := range byCity {
		facts = keep(facts, model.Fact{
			MetricID:      "library_visits",
			MetricName:    "Public library visits",
			Unit:          "visits",
			GeographyType: model.GeographyCity,
			GeographyID:   geo,
			GeographyName: geo,
			Value:         total,
			SourceName:    "IMLS Public Libraries Survey",
			SourceURL:     "https://www.imls.gov/research-evaluation/data-collection/public-libraries-survey",
		})
	}
	return facts
}
