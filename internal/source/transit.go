package source

import (
	"fmt"

	"github.com/mkarev/whichmore/internal/model"
)

// Transit normalizes FTA National Transit Database ridership files. Multiple
// agencies can serve one city, so unlinked passenger trips are summed per
// city before emission.
type Transit struct{}

// Name returns the source family name
func (Transit) Name() string { return "transit" }

// Normalize sums per-agency ridership into one fact per city
func (Transit) Normalize(rows []Row) []model.Fact {
	byCity := make(map[string]float64)
	for _, r := range rows {
		city := r.First("City", "Principal_City")
		state := r.First("State", "ST")
		if city == "" || state == "" {
			continue
		}
		trips, ok := r.Numeric("UPT", "RIDERSHIP", "Total_UPT")
		if !ok {
			continue
		}
		byCity[fmt.Sprintf("%s, %s", city, state)] += trips
	}

	var facts []model.Fact
	for geo, total := range byCity {
		facts = keep(facts, model.Fact{
			MetricID:      "transit_ridership",
			MetricName:    "Transit ridership (unlinked passenger trips)",
			Unit:          "trips",
			GeographyType: model.GeographyCity,
			GeographyID:   geo,
			GeographyName: geo,
			Value:         total,
			SourceName:    "FTA National Transit Database",
			SourceURL:     "https://www.transit.dot.gov/ntd",
		})
	}
	return facts
}
