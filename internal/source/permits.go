package source

import (
	"fmt"

	"github.com/mkarev/whichmore/internal/model"
)

// Permits normalizes Census Building Permits Survey place files. Column names
// drift across survey years, hence the alias lists. YearGuess comes from the
// source filename and is used when the file carries no Year column.
type Permits struct {
	YearGuess int
}

// Name returns the source family name
func (Permits) Name() string { return "bps" }

// Normalize converts BPS place rows into city facts
func (p Permits) Normalize(rows []Row) []model.Fact {
	var facts []model.Fact
	for _, r := range rows {
		place := r.First("Name", "Place Name", "Place")
		state := r.First("State", "StateAbbr", "St")
		if place == "" || state == "" {
			continue
		}
		units, ok := r.Numeric("YTD Units", "Total Units", "Units", "YTDUnits")
		if !ok {
			continue
		}
		year := r.Year("Year")
		if year == 0 {
			year = p.YearGuess
		}
		geo := fmt.Sprintf("%s, %s", place, state)
		facts = keep(facts, model.Fact{
			MetricID:      "building_permits_units",
			MetricName:    "Building permits (units authorized)",
			Unit:          "units",
			GeographyType: model.GeographyCity,
			GeographyID:   geo,
			GeographyName: geo,
			Year:          year,
			Value:         units,
			SourceName:    "US Census Building Permits Survey (Place)",
			SourceURL:     "https://www.census.gov/construction/bps/",
		})
	}
	return facts
}
