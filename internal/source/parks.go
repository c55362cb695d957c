package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarev/whichmore/internal/model"
)

// Parks normalizes NPS visitor statistics. Parks report individually, so
// recreation visits are summed per state and year before emission.
type Parks struct{}

// Name returns the source family name
func (Parks) Name() string { return "nps" }

// Normalize sums per-park visits into one fact per state and year
func (Parks) Normalize(rows []Row) []model.Fact {
	byStateYear := make(map[string]float64)
	for _, r := range rows {
		state := r.First("State", "StateCode")
		year := r.Year("Year", "YEAR")
		if state == "" || year == 0 {
			continue
		}
		visits, ok := r.Numeric("RecreationVisitors", "Visitors")
		if !ok {
			continue
		}
		byStateYear[fmt.Sprintf("%s|%d", state, year)] += visits
	}

	var facts []model.Fact
	for key, total := range byStateYear {
		state, yearStr, _ := strings.Cut(key, "|")
		year, _ := strconv.Atoi(yearStr)
		facts = keep(facts, model.Fact{
			MetricID:      "nps_visitors",
			MetricName:    "National Park visitors",
			Unit:          "visits",
			GeographyType: model.GeographyState,
			GeographyID:   state,
			GeographyName: state,
			Year:          year,
			Value:         total,
			SourceName:    "NPS Visitor Use Statistics",
			SourceURL:     "https://irma.nps.gov/STATS/",
		})
	}
	return facts
}
