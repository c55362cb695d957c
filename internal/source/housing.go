package source

import "github.com/mkarev/whichmore/internal/model"

// Housing normalizes FHFA House Price Index state files. Index values are
// emitted unrounded: they are relative, and truncation would distort close
// comparisons.
type Housing struct{}

// Name returns the source family name
func (Housing) Name() string { return "housing" }

// Normalize converts HPI rows into state facts
func (Housing) Normalize(rows []Row) []model.Fact {
	var facts []model.Fact
	for _, r := range rows {
		state := r.First("State", "STATE")
		year := r.Year("Year", "YEAR")
		if state == "" || year == 0 {
			continue
		}
		index, ok := r.Numeric("Index", "HPI", "HPI_AT")
		if !ok {
			continue
		}
		facts = keep(facts, model.Fact{
			MetricID:      "fhfa_hpi",
			MetricName:    "House Price Index (FHFA)",
			Unit:          "index",
			GeographyType: model.GeographyState,
			GeographyID:   state,
			GeographyName: state,
			Year:          year,
			Value:         index,
			SourceName:    "FHFA HPI",
			SourceURL:     "https://www.fhfa.gov/DataTools/Downloads/Pages/House-Price-Index.aspx",
		})
	}
	return facts
}
