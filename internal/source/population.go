package source

import (
	"fmt"

	"github.com/mkarev/whichmore/internal/model"
)

// sumlevPlace marks incorporated-place rows in Census SUB-EST files;
// county and state summary rows carry other summary levels.
const sumlevPlace = "162"

// Population normalizes Census city population estimates. Its output doubles
// as the input to the recognizable-city allowlist.
type Population struct{}

// Name returns the source family name
func (Population) Name() string { return "pop" }

// Normalize converts SUB-EST place rows into city population facts,
// preferring the most recent estimate column present.
func (Population) Normalize(rows []Row) []model.Fact {
	var facts []model.Fact
	for _, r := range rows {
		if r.First("SUMLEV") != sumlevPlace {
			continue
		}
		name := r.First("NAME")
		state := r.First("STNAME")
		if name == "" || state == "" {
			continue
		}
		pop, ok := r.Numeric("POPESTIMATE2024", "POPESTIMATE2023", "POPESTIMATE2022", "POPESTIMATE2021")
		if !ok {
			continue
		}
		geo := fmt.Sprintf("%s, %s", name, state)
		facts = keep(facts, model.Fact{
			MetricID:      "population_total",
			MetricName:    "Population",
			Unit:          "people",
			GeographyType: model.GeographyCity,
			GeographyID:   geo,
			GeographyName: geo,
			Year:          2024,
			Value:         pop,
			SourceName:    "US Census Population Estimates (SUB-EST2024)",
			SourceURL:     "https://www2.census.gov/programs-surveys/popest/datasets/2020-2024/cities/totals/sub-est2024.csv",
		})
	}
	return facts
}
