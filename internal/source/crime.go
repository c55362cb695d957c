package source

import "github.com/mkarev/whichmore/internal/model"

// allowedOffenses is the fixed set of offense names ingested from FBI crime
// exports. Anything else is skipped.
var allowedOffenses = map[string]bool{
	"Murder":                true,
	"Homicide":              true,
	"Robbery":               true,
	"Burglary":              true,
	"Motor Vehicle Theft":   true,
	"Arson":                 true,
	"Vandalism":             true,
	"Liquor Law Violations": true,
	"DUI":                   true,
	"Public Intoxication":   true,
	"Disorderly Conduct":    true,
	"Shoplifting":           true,
	"Gambling":              true,
}

// statePopulations holds 2023 Census estimates used to convert raw offense
// counts to per-100k rates. A state missing here is dropped: never emit an
// unrateable fact, never guess a population.
var statePopulations = map[string]float64{
	"Alabama":        5108468,
	"Alaska":         733571,
	"Arizona":        7431344,
	"Arkansas":       3067732,
	"California":     38965193,
	"Colorado":       5877610,
	"Connecticut":    3617176,
	"Delaware":       1031890,
	"Florida":        23244842,
	"Georgia":        11029227,
	"Hawaii":         1435138,
	"Idaho":          1981202,
	"Illinois":       12549689,
	"Indiana":        6862199,
	"Iowa":           3207004,
	"Kansas":         2940546,
	"Kentucky":       4555777,
	"Louisiana":      4573749,
	"Maine":          1402734,
	"Maryland":       6196519,
	"Massachusetts":  7001399,
	"Michigan":       10037261,
	"Minnesota":      5748829,
	"Mississippi":    2940057,
	"Missouri":       6224160,
	"Montana":        1132812,
	"Nebraska":       1978379,
	"Nevada":         3194176,
	"New Hampshire":  1402054,
	"New Jersey":     9290841,
	"New Mexico":     2114371,
	"New York":       19571216,
	"North Carolina": 10835491,
	"North Dakota":   787424,
	"Ohio":           11785935,
	"Oklahoma":       4053824,
	"Oregon":         4233358,
	"Pennsylvania":   12961683,
	"Rhode Island":   1095962,
	"South Carolina": 5441748,
	"South Dakota":   919318,
	"Tennessee":      7126489,
	"Texas":          30503301,
	"Utah":           3417734,
	"Vermont":        647464,
	"Virginia":       8715698,
	"Washington":     7812880,
	"West Virginia":  1770071,
	"Wisconsin":      5961370,
	"Wyoming":        584057,
}

// Crime normalizes FBI offense counts into per-100k rates
type Crime struct{}

// Name returns the source family name
func (Crime) Name() string { return "crime" }

// Normalize converts raw offense rows into rate facts. Counts are divided by
// the state population and scaled to per 100,000 people, rounded to 1 decimal.
func (Crime) Normalize(rows []Row) []model.Fact {
	var facts []model.Fact
	for _, r := range rows {
		state := r.First("State")
		offense := r.First("Offense", "offense")
		if state == "" || !allowedOffenses[offense] {
			continue
		}
		raw, ok := r.Numeric("Value", "Count", "Rate")
		if !ok {
			continue
		}
		population, known := statePopulations[state]
		if !known {
			continue
		}
		rate := raw / population * 100000
		facts = keep(facts, model.Fact{
			MetricID:      "crime_" + Slug(offense),
			MetricName:    offense,
			Unit:          "per 100k people",
			GeographyType: model.GeographyState,
			GeographyID:   state,
			GeographyName: state,
			Year:          r.Year("Year", "year"),
			Value:         Round1.Apply(rate),
			SourceName:    "FBI Crime Data Explorer (per capita)",
			SourceURL:     "https://cde.ucr.fbi.gov/",
		})
	}
	return facts
}
