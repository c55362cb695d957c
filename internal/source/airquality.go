package source

import (
	"fmt"

	"github.com/mkarev/whichmore/internal/model"
)

// AirQuality normalizes EPA annual AQI by-county files. Day counts are summed
// per state, and each state yields two facts: unhealthy days (unhealthy +
// very unhealthy + hazardous) and good days. The file itself carries no year
// column; Year comes from the filename.
type AirQuality struct {
	Year int
}

// Name returns the source family name
func (AirQuality) Name() string { return "air" }

type aqiTotals struct {
	unhealthy float64
	good      float64
}

// Normalize sums county day counts into two facts per state
func (a AirQuality) Normalize(rows []Row) []model.Fact {
	byState := make(map[string]*aqiTotals)
	for _, r := range rows {
		state := r.First("State")
		if state == "" {
			continue
		}
		unhealthy, unhealthyOK := sumDays(r, "Unhealthy Days", "Very Unhealthy Days", "Hazardous Days")
		good, goodOK := r.Numeric("Good Days")
		if !unhealthyOK && !goodOK {
			continue
		}
		agg := byState[state]
		if agg == nil {
			agg = &aqiTotals{}
			byState[state] = agg
		}
		if unhealthyOK {
			agg.unhealthy += unhealthy
		}
		if goodOK {
			agg.good += good
		}
	}

	sourceURL := fmt.Sprintf("https://aqs.epa.gov/aqsweb/airdata/annual_aqi_by_county_%d.csv", a.Year)
	var facts []model.Fact
	for state, agg := range byState {
		for _, m := range []struct {
			id, name string
			value    float64
		}{
			{"aqi_unhealthy_days", "Unhealthy air quality days", agg.unhealthy},
			{"aqi_good_days", "Good air quality days", agg.good},
		} {
			facts = keep(facts, model.Fact{
				MetricID:      m.id,
				MetricName:    m.name,
				Unit:          "days",
				GeographyType: model.GeographyState,
				GeographyID:   state,
				GeographyName: state,
				Year:          a.Year,
				Value:         m.value,
				SourceName:    "EPA AirData Annual AQI by County",
				SourceURL:     sourceURL,
			})
		}
	}
	return facts
}

// sumDays adds a set of day-count columns; the sum is usable only when every
// column parses.
func sumDays(r Row, cols ...string) (float64, bool) {
	var total float64
	for _, c := range cols {
		v, ok := r.Numeric(c)
		if !ok {
			return 0, false
		}
		total += v
	}
	return total, true
}
