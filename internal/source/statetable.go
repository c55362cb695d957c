package source

import "github.com/mkarev/whichmore/internal/model"

// MetricSpec declares the unit and rounding rule for one allowed metric.
// The spec table doubles as the metric allowlist: rows whose Metric field is
// not in the table are skipped, which keeps unexpected metric names from
// minting unbounded metric_ids.
type MetricSpec struct {
	Unit  string
	Round Rounding
}

// StateTable normalizes the State/Metric/Year/Value CSV shape shared by the
// economics, education, health, transportation, government, agriculture and
// culture source families.
type StateTable struct {
	Family     string // metric_id prefix, e.g. "economics"
	Metrics    map[string]MetricSpec
	SourceName string
	SourceURL  string
}

// Name returns the source family name
func (n *StateTable) Name() string { return n.Family }

// Normalize converts raw rows into state-level facts
func (n *StateTable) Normalize(rows []Row) []model.Fact {
	var facts []model.Fact
	for _, r := range rows {
		state := r.First("State")
		metric := r.First("Metric")
		spec, allowed := n.Metrics[metric]
		if state == "" || !allowed {
			continue
		}
		value, ok := r.Numeric("Value")
		if !ok {
			continue
		}
		facts = keep(facts, model.Fact{
			MetricID:      n.Family + "_" + Slug(metric),
			MetricName:    metric,
			Unit:          spec.Unit,
			GeographyType: model.GeographyState,
			GeographyID:   state,
			GeographyName: state,
			Year:          r.Year("Year", "year"),
			Value:         spec.Round.Apply(value),
			SourceName:    n.SourceName,
			SourceURL:     n.SourceURL,
		})
	}
	return facts
}

// Economics covers BLS/Census state economic indicators
func Economics() *StateTable {
	return &StateTable{
		Family: "economics",
		Metrics: map[string]MetricSpec{
			"Median Household Income": {Unit: "dollars", Round: RoundInt},
			"Unemployment Rate":       {Unit: "percent", Round: Round2},
			"Minimum Wage":            {Unit: "dollars per hour", Round: Round2},
			"Cost of Living Index":    {Unit: "index (100 = national average)", Round: Round2},
		},
		SourceName: "Bureau of Labor Statistics & Census Bureau",
		SourceURL:  "https://www.bls.gov/ & https://www.census.gov/",
	}
}

// Education covers Department of Education state metrics
func Education() *StateTable {
	return &StateTable{
		Family: "education",
		Metrics: map[string]MetricSpec{
			"High School Graduation Rate":  {Unit: "percent", Round: Round1},
			"College Attainment Rate":      {Unit: "percent", Round: Round1},
			"Average SAT Score":            {Unit: "points", Round: Round1},
			"Education Spending Per Pupil": {Unit: "dollars per student", Round: RoundInt},
		},
		SourceName: "Department of Education & Census Bureau",
		SourceURL:  "https://www.ed.gov/ & https://www.census.gov/",
	}
}

// Health covers CDC/CMS state health metrics
func Health() *StateTable {
	return &StateTable{
		Family: "health",
		Metrics: map[string]MetricSpec{
			"Life Expectancy":                {Unit: "years", Round: Round1},
			"Obesity Rate":                   {Unit: "percent", Round: Round1},
			"Infant Mortality Rate":          {Unit: "per 1,000 births", Round: Round1},
			"Healthcare Spending Per Capita": {Unit: "dollars per person", Round: RoundInt},
		},
		SourceName: "CDC & Centers for Medicare & Medicaid Services",
		SourceURL:  "https://www.cdc.gov/ & https://www.cms.gov/",
	}
}

// Transportation covers DOT state infrastructure metrics
func Transportation() *StateTable {
	return &StateTable{
		Family: "transportation",
		Metrics: map[string]MetricSpec{
			"Highway Miles Per Capita":            {Unit: "miles per person", Round: Round2},
			"Structurally Deficient Bridges":      {Unit: "percent of bridges", Round: Round2},
			"EV Charging Stations":                {Unit: "stations", Round: RoundInt},
			"Public Transit Ridership Per Capita": {Unit: "trips per person", Round: Round2},
		},
		SourceName: "DOT Bureau of Transportation Statistics",
		SourceURL:  "https://www.bts.gov/",
	}
}

// Government covers election and tax metrics
func Government() *StateTable {
	return &StateTable{
		Family: "government",
		Metrics: map[string]MetricSpec{
			"Voter Turnout":              {Unit: "percent", Round: Round2},
			"State Income Tax Rate":      {Unit: "percent", Round: Round2},
			"Government Employment Rate": {Unit: "percent of workforce", Round: Round2},
			"Property Tax Rate":          {Unit: "percent", Round: Round2},
		},
		SourceName: "Election Commissions & Tax Foundation",
		SourceURL:  "https://www.eac.gov/ & https://taxfoundation.org/",
	}
}

// Agriculture covers USDA/DOE state land-use metrics
func Agriculture() *StateTable {
	return &StateTable{
		Family: "agriculture",
		Metrics: map[string]MetricSpec{
			"Corn Production":             {Unit: "thousand bushels", Round: RoundInt},
			"Farmland Percentage":         {Unit: "percent", Round: Round2},
			"Renewable Energy Percentage": {Unit: "percent", Round: Round2},
			"Forest Coverage Percentage":  {Unit: "percent", Round: Round2},
		},
		SourceName: "USDA & Department of Energy",
		SourceURL:  "https://www.usda.gov/ & https://www.energy.gov/",
	}
}

// Culture covers per-capita venue density metrics
func Culture() *StateTable {
	return &StateTable{
		Family: "culture",
		Metrics: map[string]MetricSpec{
			"Museums Per Capita":              {Unit: "per 100k people", Round: Round2},
			"Restaurants Per Capita":          {Unit: "per 100k people", Round: Round2},
			"Breweries Per Capita":            {Unit: "per 100k people", Round: Round2},
			"Entertainment Venues Per Capita": {Unit: "per 100k people", Round: Round2},
		},
		SourceName: "Cultural & Business Databases",
		SourceURL:  "https://www.census.gov/ & https://data.gov/",
	}
}
