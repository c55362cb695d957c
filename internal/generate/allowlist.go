package generate

import "github.com/mkarev/whichmore/internal/model"

// Allowlist is the set of cities large enough to appear in city questions.
// Small places make quiz questions unrecognizable.
type Allowlist map[string]struct{}

// Has reports whether a geography is allowlisted
func (a Allowlist) Has(geographyID string) bool {
	_, ok := a[geographyID]
	return ok
}

// BuildAllowlist derives the recognizable-city set from population facts:
// every geography whose population meets the threshold. Non-population facts
// in the input are ignored.
func BuildAllowlist(populationFacts []model.Fact, thresholdPeople float64) Allowlist {
	allow := make(Allowlist)
	for _, f := range populationFacts {
		if f.MetricID == "population_total" && f.Value >= thresholdPeople {
			allow[f.GeographyID] = struct{}{}
		}
	}
	return allow
}

// Aggregate merges normalizer outputs into one collection and applies the
// allowlist to city facts only. State facts pass unconditionally, even when
// population data is absent entirely.
func Aggregate(allow Allowlist, factSources ...[]model.Fact) []model.Fact {
	var merged []model.Fact
	for _, facts := range factSources {
		for _, f := range facts {
			if f.GeographyType == model.GeographyCity && !allow.Has(f.GeographyID) {
				continue
			}
			merged = append(merged, f)
		}
	}
	return merged
}
