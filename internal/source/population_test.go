package source

import "testing"

func TestPopulation_Normalize(t *testing.T) {
	rows := []Row{
		{"SUMLEV": "162", "NAME": "Seattle city", "STNAME": "Washington", "POPESTIMATE2024": "755078"},
		{"SUMLEV": "040", "NAME": "Washington", "STNAME": "Washington", "POPESTIMATE2024": "7812880"},
		{"SUMLEV": "162", "NAME": "Spokane city", "STNAME": "Washington", "POPESTIMATE2022": "229447"},
		{"SUMLEV": "162", "NAME": "", "STNAME": "Washington", "POPESTIMATE2024": "1"},
	}

	facts := Population{}.Normalize(rows)
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}

	seattle := facts[0]
	if seattle.GeographyID != "Seattle city, Washington" {
		t.Errorf("unexpected geography: %s", seattle.GeographyID)
	}
	if seattle.Value != 755078 || seattle.Year != 2024 {
		t.Errorf("unexpected fact: %+v", seattle)
	}
	if seattle.MetricID != "population_total" {
		t.Errorf("unexpected metric id: %s", seattle.MetricID)
	}

	// Falls back through the estimate columns when the newest is absent.
	if facts[1].Value != 229447 {
		t.Errorf("estimate fallback failed: %+v", facts[1])
	}
}

func TestPopulation_Normalize_SkipsNonPlaceRows(t *testing.T) {
	rows := []Row{
		{"SUMLEV": "050", "NAME": "King County", "STNAME": "Washington", "POPESTIMATE2024": "2271380"},
	}
	if facts := (Population{}).Normalize(rows); len(facts) != 0 {
		t.Errorf("county summary rows must be skipped, got %d facts", len(facts))
	}
}
