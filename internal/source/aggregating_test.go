package source

import "testing"

func TestTransit_Normalize_SumsAgencies(t *testing.T) {
	rows := []Row{
		{"City": "Chicago", "State": "IL", "UPT": "200000000"},
		{"Principal_City": "Chicago", "ST": "IL", "Total_UPT": "50000000"},
		{"City": "Chicago", "State": "", "UPT": "1"},
	}

	facts := Transit{}.Normalize(rows)
	if len(facts) != 1 {
		t.Fatalf("expected 1 fact, got %d", len(facts))
	}
	f := facts[0]
	if f.GeographyID != "Chicago, IL" || f.Value != 250000000 {
		t.Errorf("agencies not summed per city: %+v", f)
	}
	if f.MetricID != "transit_ridership" || f.GeographyType != "city" {
		t.Errorf("unexpected fact shape: %+v", f)
	}
}

func TestParks_Normalize_SumsPerStateYear(t *testing.T) {
	rows := []Row{
		{"State": "Wyoming", "Year": "2023", "RecreationVisitors": "3000000"},
		{"State": "Wyoming", "Year": "2023", "Visitors": "1500000"},
		{"State": "Wyoming", "Year": "2022", "RecreationVisitors": "2800000"},
		{"State": "Utah", "YEAR": "2023", "RecreationVisitors": "5000000"},
		{"State": "Colorado", "Year": "", "RecreationVisitors": "1"},
	}

	facts := Parks{}.Normalize(rows)
	if len(facts) != 3 {
		t.Fatalf("expected 3 facts, got %d", len(facts))
	}

	totals := make(map[string]float64)
	for _, f := range facts {
		if f.MetricID != "nps_visitors" || f.GeographyType != "state" {
			t.Errorf("unexpected fact shape: %+v", f)
		}
		totals[f.GeographyID+"|"+f.YearKey()] = f.Value
	}
	if totals["Wyoming|2023"] != 4500000 {
		t.Errorf("Wyoming 2023 = %v, want 4500000", totals["Wyoming|2023"])
	}
	if totals["Wyoming|2022"] != 2800000 {
		t.Errorf("years must not be merged: %v", totals["Wyoming|2022"])
	}
	if totals["Utah|2023"] != 5000000 {
		t.Errorf("Utah 2023 = %v", totals["Utah|2023"])
	}
}

func TestHousing_Normalize(t *testing.T) {
	rows := []Row{
		{"State": "Idaho", "Year": "2023", "Index": "612.384"},
		{"STATE": "Utah", "YEAR": "2023", "HPI": "590.12"},
		{"State": "Ohio", "Year": "2023", "Index": "not a number"},
		{"State": "Iowa", "Year": "abc", "Index": "280"},
	}

	facts := Housing{}.Normalize(rows)
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if facts[0].Value != 612.384 {
		t.Errorf("index values must stay unrounded: %v", facts[0].Value)
	}
	if facts[1].GeographyID != "Utah" || facts[1].Value != 590.12 {
		t.Errorf("alias columns not resolved: %+v", facts[1])
	}
}
