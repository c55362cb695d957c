package source

import "testing"

func TestCrime_Normalize_PerCapitaRates(t *testing.T) {
	rows := []Row{
		{"State": "Texas", "Offense": "Murder", "Year": "2023", "Value": "1400"},
		{"State": "California", "Offense": "Murder", "Year": "2023", "Value": "1900"},
	}

	facts := Crime{}.Normalize(rows)
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}

	// 1400 / 30,503,301 * 100k = 4.589... -> 4.6
	if facts[0].Value != 4.6 {
		t.Errorf("Texas murder rate = %v, want 4.6", facts[0].Value)
	}
	// 1900 / 38,965,193 * 100k = 4.876... -> 4.9
	if facts[1].Value != 4.9 {
		t.Errorf("California murder rate = %v, want 4.9", facts[1].Value)
	}

	for _, f := range facts {
		if f.MetricID != "crime_murder" {
			t.Errorf("unexpected metric id: %s", f.MetricID)
		}
		if f.Unit != "per 100k people" {
			t.Errorf("unexpected unit: %s", f.Unit)
		}
	}
}

func TestCrime_Normalize_UnknownStateDropped(t *testing.T) {
	rows := []Row{
		{"State": "Puerto Rico", "Offense": "Robbery", "Year": "2023", "Value": "500"},
	}
	if facts := (Crime{}).Normalize(rows); len(facts) != 0 {
		t.Errorf("state without a population entry must be dropped, got %d facts", len(facts))
	}
}

func TestCrime_Normalize_OffenseAllowlist(t *testing.T) {
	rows := []Row{
		{"State": "Texas", "Offense": "Jaywalking", "Year": "2023", "Value": "9000"},
		{"State": "Texas", "offense": "DUI", "Year": "2023", "Value": "82000"},
	}

	facts := Crime{}.Normalize(rows)
	if len(facts) != 1 {
		t.Fatalf("expected only the allowlisted offense, got %d facts", len(facts))
	}
	if facts[0].MetricID != "crime_dui" {
		t.Errorf("unexpected metric id: %s", facts[0].MetricID)
	}
}

func TestCrime_Normalize_ValueAliases(t *testing.T) {
	rows := []Row{
		{"State": "Texas", "Offense": "Arson", "Year": "2022", "Count": "305"},
	}
	facts := Crime{}.Normalize(rows)
	if len(facts) != 1 {
		t.Fatalf("expected Count alias to resolve, got %d facts", len(facts))
	}
	// 305 / 30,503,301 * 100k = 0.99989... -> 1.0
	if facts[0].Value != 1.0 {
		t.Errorf("rate = %v, want 1.0", facts[0].Value)
	}
}
