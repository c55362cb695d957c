package source

import "testing"

func TestAirQuality_Normalize(t *testing.T) {
	rows := []Row{
		{"State": "Arizona", "County": "Maricopa", "Good Days": "120", "Unhealthy Days": "30", "Very Unhealthy Days": "4", "Hazardous Days": "1"},
		{"State": "Arizona", "County": "Pima", "Good Days": "200", "Unhealthy Days": "5", "Very Unhealthy Days": "0", "Hazardous Days": "0"},
		{"State": "Vermont", "County": "Chittenden", "Good Days": "300", "Unhealthy Days": "1", "Very Unhealthy Days": "0", "Hazardous Days": "0"},
	}

	facts := AirQuality{Year: 2023}.Normalize(rows)
	if len(facts) != 4 {
		t.Fatalf("expected 2 facts per state, got %d", len(facts))
	}

	values := make(map[string]float64)
	for _, f := range facts {
		if f.Unit != "days" || f.GeographyType != "state" || f.Year != 2023 {
			t.Errorf("unexpected fact shape: %+v", f)
		}
		values[f.GeographyID+"|"+f.MetricID] = f.Value
	}

	if v := values["Arizona|aqi_unhealthy_days"]; v != 40 {
		t.Errorf("Arizona unhealthy days = %v, want 40", v)
	}
	if v := values["Arizona|aqi_good_days"]; v != 320 {
		t.Errorf("Arizona good days = %v, want 320", v)
	}
	if v := values["Vermont|aqi_unhealthy_days"]; v != 1 {
		t.Errorf("Vermont unhealthy days = %v, want 1", v)
	}
}

func TestAirQuality_Normalize_PartialColumns(t *testing.T) {
	// A county missing one of the unhealthy columns contributes nothing to the
	// unhealthy sum, but its good days still count.
	rows := []Row{
		{"State": "Ohio", "Good Days": "250", "Unhealthy Days": "10", "Very Unhealthy Days": "?", "Hazardous Days": "0"},
		{"State": "Ohio", "Good Days": "100", "Unhealthy Days": "2", "Very Unhealthy Days": "0", "Hazardous Days": "0"},
	}

	facts := AirQuality{Year: 2024}.Normalize(rows)
	values := make(map[string]float64)
	for _, f := range facts {
		values[f.MetricID] = f.Value
	}

	if v := values["aqi_good_days"]; v != 350 {
		t.Errorf("good days = %v, want 350", v)
	}
	if v := values["aqi_unhealthy_days"]; v != 2 {
		t.Errorf("unhealthy days = %v, want 2", v)
	}
}
