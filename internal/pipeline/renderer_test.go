package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarev/whichmore/internal/model"
)

func TestRenderer_WriteFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics", "facts.json")

	facts := []model.Fact{
		{
			MetricID:      "nps_visitors",
			MetricName:    "National park visitors",
			Unit:          "visitors",
			GeographyType: model.GeographyState,
			GeographyID:   "Wyoming",
			GeographyName: "Wyoming",
			Year:          2023,
			Value:         5000000,
			SourceName:    "NPS",
		},
	}

	r := NewRenderer(false)
	if err := r.WriteFacts(facts, path); err != nil {
		t.Fatalf("WriteFacts: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	var decoded []model.Fact
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 1 || decoded[0].GeographyID != "Wyoming" {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestRenderer_NilSlicesWriteEmptyArrays(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(false)

	factsPath := filepath.Join(dir, "facts.json")
	poolPath := filepath.Join(dir, "pool.json")
	if err := r.WriteFacts(nil, factsPath); err != nil {
		t.Fatalf("WriteFacts: %v", err)
	}
	if err := r.WritePool(nil, poolPath); err != nil {
		t.Fatalf("WritePool: %v", err)
	}

	for _, path := range []string{factsPath, poolPath} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if string(data) != "[]" {
			t.Errorf("%s = %q, want empty JSON array", filepath.Base(path), data)
		}
	}
}

func TestRenderer_WriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	r := NewRenderer(false)

	first := []model.Question{{ID: "a|NA|X|Y", CorrectAnswer: model.AnswerA}}
	if err := r.WritePool(first, path); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := r.WritePool(nil, path); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("artifact not fully replaced: %q", data)
	}
}
