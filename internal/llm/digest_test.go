package llm

import (
	"strings"
	"testing"

	"github.com/mkarev/whichmore/internal/model"
)

func TestNewDigester_Validation(t *testing.T) {
	if _, err := NewDigester(model.LLMConfig{Provider: "anthropic", APIKey: "x"}); err == nil {
		t.Error("expected error for unsupported provider")
	}
	if _, err := NewDigester(model.LLMConfig{Provider: "openai"}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewDigester(model.LLMConfig{Provider: "openai", APIKey: "test-key"}); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Stats{
		Facts:     1200,
		Questions: 4800,
		Categories: map[string]int{
			"Population":             900,
			"House Price Index":      300,
			"National park visitors": 120,
		},
	})

	if !strings.Contains(prompt, "1200 facts") || !strings.Contains(prompt, "4800 generated questions") {
		t.Errorf("counts missing from prompt:\n%s", prompt)
	}

	// Categories render sorted, so the prompt is stable across runs.
	hpi := strings.Index(prompt, "House Price Index: 300")
	nps := strings.Index(prompt, "National park visitors: 120")
	pop := strings.Index(prompt, "Population: 900")
	if hpi < 0 || nps < 0 || pop < 0 {
		t.Fatalf("category lines missing:\n%s", prompt)
	}
	if !(hpi < nps && nps < pop) {
		t.Error("categories not sorted alphabetically")
	}
}
