package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mkarev/whichmore/internal/model"
)

// Renderer writes the pipeline's JSON artifacts. Each run fully overwrites
// prior output; the artifacts are never updated incrementally.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// WriteFacts writes the fact collection to facts.json
func (r *Renderer) WriteFacts(facts []model.Fact, path string) error {
	if facts == nil {
		facts = []model.Fact{}
	}
	return r.writeJSON(path, facts)
}

// WritePool writes the question pool to pool.json
func (r *Renderer) WritePool(questions []model.Question, path string) error {
	if questions == nil {
		questions = []model.Question{}
	}
	return r.writeJSON(path, questions)
}

func (r *Renderer) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if r.verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
	}
	return nil
}

// RenderSummary prints a run summary to stdout
func (r *Renderer) RenderSummary(result *RunResult) {
	fmt.Printf("Facts:     %d\n", result.Facts)
	fmt.Printf("Questions: %d\n", result.Questions)

	categories := make([]string, 0, len(result.Categories))
	for c := range result.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if result.Categories[categories[i]] != result.Categories[categories[j]] {
			return result.Categories[categories[i]] > result.Categories[categories[j]]
		}
		return categories[i] < categories[j]
	})

	if len(categories) > 0 {
		fmt.Println("Categories:")
		for _, c := range categories {
			fmt.Printf("  %-40s %d\n", c, result.Categories[c])
		}
	}
}
