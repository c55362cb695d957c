package pool

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/mkarev/whichmore/internal/model"
)

// Pool is an immutable question collection loaded from a pool.json artifact.
// Consumers load it once at session start and pass the handle around; there
// is deliberately no ambient singleton.
type Pool struct {
	questions []model.Question
}

// Load reads a pool artifact from disk
func Load(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}
	return &Pool{questions: questions}, nil
}

// Len returns the number of questions
func (p *Pool) Len() int {
	return len(p.questions)
}

// At returns the question at index i
func (p *Pool) At(i int) model.Question {
	return p.questions[i]
}

// Sample draws n distinct questions in random order. When n exceeds the pool
// size the whole pool is returned shuffled; a non-positive n yields nothing.
func (p *Pool) Sample(rng *rand.Rand, n int) []model.Question {
	perm := rng.Perm(len(p.questions))
	if n < 0 {
		n = 0
	}
	if n > len(perm) {
		n = len(perm)
	}
	out := make([]model.Question, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, p.questions[idx])
	}
	return out
}

// Verify checks the consumer contract over every question: canonical option
// order, no self-pairs, answer keys matching the embedded values, and unique
// IDs. It returns one message per violation.
func (p *Pool) Verify() []string {
	var violations []string
	seen := make(map[string]bool, len(p.questions))

	for i, q := range p.questions {
		if q.OptionA.Name > q.OptionB.Name {
			violations = append(violations, fmt.Sprintf("question %d (%s): options out of canonical order", i, q.ID))
		}
		if q.OptionA.Name == q.OptionB.Name {
			violations = append(violations, fmt.Sprintf("question %d (%s): self-paired geography %q", i, q.ID, q.OptionA.Name))
		}
		if !q.Consistent() {
			violations = append(violations, fmt.Sprintf("question %d (%s): answer key %s contradicts values %v vs %v",
				i, q.ID, q.CorrectAnswer, q.OptionA.Value, q.OptionB.Value))
		}
		if seen[q.ID] {
			violations = append(violations, fmt.Sprintf("question %d: duplicate id %s", i, q.ID))
		}
		seen[q.ID] = true
	}
	return violations
}
