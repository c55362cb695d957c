package generate

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mkarev/whichmore/internal/model"
)

// attemptsPerFact scales the draw budget with group size: larger groups get
// proportionally more attempts but still see less than full O(n^2) coverage,
// which is fine because the quiz needs variety, not exhaustiveness.
const attemptsPerFact = 20

// Generator turns a fact collection into a deduplicated question pool by
// bounded random sampling within (metric, year) groups.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator creates a generator. The injected rand source makes pools
// reproducible under a fixed seed.
func NewGenerator(rng *rand.Rand, maxAttemptsPerGroup int) *Generator {
	if maxAttemptsPerGroup <= 0 {
		maxAttemptsPerGroup = 200000
	}
	return &Generator{rng: rng, maxAttempts: maxAttemptsPerGroup}
}

// Questions generates the question pool. Facts are partitioned by
// (metric_id, year); cross-metric and cross-year pairs are never drawn,
// since comparing a 2020 figure to a 2023 one would be meaningless.
func (g *Generator) Questions(facts []model.Fact) []model.Question {
	groups := make(map[string][]model.Fact)
	for _, f := range facts {
		k := f.GroupKey()
		groups[k] = append(groups[k], f)
	}

	var questions []model.Question
	for groupKey, group := range groups {
		questions = append(questions, g.pairGroup(groupKey, group)...)
	}
	return questions
}

// pairGroup draws random pairs from one group. The attempt budget bounds the
// loop, so a group that keeps colliding simply contributes fewer questions;
// an under-filled group is a valid outcome, not an error. The seen set is
// scoped to the group and discarded afterwards.
func (g *Generator) pairGroup(groupKey string, group []model.Fact) []model.Question {
	if len(group) < 2 {
		return nil
	}

	attempts := len(group) * attemptsPerFact
	if attempts > g.maxAttempts {
		attempts = g.maxAttempts
	}

	seen := make(map[string]struct{})
	var questions []model.Question
	for i := 0; i < attempts; i++ {
		a := group[g.rng.Intn(len(group))]
		b := group[g.rng.Intn(len(group))]
		if a.GeographyID == b.GeographyID {
			// Same place can't be compared to itself; this also catches
			// duplicate-source rows for one geography.
			continue
		}

		A, B := a, b
		if B.GeographyName < A.GeographyName {
			A, B = B, A
		}

		id := groupKey + "|" + A.GeographyID + "|" + B.GeographyID
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		questions = append(questions, buildQuestion(id, A, B))
	}
	return questions
}

// buildQuestion assembles the question record for a canonically ordered pair.
// Ties favor A.
func buildQuestion(id string, A, B model.Fact) model.Question {
	answer := model.AnswerB
	if A.Value >= B.Value {
		answer = model.AnswerA
	}

	kind := "city"
	if A.GeographyType == model.GeographyState {
		kind = "state"
	}

	return model.Question{
		ID:            id,
		Category:      A.MetricName,
		Question:      fmt.Sprintf("Which %s has more %s?", kind, strings.ToLower(A.MetricName)),
		OptionA:       model.Option{Name: A.GeographyName, Value: A.Value, Unit: A.Unit},
		OptionB:       model.Option{Name: B.GeographyName, Value: B.Value, Unit: A.Unit},
		CorrectAnswer: answer,
		Explanation: fmt.Sprintf("%s: %s %s vs %s: %s %s. Source: %s.",
			A.GeographyName, FormatValue(A.Value), A.Unit,
			B.GeographyName, FormatValue(B.Value), A.Unit,
			A.SourceName),
	}
}

// FormatValue renders a value for display: thousands-separated integer part,
// fractional part trimmed to at most three digits.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	neg := v < 0
	if neg {
		v = -v
	}
	// Match display rounding to 3 fraction digits before splitting
	s := strconv.FormatFloat(v, 'f', 3, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
