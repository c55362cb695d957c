package model

// Answer identifies which option of a question is correct
type Answer string

const (
	AnswerA Answer = "A"
	AnswerB Answer = "B"
)

// Option is a snapshot of one side of a comparison
type Option struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Question is a generated trivia pair. Options are ordered by geography name
// ascending (A before B lexicographically), never by value; that ordering is
// what makes the ID a canonical dedup key regardless of random draw order.
type Question struct {
	ID            string `json:"id"` // "<metric_id>|<year-or-NA>|<geo-A>|<geo-B>"
	Category      string `json:"category"`
	Question      string `json:"question"`
	OptionA       Option `json:"optionA"`
	OptionB       Option `json:"optionB"`
	CorrectAnswer Answer `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// Consistent reports whether the answer key matches the embedded values.
// This is the hard contract the quiz consumer relies on: ties favor A.
func (q Question) Consistent() bool {
	if q.OptionA.Value >= q.OptionB.Value {
		return q.CorrectAnswer == AnswerA
	}
	return q.CorrectAnswer == AnswerB
}
