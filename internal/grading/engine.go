package grading

import (
	"math"
	"strconv"
)

// Q is a minimal view of a question needed for scoring.
// The catalog copies its authoritative questions into this shape so the
// engine never depends on the exam package.
type Q struct {
	ID      int
	Prompt  string
	Options []string
	Correct int
}

// Outcome is the scored verdict for a single question. Field names follow
// the API response contract.
type Outcome struct {
	QuestionID int      `json:"questionId"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Correct    int      `json:"correctAnswer"`
	Answer     any      `json:"userAnswer,omitempty"`
	IsCorrect  bool     `json:"isCorrect"`
}

// Summary aggregates a full submission.
type Summary struct {
	Score      int       `json:"score"`
	Total      int       `json:"totalQuestions"`
	Percentage int       `json:"percentage"`
	Details    []Outcome `json:"detailedResults"`
}

// Score grades a submission against the authoritative questions. It is a pure
// function: outcomes come back in question order, a missing answer counts as
// incorrect, and submitted values are compared as-is, so out-of-range indexes
// or non-numeric values score zero rather than failing.
//
// Answers are keyed by the question id's decimal string form, matching the
// JSON request body.
func Score(questions []Q, answers map[string]any) Summary {
	sum := Summary{
		Total:   len(questions),
		Details: make([]Outcome, 0, len(questions)),
	}
	for _, q := range questions {
		raw, answered := answers[strconv.Itoa(q.ID)]
		correct := answered && matchesIndex(raw, q.Correct)
		if correct {
			sum.Score++
		}
		out := Outcome{
			QuestionID: q.ID,
			Question:   q.Prompt,
			Options:    q.Options,
			Correct:    q.Correct,
			IsCorrect:  correct,
		}
		if answered {
			out.Answer = raw
		}
		sum.Details = append(sum.Details, out)
	}
	sum.Percentage = Percentage(sum.Score, sum.Total)
	return sum
}

// Percentage rounds half away from zero, the same rule as JavaScript's
// Math.round for non-negative input (1/8 -> 13).
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// matchesIndex reports whether a raw JSON answer value equals the correct
// option index. encoding/json decodes untyped numbers as float64.
func matchesIndex(raw any, correct int) bool {
	switch v := raw.(type) {
	case float64:
		return v == float64(correct)
	case int:
		return v == correct
	default:
		return false
	}
}
