package exam

import (
	"time"

	"github.com/exam-portal/exam-portal/internal/grading"
)

// Question is the authoritative projection: it carries the correct option
// index and must never be serialized into a response. Handlers only ever see
// PublicQuestion.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Test is the authoritative test entity. Duration is advisory metadata in
// minutes; nothing enforces it server-side.
type Test struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Duration  int        `json:"duration"`
	Questions []Question `json:"questions"`
}

// TestSummary is the public listing projection: counts only, no prompts,
// options, or keys.
type TestSummary struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Duration      int    `json:"duration"`
	QuestionCount int    `json:"questionCount"`
}

// PublicQuestion is a question with the answer key stripped.
type PublicQuestion struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// PublicTest is the redacted projection served to test takers.
type PublicTest struct {
	ID        int              `json:"id"`
	Title     string           `json:"title"`
	Type      string           `json:"type"`
	Duration  int              `json:"duration"`
	Questions []PublicQuestion `json:"questions"`
}

// Result is one immutable completed submission, owned by the ledger.
type Result struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	TestID      int               `json:"testId"`
	TestTitle   string            `json:"testTitle"`
	Score       int               `json:"score"`
	Total       int               `json:"totalQuestions"`
	Percentage  int               `json:"percentage"`
	Details     []grading.Outcome `json:"detailedResults"`
	CompletedAt time.Time         `json:"completedAt"`
}

// ResultSummary is the history-listing projection without the per-question
// breakdown.
type ResultSummary struct {
	ID          string    `json:"id"`
	TestTitle   string    `json:"testTitle"`
	Score       int       `json:"score"`
	Total       int       `json:"totalQuestions"`
	Percentage  int       `json:"percentage"`
	CompletedAt time.Time `json:"completedAt"`
}

// Summarize drops the detailed breakdown for history listings.
func (r Result) Summarize() ResultSummary {
	return ResultSummary{
		ID:          r.ID,
		TestTitle:   r.TestTitle,
		Score:       r.Score,
		Total:       r.Total,
		Percentage:  r.Percentage,
		CompletedAt: r.CompletedAt,
	}
}

// Summary builds the redacted listing view.
func (t Test) Summary() TestSummary {
	return TestSummary{
		ID:            t.ID,
		Title:         t.Title,
		Type:          t.Type,
		Duration:      t.Duration,
		QuestionCount: len(t.Questions),
	}
}

// Public builds the redacted full view with answer keys stripped.
func (t Test) Public() PublicTest {
	qs := make([]PublicQuestion, 0, len(t.Questions))
	for _, q := range t.Questions {
		qs = append(qs, PublicQuestion{ID: q.ID, Prompt: q.Prompt, Options: q.Options})
	}
	return PublicTest{
		ID:        t.ID,
		Title:     t.Title,
		Type:      t.Type,
		Duration:  t.Duration,
		Questions: qs,
	}
}
