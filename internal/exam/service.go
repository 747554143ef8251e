package exam

import (
	"context"
	"time"

	"github.com/exam-portal/exam-portal/internal/grading"
)

// Service wires the catalog, the scoring engine, and the result ledger. It is
// the only code that reads the authoritative test projection.
type Service struct {
	catalog Catalog
	ledger  Ledger
	now     func() time.Time
}

func NewService(catalog Catalog, ledger Ledger) *Service {
	return &Service{catalog: catalog, ledger: ledger, now: time.Now}
}

// NewServiceWithClock is test-only for deterministic timestamps.
func NewServiceWithClock(catalog Catalog, ledger Ledger, now func() time.Time) *Service {
	return &Service{catalog: catalog, ledger: ledger, now: now}
}

func (s *Service) ListTests(ctx context.Context) ([]TestSummary, error) {
	return s.catalog.ListTests(ctx)
}

func (s *Service) GetTest(ctx context.Context, id int) (PublicTest, error) {
	return s.catalog.GetTest(ctx, id)
}

// Submit scores the answers against the authoritative test and appends the
// result to the ledger, attributed to userID. Answers hold raw decoded JSON
// values keyed by question id.
func (s *Service) Submit(ctx context.Context, userID string, testID int, answers map[string]any) (Result, error) {
	t, err := s.catalog.Authoritative(ctx, testID)
	if err != nil {
		return Result{}, err
	}

	qs := make([]grading.Q, 0, len(t.Questions))
	for _, q := range t.Questions {
		qs = append(qs, grading.Q{ID: q.ID, Prompt: q.Prompt, Options: q.Options, Correct: q.Correct})
	}
	sum := grading.Score(qs, answers)

	return s.ledger.Record(ctx, Result{
		UserID:      userID,
		TestID:      t.ID,
		TestTitle:   t.Title,
		Score:       sum.Score,
		Total:       sum.Total,
		Percentage:  sum.Percentage,
		Details:     sum.Details,
		CompletedAt: s.now().UTC(),
	})
}

// ResultsFor lists the caller's submission history in insertion order.
func (s *Service) ResultsFor(ctx context.Context, userID string) ([]ResultSummary, error) {
	return s.ledger.ListForUser(ctx, userID)
}
