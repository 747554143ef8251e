package grading

import "testing"

func sampleQuestions() []Q {
	return []Q{
		{ID: 1, Prompt: "one", Options: []string{"a", "b"}, Correct: 0},
		{ID: 2, Prompt: "two", Options: []string{"a", "b", "c"}, Correct: 2},
		{ID: 3, Prompt: "three", Options: []string{"a", "b"}, Correct: 1},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	sum := Score(sampleQuestions(), map[string]any{
		"1": float64(0),
		"2": float64(2),
		"3": float64(1),
	})
	if sum.Score != 3 || sum.Total != 3 || sum.Percentage != 100 {
		t.Fatalf("got score=%d total=%d pct=%d", sum.Score, sum.Total, sum.Percentage)
	}
	for i, d := range sum.Details {
		if !d.IsCorrect {
			t.Fatalf("detail %d not correct: %+v", i, d)
		}
	}
}

func TestScoreMissingAnswerCountsIncorrect(t *testing.T) {
	sum := Score(sampleQuestions(), map[string]any{"1": float64(0)})
	if sum.Score != 1 {
		t.Fatalf("expected score 1, got %d", sum.Score)
	}
	if sum.Total != 3 {
		t.Fatalf("expected total 3, got %d", sum.Total)
	}
	// Unanswered questions carry no userAnswer value.
	if sum.Details[1].Answer != nil || sum.Details[1].IsCorrect {
		t.Fatalf("expected unanswered incorrect detail, got %+v", sum.Details[1])
	}
}

func TestScoreOutOfRangeAndWrongType(t *testing.T) {
	sum := Score(sampleQuestions(), map[string]any{
		"1": float64(99), // out of range
		"2": "2",         // wrong type
		"3": float64(-1), // negative
	})
	if sum.Score != 0 {
		t.Fatalf("expected score 0, got %d", sum.Score)
	}
	// values are echoed back as submitted
	if sum.Details[0].Answer != float64(99) {
		t.Fatalf("expected echoed answer 99, got %v", sum.Details[0].Answer)
	}
	if sum.Details[1].Answer != "2" {
		t.Fatalf("expected echoed answer %q, got %v", "2", sum.Details[1].Answer)
	}
}

func TestScorePreservesQuestionOrder(t *testing.T) {
	sum := Score(sampleQuestions(), map[string]any{"3": float64(1), "1": float64(0)})
	want := []int{1, 2, 3}
	for i, d := range sum.Details {
		if d.QuestionID != want[i] {
			t.Fatalf("detail %d: expected question %d, got %d", i, want[i], d.QuestionID)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	answers := map[string]any{"1": float64(0), "2": float64(1)}
	a := Score(sampleQuestions(), answers)
	b := Score(sampleQuestions(), answers)
	if a.Score != b.Score || a.Percentage != b.Percentage || len(a.Details) != len(b.Details) {
		t.Fatalf("scoring not deterministic: %+v vs %+v", a, b)
	}
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{3, 5, 60},
		{1, 3, 33},
		{1, 8, 13}, // 12.5 rounds up
		{2, 3, 67},
		{0, 5, 0},
		{5, 5, 100},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Percentage(c.score, c.total); got != c.want {
			t.Errorf("Percentage(%d,%d) = %d, want %d", c.score, c.total, got, c.want)
		}
	}
}
