package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"careerscope/internal/domain"
)

func newComparisonService() *ComparisonService {
	careers := seededCareerRepo()
	matches := NewMatchService(zap.NewNop(), careers, nil)
	return NewComparisonService(zap.NewNop(), careers, matches)
}

func TestComparisonService_EmptySelection(t *testing.T) {
	svc := newComparisonService()

	comparison, err := svc.Compare(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comparison.Rows) != 0 || len(comparison.Insights) != 0 {
		t.Fatalf("expected empty comparison, got %d rows, %d insights", len(comparison.Rows), len(comparison.Insights))
	}
}

func TestComparisonService_TooManySelections(t *testing.T) {
	svc := newComparisonService()

	_, err := svc.Compare(context.Background(), nil, []int{1, 2, 3, 4, 5})
	if !errors.Is(err, ErrTooManySelections) {
		t.Fatalf("expected ErrTooManySelections, got %v", err)
	}
}

func TestComparisonService_DuplicatesCollapse(t *testing.T) {
	svc := newComparisonService()

	comparison, err := svc.Compare(context.Background(), nil, []int{1, 1, 2, 2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comparison.Rows) != 2 {
		t.Fatalf("expected 2 rows after dedupe, got %d", len(comparison.Rows))
	}
	if comparison.Rows[0].ID != 1 || comparison.Rows[1].ID != 2 {
		t.Fatalf("expected input order preserved, got %d, %d", comparison.Rows[0].ID, comparison.Rows[1].ID)
	}
}

func TestComparisonService_UnknownIDPlaceholder(t *testing.T) {
	svc := newComparisonService()

	comparison, err := svc.Compare(context.Background(), nil, []int{1, 999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comparison.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(comparison.Rows))
	}
	placeholder := comparison.Rows[1]
	if placeholder.ID != 999 || placeholder.Title != "Unknown Role" || placeholder.WhyBest != "Data Unavailable" {
		t.Fatalf("unexpected placeholder row: %+v", placeholder)
	}
	for _, insight := range comparison.Insights {
		if strings.Contains(insight.Text, "Unknown Role") {
			t.Fatalf("placeholder leaked into insights: %q", insight.Text)
		}
	}
}

func TestComparisonService_Insights(t *testing.T) {
	svc := newComparisonService()

	comparison, err := svc.Compare(context.Background(), nil, []int{1, 2, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comparison.Insights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(comparison.Insights))
	}
	if !strings.Contains(comparison.Insights[0].Text, "Data Scientist") {
		t.Fatalf("expected highest salary insight for Data Scientist, got %q", comparison.Insights[0].Text)
	}
	if comparison.Insights[0].Type != domain.InsightSuccess {
		t.Fatalf("unexpected insight type: %q", comparison.Insights[0].Type)
	}
	// Primer WLB Good/Excellent y primer riesgo Low/Stable en orden de
	// entrada: ambos son Frontend Developer (id 2).
	if !strings.Contains(comparison.Insights[1].Text, "Frontend Developer") {
		t.Fatalf("unexpected work-life balance insight: %q", comparison.Insights[1].Text)
	}
	if !strings.Contains(comparison.Insights[2].Text, "Frontend Developer") {
		t.Fatalf("unexpected risk insight: %q", comparison.Insights[2].Text)
	}
}

func TestComparisonService_ScoresWithCompleteProfile(t *testing.T) {
	svc := newComparisonService()
	profile := completeProfile()

	comparison, err := svc.Compare(context.Background(), &profile, []int{1, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comparison.Rows[0].MatchScore <= 0 {
		t.Fatalf("expected positive match score for Data Scientist, got %f", comparison.Rows[0].MatchScore)
	}
	if comparison.Rows[0].MatchScore <= comparison.Rows[1].MatchScore {
		t.Fatalf("expected tech profile to score Data Scientist above Investment Banker")
	}
}

func TestComparisonService_NoScoresWithoutProfile(t *testing.T) {
	svc := newComparisonService()

	comparison, err := svc.Compare(context.Background(), nil, []int{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range comparison.Rows {
		if row.MatchScore != 0 {
			t.Fatalf("expected zero scores without a profile, got %f for %q", row.MatchScore, row.Title)
		}
	}
}
