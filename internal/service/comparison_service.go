package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/repository"
)

// ComparisonService arma la tabla comparativa de hasta 4 carreras y
// deriva insights. Un id desconocido produce una fila placeholder en
// vez de tumbar la solicitud completa; una falla del store si la tumba.
type ComparisonService struct {
	logger  *zap.Logger
	careers repository.CareerRepository
	matches *MatchService
}

func NewComparisonService(logger *zap.Logger, careers repository.CareerRepository, matches *MatchService) *ComparisonService {
	return &ComparisonService{
		logger:  logger,
		careers: careers,
		matches: matches,
	}
}

// maxComparisonSize acota la seleccion lado a lado.
const maxComparisonSize = 4

// Compare devuelve filas en el orden pedido mas insights derivados.
// Con profile completo incluye el match score por fila; sin perfil
// los scores quedan en 0. Una lista vacia devuelve un set vacio.
func (s *ComparisonService) Compare(ctx context.Context, profile *domain.Profile, jobIDs []int) (domain.Comparison, error) {
	unique := dedupeIDs(jobIDs)
	if len(unique) > maxComparisonSize {
		return domain.Comparison{}, fmt.Errorf("%w: got %d ids, max %d", ErrTooManySelections, len(unique), maxComparisonSize)
	}

	comparison := domain.Comparison{
		Rows:     make([]domain.ComparisonRow, 0, len(unique)),
		Insights: []domain.Insight{},
	}
	if len(unique) == 0 {
		return comparison, nil
	}

	scoreable := profile != nil && profile.IsComplete()
	known := make([]bool, 0, len(unique))
	for _, id := range unique {
		career, err := s.careers.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Tolerancia a fallas parciales: placeholder por fila.
				comparison.Rows = append(comparison.Rows, placeholderRow(id))
				known = append(known, false)
				continue
			}
			return domain.Comparison{}, storeErr(err)
		}

		row := careerRow(career)
		if scoreable {
			row.MatchScore = s.matches.scoreCareer(*profile, career).MatchScore
		}
		comparison.Rows = append(comparison.Rows, row)
		known = append(known, true)
	}

	comparison.Insights = deriveInsights(comparison.Rows, known)
	return comparison, nil
}

func careerRow(career domain.Career) domain.ComparisonRow {
	return domain.ComparisonRow{
		ID:              career.ID,
		Title:           career.Title,
		Salary:          career.Salary,
		WorkTime:        career.WorkTime,
		WorkType:        career.WorkType,
		RiskLevel:       career.RiskLevel,
		WorkLifeBalance: career.WorkLifeBalance,
		GrowthScore:     career.GrowthScore,
		Progression:     career.Progression,
		Benefits:        career.Benefits,
		WhyBest:         career.WhyBest,
	}
}

func placeholderRow(id int) domain.ComparisonRow {
	return domain.ComparisonRow{
		ID:      id,
		Title:   "Unknown Role",
		WhyBest: "Data Unavailable",
	}
}

// deriveInsights calcula los resumenes del set: salario mas alto
// (empate: menor id), primer work-life balance Excellent/Good y primer
// riesgo Low/Stable, siempre en el orden de entrada.
func deriveInsights(rows []domain.ComparisonRow, known []bool) []domain.Insight {
	insights := []domain.Insight{}
	if len(rows) == 0 {
		return insights
	}

	best := -1
	for i, row := range rows {
		if !known[i] {
			continue
		}
		if best == -1 || row.Salary > rows[best].Salary ||
			(row.Salary == rows[best].Salary && row.ID < rows[best].ID) {
			best = i
		}
	}
	if best >= 0 {
		insights = append(insights, domain.Insight{
			Type: domain.InsightSuccess,
			Text: fmt.Sprintf("Highest Salary: %s ($%d)", rows[best].Title, rows[best].Salary),
		})
	}

	for i, row := range rows {
		if !known[i] {
			continue
		}
		if row.WorkLifeBalance == "Excellent" || row.WorkLifeBalance == "Good" {
			insights = append(insights, domain.Insight{
				Type: domain.InsightInfo,
				Text: fmt.Sprintf("Best Work-Life Balance: %s", row.Title),
			})
			break
		}
	}

	for i, row := range rows {
		if !known[i] {
			continue
		}
		if row.RiskLevel == "Low" || row.RiskLevel == "Stable" {
			insights = append(insights, domain.Insight{
				Type: domain.InsightWarning,
				Text: fmt.Sprintf("Lowest Risk: %s", row.Title),
			})
			break
		}
	}
	return insights
}

func dedupeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
