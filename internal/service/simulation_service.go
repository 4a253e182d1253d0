package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/repository"
)

// SimulationService genera cuestionarios "un dia en la vida" por
// carrera y convierte las respuestas en un reporte acotado. Las
// opciones de cada choice van ordenadas de mejor a peor fit, asi el
// indice de la respuesta determina su puntaje.
type SimulationService struct {
	logger  *zap.Logger
	careers repository.CareerRepository
	records repository.SimulationRepository
}

func NewSimulationService(logger *zap.Logger, careers repository.CareerRepository, records repository.SimulationRepository) *SimulationService {
	return &SimulationService{
		logger:  logger,
		careers: careers,
		records: records,
	}
}

// IDs estables de las preguntas; el frontend indexa las respuestas por id.
const (
	questionConfidence  = "confidence"
	questionSkills      = "skills"
	questionWorkload    = "workload"
	questionPaceFit     = "pace_fit"
	questionRiskComfort = "risk_comfort"
)

const (
	sliderMin = 0
	sliderMax = 10
)

// Questions arma el cuestionario de una carrera a partir de sus
// atributos estaticos.
func (s *SimulationService) Questions(ctx context.Context, jobID int) ([]domain.Question, error) {
	career, err := s.careers.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: career %d", ErrNotFound, jobID)
		}
		return nil, storeErr(err)
	}
	return questionsFor(career), nil
}

func questionsFor(career domain.Career) []domain.Question {
	return []domain.Question{
		{
			ID:   questionConfidence,
			Text: fmt.Sprintf("How confident are you that you would thrive as a %s?", career.Title),
			Type: domain.QuestionSlider,
			Min:  sliderMin,
			Max:  sliderMax,
		},
		{
			ID:   questionSkills,
			Text: fmt.Sprintf("Rate your current ability across the core skills: %s.", strings.Join(career.Skills, ", ")),
			Type: domain.QuestionSlider,
			Min:  sliderMin,
			Max:  sliderMax,
		},
		{
			ID:   questionWorkload,
			Text: "A deadline-heavy week lands on your desk. How do you handle the workload?",
			Type: domain.QuestionChoice,
			Options: []string{
				"I handle heavy workloads well",
				"I manage with some effort",
				"I struggle under sustained pressure",
			},
		},
		{
			ID:   questionPaceFit,
			Text: fmt.Sprintf("A typical week here moves at a %s rhythm. How does that sit with you?", career.Pace),
			Type: domain.QuestionChoice,
			Options: []string{
				"That rhythm suits me",
				"I could adapt to it",
				"That rhythm would wear me down",
			},
		},
		{
			ID:   questionRiskComfort,
			Text: fmt.Sprintf("This path carries %s career risk. How comfortable are you with that?", career.RiskLevel),
			Type: domain.QuestionChoice,
			Options: []string{
				"Comfortable, I can live with uncertainty",
				"Somewhat uneasy but willing",
				"Very uncomfortable",
			},
		},
	}
}

// Submit valida las respuestas contra el cuestionario de la carrera y
// devuelve el reporte. Con userID presente ademas persiste el registro
// en el historial.
func (s *SimulationService) Submit(ctx context.Context, userID string, jobID int, answers map[string]any) (domain.SimulationResult, error) {
	career, err := s.careers.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SimulationResult{}, fmt.Errorf("%w: career %d", ErrNotFound, jobID)
		}
		return domain.SimulationResult{}, storeErr(err)
	}

	questions := questionsFor(career)
	scores := make(map[string]float64, len(questions))
	for _, question := range questions {
		answer, ok := answers[question.ID]
		if !ok || answer == nil {
			return domain.SimulationResult{}, &IncompleteSubmissionError{QuestionID: question.ID}
		}
		score, err := scoreAnswer(question, answer)
		if err != nil {
			return domain.SimulationResult{}, err
		}
		scores[question.ID] = score
	}

	result := computeSimulation(career, scores)

	if userID != "" && s.records != nil {
		record := domain.SimulationRecord{
			ID:        uuid.NewString(),
			UserID:    userID,
			JobID:     career.ID,
			JobTitle:  career.Title,
			Result:    result,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.records.Create(ctx, record); err != nil {
			return domain.SimulationResult{}, storeErr(err)
		}
	}

	s.logger.Info("simulation completed",
		zap.Int("job_id", career.ID),
		zap.Int("success_probability", result.SuccessProbability),
	)
	return result, nil
}

// History lista las simulaciones previas del usuario, mas recientes
// primero.
func (s *SimulationService) History(ctx context.Context, userID string) ([]domain.SimulationRecord, error) {
	if s.records == nil {
		return []domain.SimulationRecord{}, nil
	}
	records, err := s.records.ListByUserID(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	if records == nil {
		records = []domain.SimulationRecord{}
	}
	return records, nil
}

// scoreAnswer normaliza cualquier respuesta valida a [0,100].
func scoreAnswer(question domain.Question, answer any) (float64, error) {
	switch question.Type {
	case domain.QuestionSlider:
		value, ok := numericAnswer(answer)
		if !ok {
			return 0, fmt.Errorf("%w: question %q expects a number", ErrValidation, question.ID)
		}
		if value < float64(question.Min) || value > float64(question.Max) {
			return 0, fmt.Errorf("%w: question %q out of range [%d,%d]", ErrValidation, question.ID, question.Min, question.Max)
		}
		return value / float64(question.Max) * 100, nil
	case domain.QuestionChoice:
		choice, ok := answer.(string)
		if !ok {
			return 0, fmt.Errorf("%w: question %q expects an option", ErrValidation, question.ID)
		}
		for i, option := range question.Options {
			if option == choice {
				// Opciones ordenadas de mejor a peor: 100, 60, 20.
				return 100 - float64(i)*40, nil
			}
		}
		return 0, fmt.Errorf("%w: question %q has no option %q", ErrValidation, question.ID, choice)
	default:
		return 0, fmt.Errorf("%w: question %q has unknown type %q", ErrValidation, question.ID, question.Type)
	}
}

func numericAnswer(answer any) (float64, bool) {
	switch v := answer.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// computeSimulation combina los puntajes normalizados con los
// atributos estaticos de la carrera. Todos los numericos quedan en
// [0,100] y cada componente es monotono en su respuesta.
func computeSimulation(career domain.Career, scores map[string]float64) domain.SimulationResult {
	confidence := scores[questionConfidence]
	skillLevel := scores[questionSkills]
	fit := (scores[questionWorkload] + scores[questionPaceFit] + scores[questionRiskComfort]) / 3

	success := 0.35*confidence + 0.30*skillLevel + 0.25*fit + float64(career.GrowthScore)
	return domain.SimulationResult{
		SuccessProbability: clampPercent(success),
		StressLevel:        stressLabel(career, scores),
		GrowthSpeed:        growthLabel(career.GrowthScore),
		WorkSatisfaction:   clampPercent(fit),
		SkillGap:           clampPercent(100 - skillLevel),
	}
}

// stressLabel parte del riesgo estructural de la carrera y lo agrava
// cuando el usuario reporta friccion con la carga o el ritmo.
func stressLabel(career domain.Career, scores map[string]float64) string {
	rank := riskRankOrDefault(career.RiskLevel)
	if scores[questionWorkload] <= 20 {
		rank++
	}
	if scores[questionPaceFit] <= 20 {
		rank++
	}
	switch {
	case rank <= 2:
		return "Low"
	case rank == 3:
		return "Moderate"
	default:
		return "High"
	}
}

func growthLabel(growthScore int) string {
	switch {
	case growthScore >= 9:
		return "Very Fast"
	case growthScore >= 7:
		return "Fast"
	case growthScore >= 5:
		return "Steady"
	default:
		return "Slow"
	}
}

func clampPercent(value float64) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return int(math.Round(value))
}
