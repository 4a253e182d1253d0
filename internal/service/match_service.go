package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/repository"
)

// MatchService puntua perfiles contra el catalogo. El scoring es una
// funcion pura del par (perfil, carrera); los resultados se cachean
// por (fingerprint del perfil, career id), lo que invalida de forma
// exacta ante cualquier mutacion del perfil.
type MatchService struct {
	logger  *zap.Logger
	careers repository.CareerRepository
	cache   MatchCache
}

func NewMatchService(logger *zap.Logger, careers repository.CareerRepository, cache MatchCache) *MatchService {
	if cache == nil {
		cache = NewMemoryMatchCache(0)
	}
	return &MatchService{
		logger:  logger,
		careers: careers,
		cache:   cache,
	}
}

// Pesos del score, heredados del motor de matching original.
const (
	skillOverlapWeight  = 40.0
	skillDepthWeight    = 10.0
	domainInterestBonus = 20.0
	paceExactBonus      = 10.0
	paceBalancedBonus   = 5.0
	riskAlignedBonus    = 10.0
	riskMismatchPenalty = 5.0
	educationMetBonus   = 20.0
	educationGapPenalty = 10.0
)

// Score calcula el match de un perfil completo contra una carrera.
// Determinista: mismos inputs, mismo Match.
func (s *MatchService) Score(ctx context.Context, profile domain.Profile, careerID int) (domain.Match, error) {
	if !profile.IsComplete() {
		return domain.Match{}, ErrIncompleteProfile
	}
	career, err := s.careers.GetByID(ctx, careerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Match{}, fmt.Errorf("%w: career %d", ErrNotFound, careerID)
		}
		return domain.Match{}, storeErr(err)
	}
	return s.scoreCareer(profile, career), nil
}

// Rank puntua el perfil contra todo el catalogo, ordenado por score
// descendente (empates por id ascendente).
func (s *MatchService) Rank(ctx context.Context, profile domain.Profile) ([]domain.Match, error) {
	if !profile.IsComplete() {
		return nil, ErrIncompleteProfile
	}
	careers, err := s.careers.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	matches := make([]domain.Match, 0, len(careers))
	for _, career := range careers {
		matches = append(matches, s.scoreCareer(profile, career))
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Job.ID < matches[j].Job.ID
	})
	return matches, nil
}

func (s *MatchService) scoreCareer(profile domain.Profile, career domain.Career) domain.Match {
	fingerprint := profile.Fingerprint()
	if cached, ok := s.cache.Get(fingerprint, career.ID); ok {
		return cached
	}
	match := computeMatch(profile, career)
	s.cache.Set(fingerprint, career.ID, match)
	return match
}

// computeMatch combina solapamiento de skills (ponderado por
// proficiency e interes), afinidad de dominio, fit de ritmo, cercania
// de riesgo y el piso educativo en un valor acotado a [0,100].
func computeMatch(profile domain.Profile, career domain.Career) domain.Match {
	userSkills := make(map[string]domain.Skill, len(profile.Skills))
	userDomains := make(map[string]struct{})
	for _, sk := range profile.Skills {
		userSkills[strings.ToLower(sk.Name)] = sk
		if sk.Domain != "" {
			userDomains[sk.Domain] = struct{}{}
		}
	}
	for _, interest := range profile.Interests {
		userDomains[interest] = struct{}{}
	}

	score := 0.0
	var missing []string

	if len(career.Skills) > 0 {
		overlap := 0
		depth := 0.0
		for _, name := range career.Skills {
			sk, ok := userSkills[strings.ToLower(name)]
			if !ok {
				missing = append(missing, name)
				continue
			}
			overlap++
			depth += 1 + float64(sk.Proficiency)*0.2 + float64(sk.Interest)/500.0
		}
		score += float64(overlap) / float64(len(career.Skills)) * skillOverlapWeight
		score += depth / (float64(len(career.Skills)) * 2) * skillDepthWeight
	}

	if _, ok := userDomains[career.Field]; ok {
		score += domainInterestBonus
	}

	userPace := profile.Behavioral.Pace
	switch {
	case career.Pace == userPace:
		score += paceExactBonus
	case userPace == "Balanced" || career.Pace == "Balanced":
		score += paceBalancedBonus
	}

	careerRisk := riskRankOrDefault(career.RiskLevel)
	userRisk := riskRankOrDefault(profile.Behavioral.Risk)
	if abs(careerRisk-userRisk) <= 1 {
		score += riskAlignedBonus
	} else {
		score -= riskMismatchPenalty
	}

	careerEdu := domain.EducationRank[career.MinEducation]
	if careerEdu == 0 {
		careerEdu = 1
	}
	userEdu := 0
	if profile.Education != nil {
		userEdu = domain.EducationRank[profile.Education.Level]
	}
	if userEdu >= careerEdu {
		score += educationMetBonus
	} else {
		score -= educationGapPenalty
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return domain.Match{
		Job:           career,
		MatchScore:    score,
		MissingSkills: missing,
	}
}

func riskRankOrDefault(level string) int {
	if rank, ok := domain.RiskRank[level]; ok {
		return rank
	}
	return 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
