package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"careerscope/internal/domain"
	"careerscope/internal/repository"
)

// ProfileService coordina el intake del perfil por pasos y la maquina
// de estados del onboarding: education -> skills -> preferences -> complete.
type ProfileService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
}

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		logger:   logger,
		profiles: profiles,
	}
}

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInvalidTransition = errors.New("invalid onboarding transition")
)

// ProfileSnapshot es el payload completo que sincroniza el cliente.
type ProfileSnapshot struct {
	Education  *domain.Education  `json:"education"`
	Skills     []domain.Skill     `json:"skills"`
	Interests  []string           `json:"interests"`
	Behavioral *domain.Behavioral `json:"behavioral"`
}

func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, storeErr(err)
	}
	return profile, nil
}

// SaveEducation mezcla el paso de educacion: los campos no vacios del
// input pisan a los previos, el resto se conserva.
func (s *ProfileService) SaveEducation(ctx context.Context, userID string, input domain.Education) (domain.Profile, error) {
	if err := validateEducation(input); err != nil {
		return domain.Profile{}, err
	}
	profile, existed, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	merged := input
	if profile.Education != nil {
		merged = mergeEducation(*profile.Education, input)
	}
	profile.Education = &merged
	return s.persist(ctx, userID, existed, profile)
}

// SaveBehavioral mezcla el paso de preferencias de trabajo.
func (s *ProfileService) SaveBehavioral(ctx context.Context, userID string, input domain.Behavioral) (domain.Profile, error) {
	if err := validateBehavioral(input); err != nil {
		return domain.Profile{}, err
	}
	profile, existed, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	merged := input
	if profile.Behavioral != nil {
		merged = mergeBehavioral(*profile.Behavioral, input)
	}
	profile.Behavioral = &merged
	return s.persist(ctx, userID, existed, profile)
}

// SaveInterests reemplaza la lista de dominios de interes.
func (s *ProfileService) SaveInterests(ctx context.Context, userID string, interests []string) (domain.Profile, error) {
	cleaned := make([]string, 0, len(interests))
	for _, it := range interests {
		it = strings.TrimSpace(it)
		if it != "" {
			cleaned = append(cleaned, it)
		}
	}
	profile, existed, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.Interests = cleaned
	return s.persist(ctx, userID, existed, profile)
}

// AddSkill agrega o actualiza un skill. Los skills se acumulan con
// add/remove explicitos, nunca se pisan en bloque.
func (s *ProfileService) AddSkill(ctx context.Context, userID string, skill domain.Skill) (domain.Profile, error) {
	skill.Name = strings.TrimSpace(skill.Name)
	skill.Domain = strings.TrimSpace(skill.Domain)
	if err := validateSkill(skill); err != nil {
		return domain.Profile{}, err
	}
	profile, existed, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.Skills = upsertSkill(profile.Skills, skill)
	return s.persist(ctx, userID, existed, profile)
}

// RemoveSkill elimina un skill por nombre (case-insensitive).
func (s *ProfileService) RemoveSkill(ctx context.Context, userID, name string) (domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, fmt.Errorf("%w: skill name required", ErrValidation)
	}
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	kept := profile.Skills[:0:0]
	removed := false
	for _, sk := range profile.Skills {
		if strings.EqualFold(sk.Name, name) {
			removed = true
			continue
		}
		kept = append(kept, sk)
	}
	if !removed {
		return domain.Profile{}, fmt.Errorf("%w: skill %q", ErrNotFound, name)
	}
	profile.Skills = kept
	return s.persist(ctx, userID, true, profile)
}

// Advance avanza la maquina de estados ante un "continue" explicito.
// Cada paso exige su seccion presente antes de avanzar.
func (s *ProfileService) Advance(ctx context.Context, userID string) (domain.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	switch profile.Step {
	case domain.StepEducation, "":
		if profile.Education == nil {
			return domain.Profile{}, fmt.Errorf("%w: education step not saved", ErrIncompleteProfile)
		}
		profile.Step = domain.StepSkills
	case domain.StepSkills:
		if len(profile.Skills) == 0 {
			return domain.Profile{}, fmt.Errorf("%w: no skills recorded", ErrIncompleteProfile)
		}
		profile.Step = domain.StepPreferences
	case domain.StepPreferences:
		if profile.Behavioral == nil {
			return domain.Profile{}, fmt.Errorf("%w: preferences step not saved", ErrIncompleteProfile)
		}
		profile.Step = domain.StepComplete
	case domain.StepComplete:
		return domain.Profile{}, fmt.Errorf("%w: onboarding already complete", ErrInvalidTransition)
	default:
		return domain.Profile{}, fmt.Errorf("%w: unknown step %q", ErrInvalidTransition, profile.Step)
	}
	return s.persist(ctx, userID, true, profile)
}

// Back retrocede un paso. Desde el estado inicial no esta permitido.
func (s *ProfileService) Back(ctx context.Context, userID string) (domain.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	switch profile.Step {
	case domain.StepSkills:
		profile.Step = domain.StepEducation
	case domain.StepPreferences:
		profile.Step = domain.StepSkills
	case domain.StepComplete:
		profile.Step = domain.StepPreferences
	default:
		return domain.Profile{}, fmt.Errorf("%w: already at first step", ErrInvalidTransition)
	}
	return s.persist(ctx, userID, true, profile)
}

// SaveSnapshot sincroniza el perfil completo enviado por el cliente.
// Los skills se mezclan por nombre con los existentes: un snapshot
// parcial nunca descarta skills previos en silencio.
func (s *ProfileService) SaveSnapshot(ctx context.Context, userID string, snapshot ProfileSnapshot) (domain.Profile, error) {
	if snapshot.Education != nil {
		if err := validateEducation(*snapshot.Education); err != nil {
			return domain.Profile{}, err
		}
	}
	if snapshot.Behavioral != nil {
		if err := validateBehavioral(*snapshot.Behavioral); err != nil {
			return domain.Profile{}, err
		}
	}
	for _, sk := range snapshot.Skills {
		if err := validateSkill(sk); err != nil {
			return domain.Profile{}, err
		}
	}

	profile, existed, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	if snapshot.Education != nil {
		merged := *snapshot.Education
		if profile.Education != nil {
			merged = mergeEducation(*profile.Education, merged)
		}
		profile.Education = &merged
	}
	if snapshot.Behavioral != nil {
		merged := *snapshot.Behavioral
		if profile.Behavioral != nil {
			merged = mergeBehavioral(*profile.Behavioral, merged)
		}
		profile.Behavioral = &merged
	}
	for _, sk := range snapshot.Skills {
		profile.Skills = upsertSkill(profile.Skills, sk)
	}
	if snapshot.Interests != nil {
		profile.Interests = snapshot.Interests
	}
	if profile.IsComplete() {
		profile.Step = domain.StepComplete
	}
	return s.persist(ctx, userID, existed, profile)
}

// Clear elimina el perfil por completo (logout/reset).
func (s *ProfileService) Clear(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *ProfileService) loadOrInit(ctx context.Context, userID string) (domain.Profile, bool, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			now := time.Now().UTC()
			return domain.Profile{
				ID:        uuid.NewString(),
				UserID:    userID,
				Step:      domain.StepEducation,
				CreatedAt: now,
				UpdatedAt: now,
			}, false, nil
		}
		return domain.Profile{}, false, storeErr(err)
	}
	return profile, true, nil
}

// persist escribe el perfil salvo que el contenido no haya cambiado:
// repetir un save identico deja el perfil intacto.
func (s *ProfileService) persist(ctx context.Context, userID string, existed bool, next domain.Profile) (domain.Profile, error) {
	if existed {
		prev, err := s.profiles.GetByUserID(ctx, userID)
		if err == nil && prev.Fingerprint() == next.Fingerprint() && prev.Step == next.Step {
			return prev, nil
		}
	}
	next.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, next); err != nil {
		return domain.Profile{}, storeErr(err)
	}
	if s.logger != nil {
		s.logger.Info("profile saved",
			zap.String("user_id", userID),
			zap.String("step", string(next.Step)),
			zap.Int("skills", len(next.Skills)),
		)
	}
	return next, nil
}

func mergeEducation(prev, next domain.Education) domain.Education {
	if next.Level == "" {
		next.Level = prev.Level
	}
	if next.Status == "" {
		next.Status = prev.Status
	}
	if next.Field == "" {
		next.Field = prev.Field
	}
	if next.Institution == "" {
		next.Institution = prev.Institution
	}
	if next.Tier == "" {
		next.Tier = prev.Tier
	}
	if next.Year == "" {
		next.Year = prev.Year
	}
	return next
}

func mergeBehavioral(prev, next domain.Behavioral) domain.Behavioral {
	if next.Pace == "" {
		next.Pace = prev.Pace
	}
	if next.Risk == "" {
		next.Risk = prev.Risk
	}
	if next.Commitment == 0 {
		next.Commitment = prev.Commitment
	}
	if next.Preference == "" {
		next.Preference = prev.Preference
	}
	if next.WorkStyle == "" {
		next.WorkStyle = prev.WorkStyle
	}
	return next
}

func upsertSkill(skills []domain.Skill, skill domain.Skill) []domain.Skill {
	for i, sk := range skills {
		if strings.EqualFold(sk.Name, skill.Name) {
			skills[i] = skill
			return skills
		}
	}
	return append(skills, skill)
}

func validateEducation(e domain.Education) error {
	if e.Level != "" {
		if _, ok := domain.EducationRank[e.Level]; !ok {
			return fmt.Errorf("%w: unknown education level %q", ErrValidation, e.Level)
		}
	}
	return nil
}

func validateSkill(sk domain.Skill) error {
	if sk.Name == "" {
		return fmt.Errorf("%w: skill name required", ErrValidation)
	}
	if sk.Proficiency < 1 || sk.Proficiency > 5 {
		return fmt.Errorf("%w: proficiency must be between 1 and 5", ErrValidation)
	}
	if sk.Interest < 0 || sk.Interest > 100 {
		return fmt.Errorf("%w: interest must be between 0 and 100", ErrValidation)
	}
	return nil
}

func validateBehavioral(b domain.Behavioral) error {
	if b.Pace != "" {
		if _, ok := domain.PaceRank[b.Pace]; !ok {
			return fmt.Errorf("%w: unknown pace %q", ErrValidation, b.Pace)
		}
	}
	if b.Risk != "" {
		if _, ok := domain.RiskRank[b.Risk]; !ok {
			return fmt.Errorf("%w: unknown risk appetite %q", ErrValidation, b.Risk)
		}
	}
	if b.Commitment != 0 && (b.Commitment < 5 || b.Commitment > 60) {
		return fmt.Errorf("%w: commitment must be between 5 and 60 hours", ErrValidation)
	}
	return nil
}
