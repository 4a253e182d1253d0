package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// OnboardingStep representa el estado del flujo de onboarding.
type OnboardingStep string

const (
	StepEducation   OnboardingStep = "education"
	StepSkills      OnboardingStep = "skills"
	StepPreferences OnboardingStep = "preferences"
	StepComplete    OnboardingStep = "complete"
)

type Education struct {
	Level       string `json:"level"`
	Status      string `json:"status,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Tier        string `json:"tier,omitempty"`
	Year        string `json:"year,omitempty"`
}

type Skill struct {
	Domain      string `json:"domain"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"` // 1-5
	Interest    int    `json:"interest"`    // 0-100
}

type Behavioral struct {
	Pace       string `json:"pace"`
	Risk       string `json:"risk"`
	Commitment int    `json:"commitment"` // horas semanales, 5-60
	Preference string `json:"preference,omitempty"`
	WorkStyle  string `json:"work_style,omitempty"`
}

// Profile agrupa educacion, skills y preferencias de un usuario.
type Profile struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Education  *Education     `json:"education,omitempty"`
	Skills     []Skill        `json:"skills"`
	Interests  []string       `json:"interests,omitempty"`
	Behavioral *Behavioral    `json:"behavioral,omitempty"`
	Step       OnboardingStep `json:"step"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// IsComplete indica si el perfil puede alimentar el scoring:
// educacion presente, al menos un skill y preferencias presentes.
func (p Profile) IsComplete() bool {
	return p.Education != nil && len(p.Skills) > 0 && p.Behavioral != nil
}

// Fingerprint devuelve un hash estable del contenido del perfil.
// Dos perfiles con el mismo contenido comparten fingerprint, lo que
// permite cachear matches con invalidacion exacta.
func (p Profile) Fingerprint() string {
	snapshot := struct {
		Education  *Education  `json:"education,omitempty"`
		Skills     []Skill     `json:"skills"`
		Interests  []string    `json:"interests,omitempty"`
		Behavioral *Behavioral `json:"behavioral,omitempty"`
	}{p.Education, p.Skills, p.Interests, p.Behavioral}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
