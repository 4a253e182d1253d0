package domain

import "time"

const (
	QuestionSlider = "slider"
	QuestionChoice = "choice"
)

// Question es un paso del cuestionario situacional de una carrera.
// Los sliders acotan un rango numerico; los choice enumeran opciones.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Min     int      `json:"min,omitempty"`
	Max     int      `json:"max,omitempty"`
	Options []string `json:"options,omitempty"`
}

// SimulationResult es el reporte derivado de las respuestas y los
// atributos estaticos de la carrera. Todos los campos numericos estan
// acotados a [0,100].
type SimulationResult struct {
	SuccessProbability int    `json:"success_probability"`
	StressLevel        string `json:"stress_level"`
	GrowthSpeed        string `json:"growth_speed"`
	WorkSatisfaction   int    `json:"work_satisfaction"`
	SkillGap           int    `json:"skill_gap"`
}

// SimulationRecord persiste un resultado como historial del usuario.
type SimulationRecord struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	JobID     int              `json:"job_id"`
	JobTitle  string           `json:"job_title,omitempty"`
	Result    SimulationResult `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
}
