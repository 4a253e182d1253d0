package domain

// Niveles ordenados para comparar riesgo y educacion.
var (
	RiskRank = map[string]int{
		"Stable":    1,
		"Low":       2,
		"Moderate":  3,
		"High Risk": 4,
	}
	EducationRank = map[string]int{
		"Secondary":     1,
		"Diploma":       2,
		"Undergraduate": 3,
		"Postgraduate":  4,
		"Doctorate":     5,
	}
	PaceRank = map[string]int{
		"Slow & Steady": 1,
		"Balanced":      2,
		"Fast-paced":    3,
	}
)

// Career es una entrada inmutable del catalogo, sembrada al arrancar.
type Career struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Skills       []string `json:"skills"`
	MinEducation string   `json:"min_education"`
	Field        string   `json:"field"`
	Salary       int      `json:"salary"`
	RiskLevel    string   `json:"risk_level"`
	Pace         string   `json:"pace"`
	GrowthScore  int      `json:"growth_score"` // 0-10

	// Detalle para la vista de comparacion.
	WorkTime        string   `json:"work_time,omitempty"`
	WorkType        string   `json:"work_type,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	WorkLifeBalance string   `json:"work_life_balance,omitempty"`
	Progression     string   `json:"progression,omitempty"`
	WhyBest         string   `json:"why_best,omitempty"`
}

// referenceSalary acota la normalizacion del componente salarial.
const referenceSalary = 200000.0

// AttributeVector proyecta la carrera a un vector normalizado [0,1]
// (salario, riesgo, crecimiento, ritmo) para busqueda de vecinos.
func (c Career) AttributeVector() []float32 {
	salary := float32(c.Salary) / float32(referenceSalary)
	if salary > 1 {
		salary = 1
	}
	risk := float32(RiskRank[c.RiskLevel]) / 4
	growth := float32(c.GrowthScore) / 10
	pace := float32(PaceRank[c.Pace]) / 3
	return []float32{salary, risk, growth, pace}
}
