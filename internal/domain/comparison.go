package domain

// ComparisonRow es la proyeccion de una carrera para la tabla comparativa.
// Para IDs desconocidos se devuelve una fila placeholder en lugar de
// fallar la solicitud completa.
type ComparisonRow struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	MatchScore      float64  `json:"match_score"`
	Salary          int      `json:"salary"`
	WorkTime        string   `json:"work_time,omitempty"`
	WorkType        string   `json:"work_type,omitempty"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	WorkLifeBalance string   `json:"work_life_balance,omitempty"`
	GrowthScore     int      `json:"growth_score"`
	Progression     string   `json:"progression,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	WhyBest         string   `json:"why_best,omitempty"`
}

const (
	InsightSuccess = "success"
	InsightInfo    = "info"
	InsightWarning = "warning"
)

// Insight resume una lectura rapida sobre el set comparado.
type Insight struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Comparison agrupa filas e insights derivados, con alcance de request.
type Comparison struct {
	Rows     []ComparisonRow `json:"rows"`
	Insights []Insight       `json:"insights"`
}
