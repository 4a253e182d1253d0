package domain

// Match es el resultado derivado de puntuar un perfil contra una carrera.
// No es autoritativo: se recalcula ante cualquier cambio de perfil.
type Match struct {
	Job           Career   `json:"job"`
	MatchScore    float64  `json:"match_score"` // 0-100
	MissingSkills []string `json:"missing_skills"`
}
