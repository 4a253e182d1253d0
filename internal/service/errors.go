package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Taxonomia de errores del core. Los handlers los mapean a HTTP con
// errors.Is; nunca se sustituyen por datos inventados ante fallas.
var (
	// ErrValidation: input malformado o fuera de rango, corregible por el caller.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: carrera, pregunta o perfil inexistente.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable: la dependencia de persistencia fallo; el caller
	// debe reintentar. Distinto de "no hay datos".
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrIncompleteProfile: el perfil no cumple el invariante de completitud.
	ErrIncompleteProfile = errors.New("incomplete profile")
	// ErrIncompleteSubmission: falta responder alguna pregunta obligatoria.
	ErrIncompleteSubmission = errors.New("incomplete submission")
	// ErrTooManySelections: la comparacion admite hasta 4 carreras.
	ErrTooManySelections = errors.New("too many selections")
)

// IncompleteSubmissionError nombra la pregunta sin responder.
type IncompleteSubmissionError struct {
	QuestionID string
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("incomplete submission: missing answer for question %q", e.QuestionID)
}

func (e *IncompleteSubmissionError) Unwrap() error {
	return ErrIncompleteSubmission
}

// storeErr traduce fallas de repositorio a ErrStoreUnavailable,
// preservando pgx.ErrNoRows como señal de ausencia.
func storeErr(err error) error {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
