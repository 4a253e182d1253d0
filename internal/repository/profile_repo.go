package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerscope/internal/domain"
)

// ProfileRepository define el contrato de persistencia para perfiles.
// Upsert garantiza consistencia read-after-write: un Get posterior
// observa la escritura.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
// Las secciones del perfil se guardan como JSONB.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

func (r *PgProfileRepository) Upsert(ctx context.Context, profile domain.Profile) error {
	var (
		education  []byte
		behavioral []byte
		err        error
	)
	if profile.Education != nil {
		if education, err = json.Marshal(profile.Education); err != nil {
			return err
		}
	}
	if profile.Behavioral != nil {
		if behavioral, err = json.Marshal(profile.Behavioral); err != nil {
			return err
		}
	}
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO profiles (id, user_id, education, skills, interests, behavioral, step, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			behavioral = EXCLUDED.behavioral,
			step = EXCLUDED.step,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		education,
		skills,
		profile.Interests,
		behavioral,
		string(profile.Step),
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	const query = `
		SELECT id, user_id, education, skills, interests, behavioral, step, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var (
		profile    domain.Profile
		education  []byte
		skills     []byte
		behavioral []byte
		step       string
	)
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&education,
		&skills,
		&profile.Interests,
		&behavioral,
		&step,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return domain.Profile{}, err
	}

	profile.Step = domain.OnboardingStep(step)
	if len(education) > 0 {
		profile.Education = &domain.Education{}
		if err := json.Unmarshal(education, profile.Education); err != nil {
			return domain.Profile{}, err
		}
	}
	if len(behavioral) > 0 {
		profile.Behavioral = &domain.Behavioral{}
		if err := json.Unmarshal(behavioral, profile.Behavioral); err != nil {
			return domain.Profile{}, err
		}
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &profile.Skills); err != nil {
			return domain.Profile{}, err
		}
	}
	return profile, nil
}

func (r *PgProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

// MemoryProfileRepository guarda perfiles en memoria. Se usa en modo demo.
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	byUserID map[string]domain.Profile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{byUserID: make(map[string]domain.Profile)}
}

func (r *MemoryProfileRepository) Upsert(_ context.Context, profile domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *MemoryProfileRepository) GetByUserID(_ context.Context, userID string) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.byUserID[userID]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

func (r *MemoryProfileRepository) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUserID, userID)
	return nil
}
