package repository

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"careerscope/internal/domain"
)

// CareerRepository define el acceso al catalogo de carreras.
// El catalogo es data de referencia de solo lectura.
type CareerRepository interface {
	List(ctx context.Context) ([]domain.Career, error)
	GetByID(ctx context.Context, id int) (domain.Career, error)
	Similar(ctx context.Context, id int, limit int) ([]domain.Career, error)
}

const careerColumns = `
	id, title, skills, min_education, field, salary, risk_level, pace, growth_score,
	work_time, work_type, benefits, work_life_balance, progression, why_best
`

// PgCareerRepository implementa CareerRepository usando pgxpool.
// La columna attributes (vector de 4 dimensiones) ordena la busqueda
// de carreras similares por distancia coseno.
type PgCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPgCareerRepository(pool *pgxpool.Pool) *PgCareerRepository {
	return &PgCareerRepository{pool: pool}
}

func (r *PgCareerRepository) List(ctx context.Context) ([]domain.Career, error) {
	const query = `SELECT ` + careerColumns + ` FROM careers ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCareers(rows)
}

func (r *PgCareerRepository) GetByID(ctx context.Context, id int) (domain.Career, error) {
	const query = `SELECT ` + careerColumns + ` FROM careers WHERE id = $1`
	career, err := scanCareer(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Career{}, err
	}
	return career, err
}

func (r *PgCareerRepository) Similar(ctx context.Context, id int, limit int) ([]domain.Career, error) {
	career, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const query = `
		SELECT ` + careerColumns + `
		FROM careers
		WHERE id <> $1
		ORDER BY attributes <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, id, pgvector.NewVector(career.AttributeVector()), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCareers(rows)
}

func scanCareers(rows pgx.Rows) ([]domain.Career, error) {
	var careers []domain.Career
	for rows.Next() {
		career, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		careers = append(careers, career)
	}
	return careers, rows.Err()
}

func scanCareer(row pgx.Row) (domain.Career, error) {
	var c domain.Career
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Skills,
		&c.MinEducation,
		&c.Field,
		&c.Salary,
		&c.RiskLevel,
		&c.Pace,
		&c.GrowthScore,
		&c.WorkTime,
		&c.WorkType,
		&c.Benefits,
		&c.WorkLifeBalance,
		&c.Progression,
		&c.WhyBest,
	)
	return c, err
}

// CachedCareerRepository sirve List/GetByID desde un cache en memoria
// compartido entre requests, reconstruido solo al arrancar el servicio.
// Similar delega en el repositorio interno (indice vectorial).
type CachedCareerRepository struct {
	inner CareerRepository

	mu      sync.RWMutex
	byID    map[int]domain.Career
	ordered []domain.Career
}

func NewCachedCareerRepository(inner CareerRepository) *CachedCareerRepository {
	return &CachedCareerRepository{
		inner: inner,
		byID:  make(map[int]domain.Career),
	}
}

// Reload reconstruye el cache desde el repositorio interno.
func (r *CachedCareerRepository) Reload(ctx context.Context) error {
	careers, err := r.inner.List(ctx)
	if err != nil {
		return err
	}
	byID := make(map[int]domain.Career, len(careers))
	for _, c := range careers {
		byID[c.ID] = c
	}
	r.mu.Lock()
	r.byID = byID
	r.ordered = careers
	r.mu.Unlock()
	return nil
}

func (r *CachedCareerRepository) List(_ context.Context) ([]domain.Career, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Career, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *CachedCareerRepository) GetByID(_ context.Context, id int) (domain.Career, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	career, ok := r.byID[id]
	if !ok {
		return domain.Career{}, pgx.ErrNoRows
	}
	return career, nil
}

func (r *CachedCareerRepository) Similar(ctx context.Context, id int, limit int) ([]domain.Career, error) {
	return r.inner.Similar(ctx, id, limit)
}

// MemoryCareerRepository sirve el catalogo sembrado desde memoria.
// Se usa en modo demo y en tests; Similar calcula distancia coseno
// sobre el vector de atributos en proceso.
type MemoryCareerRepository struct {
	byID    map[int]domain.Career
	ordered []domain.Career
}

func NewMemoryCareerRepository(careers []domain.Career) *MemoryCareerRepository {
	byID := make(map[int]domain.Career, len(careers))
	ordered := make([]domain.Career, len(careers))
	copy(ordered, careers)
	for _, c := range careers {
		byID[c.ID] = c
	}
	return &MemoryCareerRepository{byID: byID, ordered: ordered}
}

func (r *MemoryCareerRepository) List(_ context.Context) ([]domain.Career, error) {
	out := make([]domain.Career, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *MemoryCareerRepository) GetByID(_ context.Context, id int) (domain.Career, error) {
	career, ok := r.byID[id]
	if !ok {
		return domain.Career{}, pgx.ErrNoRows
	}
	return career, nil
}

func (r *MemoryCareerRepository) Similar(_ context.Context, id int, limit int) ([]domain.Career, error) {
	origin, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	type scored struct {
		career   domain.Career
		distance float64
	}
	base := origin.AttributeVector()
	candidates := make([]scored, 0, len(r.ordered))
	for _, c := range r.ordered {
		if c.ID == id {
			continue
		}
		candidates = append(candidates, scored{career: c, distance: cosineDistance(base, c.AttributeVector())})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].career.ID < candidates[j].career.ID
	})
	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]domain.Career, 0, limit)
	for _, s := range candidates[:limit] {
		out = append(out, s.career)
	}
	return out, nil
}

func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
