package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"careerscope/internal/domain"
)

// SimulationRepository persiste resultados de simulacion como
// historial del usuario.
type SimulationRepository interface {
	Create(ctx context.Context, record domain.SimulationRecord) error
	ListByUserID(ctx context.Context, userID string) ([]domain.SimulationRecord, error)
}

// PgSimulationRepository implementa SimulationRepository usando pgxpool.
type PgSimulationRepository struct {
	pool *pgxpool.Pool
}

func NewPgSimulationRepository(pool *pgxpool.Pool) *PgSimulationRepository {
	return &PgSimulationRepository{pool: pool}
}

func (r *PgSimulationRepository) Create(ctx context.Context, record domain.SimulationRecord) error {
	result, err := json.Marshal(record.Result)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO simulation_records (id, user_id, job_id, job_title, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.UserID,
		record.JobID,
		record.JobTitle,
		result,
		record.CreatedAt,
	)
	return err
}

func (r *PgSimulationRepository) ListByUserID(ctx context.Context, userID string) ([]domain.SimulationRecord, error) {
	const query = `
		SELECT id, user_id, job_id, job_title, result, created_at
		FROM simulation_records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SimulationRecord
	for rows.Next() {
		var (
			rec    domain.SimulationRecord
			result []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.JobID, &rec.JobTitle, &result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &rec.Result); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MemorySimulationRepository guarda el historial en memoria (modo demo).
type MemorySimulationRepository struct {
	mu       sync.RWMutex
	byUserID map[string][]domain.SimulationRecord
}

func NewMemorySimulationRepository() *MemorySimulationRepository {
	return &MemorySimulationRepository{byUserID: make(map[string][]domain.SimulationRecord)}
}

func (r *MemorySimulationRepository) Create(_ context.Context, record domain.SimulationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mas reciente primero, igual que el ORDER BY del repositorio pg.
	r.byUserID[record.UserID] = append([]domain.SimulationRecord{record}, r.byUserID[record.UserID]...)
	return nil
}

func (r *MemorySimulationRepository) ListByUserID(_ context.Context, userID string) ([]domain.SimulationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := r.byUserID[userID]
	out := make([]domain.SimulationRecord, len(records))
	copy(out, records)
	return out, nil
}
