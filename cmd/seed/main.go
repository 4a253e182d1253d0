package main

import (
	"context"
	"log"

	"careerscope/internal/config"
	"careerscope/internal/db"
	"careerscope/internal/repository"

	"github.com/joho/godotenv"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// Crea el esquema y siembra el catalogo de carreras, incluyendo el
// vector de atributos que alimenta la busqueda de similares.
func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT UNIQUE,
			full_name     TEXT NOT NULL DEFAULT '',
			role          TEXT NOT NULL DEFAULT 'member',
			password_hash TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL UNIQUE,
			education  JSONB,
			skills     JSONB,
			interests  TEXT[],
			behavioral JSONB,
			step       TEXT NOT NULL DEFAULT 'education',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS careers (
			id                INTEGER PRIMARY KEY,
			title             TEXT NOT NULL,
			skills            TEXT[] NOT NULL DEFAULT '{}',
			min_education     TEXT NOT NULL DEFAULT '',
			field             TEXT NOT NULL DEFAULT '',
			salary            INTEGER NOT NULL DEFAULT 0,
			risk_level        TEXT NOT NULL DEFAULT '',
			pace              TEXT NOT NULL DEFAULT '',
			growth_score      INTEGER NOT NULL DEFAULT 0,
			work_time         TEXT NOT NULL DEFAULT '',
			work_type         TEXT NOT NULL DEFAULT '',
			benefits          TEXT[] NOT NULL DEFAULT '{}',
			work_life_balance TEXT NOT NULL DEFAULT '',
			progression       TEXT NOT NULL DEFAULT '',
			why_best          TEXT NOT NULL DEFAULT '',
			attributes        vector(4)
		)`,
		`CREATE TABLE IF NOT EXISTS simulation_records (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			job_id     INTEGER NOT NULL,
			job_title  TEXT NOT NULL DEFAULT '',
			result     JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_simulation_records_user ON simulation_records (user_id, created_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Fatal("schema setup failed", zap.Error(err))
		}
	}

	const upsert = `
		INSERT INTO careers (
			id, title, skills, min_education, field, salary, risk_level, pace, growth_score,
			work_time, work_type, benefits, work_life_balance, progression, why_best, attributes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			skills = EXCLUDED.skills,
			min_education = EXCLUDED.min_education,
			field = EXCLUDED.field,
			salary = EXCLUDED.salary,
			risk_level = EXCLUDED.risk_level,
			pace = EXCLUDED.pace,
			growth_score = EXCLUDED.growth_score,
			work_time = EXCLUDED.work_time,
			work_type = EXCLUDED.work_type,
			benefits = EXCLUDED.benefits,
			work_life_balance = EXCLUDED.work_life_balance,
			progression = EXCLUDED.progression,
			why_best = EXCLUDED.why_best,
			attributes = EXCLUDED.attributes
	`
	for _, career := range repository.SeedCareers() {
		_, err := pool.Exec(ctx, upsert,
			career.ID,
			career.Title,
			career.Skills,
			career.MinEducation,
			career.Field,
			career.Salary,
			career.RiskLevel,
			career.Pace,
			career.GrowthScore,
			career.WorkTime,
			career.WorkType,
			career.Benefits,
			career.WorkLifeBalance,
			career.Progression,
			career.WhyBest,
			pgvector.NewVector(career.AttributeVector()),
		)
		if err != nil {
			logger.Fatal("career seed failed", zap.Int("id", career.ID), zap.Error(err))
		}
		logger.Info("career seeded", zap.Int("id", career.ID), zap.String("title", career.Title))
	}

	logger.Info("seed complete")
}
