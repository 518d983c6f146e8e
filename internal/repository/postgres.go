package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"activities-service/internal/model"
)

type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}

// schema создаёт таблицы реестра. seq хранит порядок добавления кружков,
// position — порядок записи участников.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS activities (
	seq              BIGSERIAL,
	name             TEXT PRIMARY KEY,
	description      TEXT NOT NULL,
	schedule         TEXT NOT NULL,
	max_participants INTEGER NOT NULL CHECK (max_participants > 0)
)`,
	`CREATE TABLE IF NOT EXISTS activity_participants (
	position      BIGSERIAL PRIMARY KEY,
	activity_name TEXT NOT NULL REFERENCES activities(name) ON DELETE CASCADE,
	email         TEXT NOT NULL,
	UNIQUE (activity_name, email)
)`,
	`ALTER TABLE activities ADD COLUMN IF NOT EXISTS seq BIGSERIAL`,
}

// Migrate применяет схему. Повторный вызов безопасен.
func (p *Postgres) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := p.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Seed добавляет кружки, которых ещё нет в базе. Участники сидируются только
// для вновь созданных кружков, чтобы не затирать текущие записи.
func (p *Postgres) Seed(ctx context.Context, activities []model.Activity) error {
	for _, a := range activities {
		if err := validateSeed(a); err != nil {
			return err
		}
	}

	return pgx.BeginFunc(ctx, p.Pool, func(tx pgx.Tx) error {
		for _, a := range activities {
			tag, err := tx.Exec(ctx, `
INSERT INTO activities (name, description, schedule, max_participants)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO NOTHING
`, a.Name, a.Description, a.Schedule, a.MaxParticipants)
			if err != nil {
				return fmt.Errorf("seed activity %s: %w", a.Name, err)
			}
			if tag.RowsAffected() == 0 || len(a.Participants) == 0 {
				continue
			}

			batch := &pgx.Batch{}
			for _, email := range a.Participants {
				batch.Queue(`INSERT INTO activity_participants (activity_name, email) VALUES ($1, $2)`, a.Name, email)
			}
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return fmt.Errorf("seed participants %s: %w", a.Name, err)
			}
		}
		return nil
	})
}
