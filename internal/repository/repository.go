package repository

import (
	"context"
	"database/sql"
	"time"

	"controlling_microwave/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// EventRepo is the append-only oven log.
type EventRepo interface {
	Append(ctx context.Context, e models.OvenEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.OvenEvent, error)
}

// RunRepo stores conformance run results.
type RunRepo interface {
	Append(ctx context.Context, r models.ConformanceRun) error
	List(ctx context.Context, implementation string, limit int) ([]models.ConformanceRun, error)
}

type Repository struct {
	EventRepo EventRepo
	RunRepo   RunRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
		RunRepo:   NewRunSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
