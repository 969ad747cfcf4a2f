package service

import (
	"context"
	"time"

	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/models"
	"controlling_microwave/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Oven applies operations to the single oven owned by the service.
type Oven interface {
	Do(ctx context.Context, cmd Command) (models.OvenState, error)
}

// Monitoring exposes the read-only oven snapshot.
type Monitoring interface {
	GetState(ctx context.Context) (models.OvenState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.OvenEvent, error)
}

// Ticker drives discrete ticks from a wall-clock interval.
// Stop via context cancellation in main() for graceful shutdown.
type Ticker interface {
	Run(ctx context.Context, interval time.Duration)
}

// Conformance runs the conformance suite against a named implementation.
type Conformance interface {
	RunConformance(ctx context.Context, implementation string) (models.ConformanceRun, error)
	ListRuns(ctx context.Context, implementation string, limit int) ([]models.ConformanceRun, error)
	Implementations() []string
}

// Service aggregates all sub-services.
type Service struct {
	Oven
	Monitoring
	EventLog
	Ticker
	Conformance
	Authorization
}

// Config carries the settings the services read from configuration.
type Config struct {
	Auth         AuthConfig
	ExploreDepth int
}

// NewService wires the repository layer into concrete services. The oven
// service is shared by the oven, monitoring and ticker roles.
func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	ovenSvc := NewOvenService(repos.EventRepo, log)
	return &Service{
		Oven:          ovenSvc,
		Monitoring:    NewMonitoringService(ovenSvc),
		EventLog:      NewEventLogService(repos.EventRepo),
		Ticker:        NewTickerService(ovenSvc, log),
		Conformance:   NewConformanceService(repos.RunRepo, cfg.ExploreDepth, log),
		Authorization: NewAuthService(repos.Auth, cfg.Auth),
	}
}
