package service

import (
	"context"
	"time"

	"controlling_microwave/internal/models"
)

type stateSource interface {
	Snapshot() models.OvenState
}

type MonitoringService struct {
	src stateSource
}

func NewMonitoringService(src stateSource) *MonitoringService {
	return &MonitoringService{src: src}
}

// GetState returns the current oven snapshot.
func (s *MonitoringService) GetState(ctx context.Context) (models.OvenState, error) {
	if err := ctx.Err(); err != nil {
		return models.OvenState{}, err
	}
	st := s.src.Snapshot()
	st.UpdatedAt = toUTC(st.UpdatedAt)
	return st, nil
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
