package service

import (
	"context"
	"time"

	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/oven"
)

// TickerService issues one discrete tick per interval. The oven never reads
// the clock itself.
type TickerService struct {
	oven Oven
	log  *logger.Logger
}

func NewTickerService(o Oven, log *logger.Logger) *TickerService {
	if log == nil {
		log = logger.Nop()
	}
	return &TickerService{oven: o, log: log}
}

// Run ticks at the given interval until ctx is canceled. A non-positive
// interval disables the driver.
func (s *TickerService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.log.Infow("oven_ticker_disabled")
		return
	}
	s.log.Infow("oven_ticker_started", "interval", interval.String())

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Infow("oven_ticker_stopped")
			return
		case <-t.C:
			if _, err := s.oven.Do(ctx, Command{Op: oven.OpTick}); err != nil {
				s.log.Warnw("oven_tick_failed", "error", err)
			}
		}
	}
}
