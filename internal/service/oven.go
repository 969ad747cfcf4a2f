package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/metrics"
	"controlling_microwave/internal/models"
	"controlling_microwave/internal/oven"
	"controlling_microwave/internal/repository"
)

var eventTypes = map[oven.Op]string{
	oven.OpReset:     models.EventReset,
	oven.OpTick:      models.EventTick,
	oven.OpOpenDoor:  models.EventOpenDoor,
	oven.OpCloseDoor: models.EventCloseDoor,
	oven.OpSetTime:   models.EventSetTime,
	oven.OpStart:     models.EventStart,
	oven.OpStop:      models.EventStop,
}

// OvenService owns the oven. Every call is serialised by mu; the machine
// itself is not safe for concurrent use.
type OvenService struct {
	mu        sync.Mutex
	machine   *oven.Machine
	updatedAt time.Time

	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time
}

func NewOvenService(eventRepo repository.EventRepo, log *logger.Logger) *OvenService {
	if log == nil {
		log = logger.Nop()
	}
	s := &OvenService{eventRepo: eventRepo, log: log, now: time.Now}
	s.machine = oven.New(oven.WithObserver(observeTransition))
	s.updatedAt = s.now().UTC()
	metrics.SetOvenState(false, 0)
	return s
}

func observeTransition(op oven.Op, from, to oven.State) {
	metrics.RecordOperation(string(op), from != to)
	metrics.SetOvenState(to.MagnetronEnabled(), to.Time())
	if cookCompleted(op, from, to) {
		metrics.RecordCookComplete()
	}
}

func cookCompleted(op oven.Op, from, to oven.State) bool {
	return op == oven.OpTick && from.MagnetronEnabled() && !to.MagnetronEnabled()
}

// Do applies one operation and appends the matching events. Operations never
// fail; only an unknown op is an error. Ticks that change nothing are not
// logged.
func (s *OvenService) Do(ctx context.Context, cmd Command) (models.OvenState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.machine.State()
	if err := oven.Apply(s.machine, cmd.Op, cmd.Seconds); err != nil {
		return s.snapshotLocked(), err
	}
	to := s.machine.State()

	now := s.now().UTC()
	if from != to {
		s.updatedAt = now
		s.log.Debugw("oven_transition", "op", cmd.Op, "from", from.String(), "to", to.String())
	}

	for _, ev := range eventsFor(cmd, from, to, now) {
		if err := s.eventRepo.Append(ctx, ev); err != nil {
			s.log.Errorw("oven_event_append_failed", "type", ev.Type, "error", err)
		}
	}
	return s.snapshotLocked(), nil
}

// Snapshot returns the current observable state.
func (s *OvenService) Snapshot() models.OvenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *OvenService) snapshotLocked() models.OvenState {
	return toOvenState(s.machine.State(), s.updatedAt)
}

func toOvenState(st oven.State, at time.Time) models.OvenState {
	return models.OvenState{
		State:            st.Kind().String(),
		DoorOpen:         st.DoorOpen(),
		MagnetronEnabled: st.MagnetronEnabled(),
		TimeRemain:       st.Time(),
		UpdatedAt:        at,
	}
}

func eventsFor(cmd Command, from, to oven.State, at time.Time) []models.OvenEvent {
	changed := from != to
	if cmd.Op == oven.OpTick && !changed {
		return nil
	}

	desc := describe(cmd)
	if !changed {
		desc += " (no effect)"
	}
	meta := map[string]any{
		"from":    from.String(),
		"to":      to.String(),
		"changed": changed,
	}
	if cmd.Op == oven.OpSetTime {
		meta["seconds"] = cmd.Seconds
	}

	out := []models.OvenEvent{{
		OccurredAt:  at,
		Type:        eventTypes[cmd.Op],
		Description: desc,
		Metadata:    meta,
	}}
	if cookCompleted(cmd.Op, from, to) {
		out = append(out, models.OvenEvent{
			OccurredAt:  at,
			Type:        models.EventCookComplete,
			Description: "Cooking finished; magnetron off",
		})
	}
	return out
}

func describe(cmd Command) string {
	switch cmd.Op {
	case oven.OpReset:
		return "Oven reset"
	case oven.OpTick:
		return "Tick"
	case oven.OpOpenDoor:
		return "Door opened"
	case oven.OpCloseDoor:
		return "Door closed"
	case oven.OpSetTime:
		return fmt.Sprintf("Cook time set to %d", cmd.Seconds)
	case oven.OpStart:
		return "Start pressed"
	case oven.OpStop:
		return "Stop pressed"
	}
	return string(cmd.Op)
}
