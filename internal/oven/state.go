package oven

import (
	"fmt"
	"math"
)

// DefaultCookSeconds is the duration used by a start without a programmed
// time, and the increment added by each start while heating.
const DefaultCookSeconds uint = 30

// Kind tags one of the five reachable oven configurations.
// The zero value is the reset configuration.
type Kind uint8

const (
	ClosedNoTimeNoMtron Kind = iota
	ClosedTimeNoMtron
	ClosedTimeMtron
	OpenNoTime
	OpenTime
)

func (k Kind) String() string {
	switch k {
	case ClosedNoTimeNoMtron:
		return "CLOSED_NO_TIME_NO_MTRON"
	case ClosedTimeNoMtron:
		return "CLOSED_TIME_NO_MTRON"
	case ClosedTimeMtron:
		return "CLOSED_TIME_MTRON"
	case OpenNoTime:
		return "OPEN_NO_TIME"
	case OpenTime:
		return "OPEN_TIME"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// State is an immutable oven configuration. Time is carried only by the
// time-bearing kinds and is always > 0 there; the constructors below are
// the only way to build one, so invalid configurations cannot exist.
type State struct {
	kind Kind
	t    uint
}

// Reset returns the power-on configuration: door closed, magnetron off, no time.
func Reset() State { return State{kind: ClosedNoTimeNoMtron} }

// Idle returns a closed, non-heating state holding t (or no time when t is 0).
func Idle(t uint) State {
	if t == 0 {
		return State{kind: ClosedNoTimeNoMtron}
	}
	return State{kind: ClosedTimeNoMtron, t: t}
}

// Heating returns a closed state with the magnetron on. A zero t yields the
// reset configuration since heating without time is not a valid state.
func Heating(t uint) State {
	if t == 0 {
		return State{kind: ClosedNoTimeNoMtron}
	}
	return State{kind: ClosedTimeMtron, t: t}
}

// Open returns a door-open state holding t (or no time when t is 0).
func Open(t uint) State {
	if t == 0 {
		return State{kind: OpenNoTime}
	}
	return State{kind: OpenTime, t: t}
}

func (s State) Kind() Kind { return s.kind }

// Time is the remaining cook time; zero for the no-time kinds.
func (s State) Time() uint { return s.t }

func (s State) DoorOpen() bool {
	return s.kind == OpenNoTime || s.kind == OpenTime
}

func (s State) MagnetronEnabled() bool {
	return s.kind == ClosedTimeMtron
}

func (s State) String() string {
	switch s.kind {
	case OpenTime, ClosedTimeNoMtron, ClosedTimeMtron:
		return fmt.Sprintf("%s(%d)", s.kind, s.t)
	default:
		return s.kind.String()
	}
}

// Tick advances one discrete time unit. Only a heating state changes.
func (s State) Tick() State {
	switch s.kind {
	case ClosedTimeMtron:
		t := s.t
		if t > 0 {
			t--
		}
		return Heating(t)
	default:
		return s
	}
}

// OpenDoor opens the door; a heating oven drops the magnetron immediately.
func (s State) OpenDoor() State {
	switch s.kind {
	case ClosedNoTimeNoMtron:
		return Open(0)
	case ClosedTimeNoMtron, ClosedTimeMtron:
		return Open(s.t)
	default:
		return s
	}
}

// CloseDoor closes the door. It never turns the magnetron on.
func (s State) CloseDoor() State {
	switch s.kind {
	case OpenNoTime:
		return Reset()
	case OpenTime:
		return Idle(s.t)
	default:
		return s
	}
}

// SetTime programs the cook time. Ignored while heating.
func (s State) SetTime(t uint) State {
	switch s.kind {
	case OpenNoTime, OpenTime:
		return Open(t)
	case ClosedNoTimeNoMtron, ClosedTimeNoMtron:
		return Idle(t)
	default:
		return s
	}
}

// Start begins heating, defaults to DefaultCookSeconds without a programmed
// time and adds DefaultCookSeconds while already heating. No-op with the door open.
func (s State) Start() State {
	switch s.kind {
	case ClosedNoTimeNoMtron:
		return Heating(DefaultCookSeconds)
	case ClosedTimeNoMtron:
		return Heating(s.t)
	case ClosedTimeMtron:
		return Heating(addSaturating(s.t, DefaultCookSeconds))
	default:
		return s
	}
}

// Stop halts heating keeping the time; a second stop clears the time. With
// the door open it clears a programmed time and leaves the door alone.
func (s State) Stop() State {
	switch s.kind {
	case ClosedTimeMtron:
		return Idle(s.t)
	case ClosedTimeNoMtron:
		return Reset()
	case OpenTime:
		return Open(0)
	default:
		return s
	}
}

func addSaturating(a, b uint) uint {
	if a > math.MaxUint-b {
		return math.MaxUint
	}
	return a + b
}
