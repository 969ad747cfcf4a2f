// Package oven models the control logic of a microwave oven as a
// finite-state machine.
//
// Contract is the operation set every implementation exposes. All
// mutators are total: an action that makes no sense in the current state
// is a no-op, never an error. The reference implementation is Machine,
// built on the immutable State value; FlagOven and typed.Oven are
// alternative renditions held to the same contract by the conformance suite.
//
// Implementations are not safe for concurrent use. The caller that owns
// an oven issues one operation at a time.
package oven

import (
	"errors"
	"fmt"
	"strings"
)

// Contract is the capability interface of a microwave oven.
type Contract interface {
	Reset()
	Tick()
	ActionOpenDoor()
	ActionCloseDoor()
	ActionSetTime(seconds uint)
	ActionStart()
	ActionStop()

	MagnetronEnabled() bool
	DoorOpen() bool
	TimeRemain() uint
}

// Op names a contract mutator.
type Op string

const (
	OpReset     Op = "reset"
	OpTick      Op = "tick"
	OpOpenDoor  Op = "open_door"
	OpCloseDoor Op = "close_door"
	OpSetTime   Op = "set_time"
	OpStart     Op = "start"
	OpStop      Op = "stop"
)

// Ops lists every operation in a stable order.
var Ops = []Op{OpReset, OpTick, OpOpenDoor, OpCloseDoor, OpSetTime, OpStart, OpStop}

var ErrUnknownOp = errors.New("unknown oven operation")

// ParseOp accepts an operation name case-insensitively. The "action_"
// prefix used by the contract's long names is accepted as well.
func ParseOp(s string) (Op, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "action_")
	for _, op := range Ops {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Apply dispatches op onto c. seconds is used only by OpSetTime.
func Apply(c Contract, op Op, seconds uint) error {
	switch op {
	case OpReset:
		c.Reset()
	case OpTick:
		c.Tick()
	case OpOpenDoor:
		c.ActionOpenDoor()
	case OpCloseDoor:
		c.ActionCloseDoor()
	case OpSetTime:
		c.ActionSetTime(seconds)
	case OpStart:
		c.ActionStart()
	case OpStop:
		c.ActionStop()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	return nil
}

// Observe reads the observables of c into a State. The second result is
// false when the observables describe no valid configuration (for example
// a heating magnetron with the door open).
func Observe(c Contract) (State, bool) {
	door, mtron, t := c.DoorOpen(), c.MagnetronEnabled(), c.TimeRemain()
	switch {
	case door && mtron:
		return State{}, false
	case mtron && t == 0:
		return State{}, false
	case door:
		return Open(t), true
	case mtron:
		return Heating(t), true
	default:
		return Idle(t), true
	}
}
