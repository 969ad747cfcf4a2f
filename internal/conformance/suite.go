// Package conformance holds the oracle that any oven.Contract
// implementation must pass: a deterministic script of operations with the
// expected observables after each one, grouped by concern.
//
// The first failure ends a run. A broken safety invariant is reported as
// *InvariantError, any other difference as *MismatchError.
package conformance

import (
	"fmt"

	"controlling_microwave/internal/oven"
)

// Expect is the observable triple after a step.
type Expect struct {
	DoorOpen         bool `yaml:"door_open" json:"door_open"`
	MagnetronEnabled bool `yaml:"magnetron_enabled" json:"magnetron_enabled"`
	TimeRemain       uint `yaml:"time_remain" json:"time_remain"`
}

func (e Expect) String() string {
	door, mtron := "closed", "off"
	if e.DoorOpen {
		door = "open"
	}
	if e.MagnetronEnabled {
		mtron = "on"
	}
	return fmt.Sprintf("(%s,%s,%d)", door, mtron, e.TimeRemain)
}

func observe(c oven.Contract) Expect {
	return Expect{
		DoorOpen:         c.DoorOpen(),
		MagnetronEnabled: c.MagnetronEnabled(),
		TimeRemain:       c.TimeRemain(),
	}
}

func expectOf(s oven.State) Expect {
	return Expect{DoorOpen: s.DoorOpen(), MagnetronEnabled: s.MagnetronEnabled(), TimeRemain: s.Time()}
}

// Step is one operation. Want is nil for set-up steps that assert nothing.
type Step struct {
	Op      oven.Op
	Seconds uint
	Want    *Expect
}

// Group is a named run of steps covering one concern.
type Group struct {
	Name        string
	Description string
	Steps       []Step
}

// Suite is an ordered list of groups.
type Suite struct {
	Name   string
	Groups []Group
}

// Size returns the number of steps and of asserting steps.
func (s Suite) Size() (steps, assertions int) {
	for _, g := range s.Groups {
		for _, st := range g.Steps {
			steps++
			if st.Want != nil {
				assertions++
			}
		}
	}
	return steps, assertions
}

const (
	open   = true
	closed = false
	on     = true
	off    = false
)

func do(op oven.Op) Step { return Step{Op: op} }

func expect(op oven.Op, door, mtron bool, t uint) Step {
	return Step{Op: op, Want: &Expect{DoorOpen: door, MagnetronEnabled: mtron, TimeRemain: t}}
}

func setTime(seconds uint, door, mtron bool, t uint) Step {
	s := expect(oven.OpSetTime, door, mtron, t)
	s.Seconds = seconds
	return s
}

func doSetTime(seconds uint) Step { return Step{Op: oven.OpSetTime, Seconds: seconds} }

// Default returns the built-in oracle.
func Default() Suite {
	return Suite{
		Name: "microwave",
		Groups: []Group{
			doorOpenSafety(),
			tickInertness(),
			countdown(),
			startSemantics(),
			setTimeRules(),
			edgeCases(),
		},
	}
}

func doorOpenSafety() Group {
	return Group{
		Name:        "door-open safety",
		Description: "start and tick with the door open never enable the magnetron or move time",
		Steps: []Step{
			do(oven.OpReset),
			expect(oven.OpOpenDoor, open, off, 0),
			expect(oven.OpCloseDoor, closed, off, 0),
			expect(oven.OpOpenDoor, open, off, 0),
			expect(oven.OpStart, open, off, 0),
			expect(oven.OpStop, open, off, 0),
			setTime(20, open, off, 20),
			setTime(30, open, off, 30),
			expect(oven.OpOpenDoor, open, off, 30),
			expect(oven.OpStart, open, off, 30),
			expect(oven.OpTick, open, off, 30),
			expect(oven.OpCloseDoor, closed, off, 30),
			expect(oven.OpOpenDoor, open, off, 30),
			// stop with the door open clears a programmed time
			expect(oven.OpStop, open, off, 0),
		},
	}
}

func tickInertness() Group {
	return Group{
		Name:        "tick inertness",
		Description: "ticks have no effect while the magnetron is off",
		Steps: []Step{
			do(oven.OpReset),
			expect(oven.OpOpenDoor, open, off, 0),
			expect(oven.OpTick, open, off, 0),

			do(oven.OpReset),
			expect(oven.OpOpenDoor, open, off, 0),
			setTime(30, open, off, 30),
			expect(oven.OpTick, open, off, 30),

			do(oven.OpReset),
			do(oven.OpCloseDoor),
			expect(oven.OpTick, closed, off, 0),

			do(oven.OpReset),
			expect(oven.OpCloseDoor, closed, off, 0),
			setTime(30, closed, off, 30),
			expect(oven.OpTick, closed, off, 30),

			do(oven.OpReset),
			do(oven.OpOpenDoor),
			setTime(30, open, off, 30),
			expect(oven.OpCloseDoor, closed, off, 30),
			expect(oven.OpTick, closed, off, 30),
		},
	}
}

func countdown() Group {
	return Group{
		Name:        "countdown",
		Description: "heating counts down and shuts the magnetron off exactly at zero",
		Steps: []Step{
			do(oven.OpReset),
			do(oven.OpCloseDoor),
			setTime(2, closed, off, 2),
			expect(oven.OpStart, closed, on, 2),
			expect(oven.OpTick, closed, on, 1),
			expect(oven.OpTick, closed, off, 0),
			expect(oven.OpTick, closed, off, 0),
		},
	}
}

func startSemantics() Group {
	return Group{
		Name:        "start semantics",
		Description: "default start, additive restart, door pause and resume, two-stage stop",
		Steps: []Step{
			do(oven.OpReset),
			expect(oven.OpCloseDoor, closed, off, 0),
			expect(oven.OpStart, closed, on, 30),
			expect(oven.OpStart, closed, on, 60),
			expect(oven.OpTick, closed, on, 59),
			expect(oven.OpOpenDoor, open, off, 59),
			expect(oven.OpCloseDoor, closed, off, 59),
			expect(oven.OpStart, closed, on, 59),
			expect(oven.OpTick, closed, on, 58),
			expect(oven.OpStop, closed, off, 58),
			expect(oven.OpTick, closed, off, 58),
			expect(oven.OpStop, closed, off, 0),
		},
	}
}

func setTimeRules() Group {
	return Group{
		Name:        "set time",
		Description: "time cannot be edited while heating and is accepted otherwise",
		Steps: []Step{
			do(oven.OpReset),
			do(oven.OpCloseDoor),
			expect(oven.OpStart, closed, on, 30),
			setTime(25, closed, on, 30),
			setTime(45, closed, on, 30),
			expect(oven.OpOpenDoor, open, off, 30),
			setTime(45, open, off, 45),
			expect(oven.OpCloseDoor, closed, off, 45),
			setTime(10, closed, off, 10),
			setTime(0, closed, off, 0),
			expect(oven.OpStart, closed, on, 30),
		},
	}
}

func edgeCases() Group {
	return Group{
		Name:        "idempotence",
		Description: "repeated opens, closes and stops, and start right after a re-close",
		Steps: []Step{
			do(oven.OpReset),
			expect(oven.OpOpenDoor, open, off, 0),
			expect(oven.OpOpenDoor, open, off, 0),
			setTime(24, open, off, 24),
			expect(oven.OpOpenDoor, open, off, 24),
			expect(oven.OpCloseDoor, closed, off, 24),
			setTime(389, closed, off, 389),
			expect(oven.OpCloseDoor, closed, off, 389),
			expect(oven.OpOpenDoor, open, off, 389),

			do(oven.OpReset),
			expect(oven.OpCloseDoor, closed, off, 0),
			expect(oven.OpCloseDoor, closed, off, 0),
			expect(oven.OpStop, closed, off, 0),
			expect(oven.OpOpenDoor, open, off, 0),
			expect(oven.OpCloseDoor, closed, off, 0),
			expect(oven.OpStart, closed, on, 30),
			expect(oven.OpCloseDoor, closed, on, 30),
			expect(oven.OpStop, closed, off, 30),
			expect(oven.OpStop, closed, off, 0),
			expect(oven.OpStop, closed, off, 0),

			do(oven.OpReset),
			doSetTime(5),
			do(oven.OpStart),
			expect(oven.OpReset, closed, off, 0),
		},
	}
}
