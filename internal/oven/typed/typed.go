// Package typed encodes the oven state in the Go type itself. Each of the
// five configurations is its own type and only carries the transition
// methods that are legal from it, so an illegal transition (starting with
// the door open, editing time while heating) does not compile.
//
// Oven wraps the five types in one variable so that a dynamically scripted
// sequence of operations can drive them through oven.Contract.
package typed

import (
	"math"

	"controlling_microwave/internal/oven"
)

// OpenNoTime: door open, magnetron off, no time.
type OpenNoTime struct{}

// OpenTime: door open, magnetron off, T > 0.
type OpenTime struct{ T uint }

// ClosedNoTime: door closed, magnetron off, no time. The power-on state.
type ClosedNoTime struct{}

// ClosedTime: door closed, magnetron off, T > 0.
type ClosedTime struct{ T uint }

// Heating: door closed, magnetron on, T > 0.
type Heating struct{ T uint }

// New returns the power-on state.
func New() ClosedNoTime { return ClosedNoTime{} }

func (OpenNoTime) DoorOpen() bool         { return true }
func (OpenNoTime) MagnetronEnabled() bool { return false }
func (OpenNoTime) TimeRemain() uint       { return 0 }

func (OpenNoTime) CloseDoor() ClosedNoTime { return ClosedNoTime{} }

// SetTime reports false when t is zero; the oven then stays OpenNoTime.
func (OpenNoTime) SetTime(t uint) (OpenTime, bool) {
	if t == 0 {
		return OpenTime{}, false
	}
	return OpenTime{T: t}, true
}

func (OpenTime) DoorOpen() bool         { return true }
func (OpenTime) MagnetronEnabled() bool { return false }
func (s OpenTime) TimeRemain() uint     { return s.T }

func (s OpenTime) CloseDoor() ClosedTime { return ClosedTime(s) }

// SetTime reports false when t is zero; the oven then becomes OpenNoTime.
func (OpenTime) SetTime(t uint) (OpenTime, bool) {
	if t == 0 {
		return OpenTime{}, false
	}
	return OpenTime{T: t}, true
}

func (OpenTime) Stop() OpenNoTime { return OpenNoTime{} }

func (ClosedNoTime) DoorOpen() bool         { return false }
func (ClosedNoTime) MagnetronEnabled() bool { return false }
func (ClosedNoTime) TimeRemain() uint       { return 0 }

func (ClosedNoTime) OpenDoor() OpenNoTime { return OpenNoTime{} }

// SetTime reports false when t is zero; the oven then stays ClosedNoTime.
func (ClosedNoTime) SetTime(t uint) (ClosedTime, bool) {
	if t == 0 {
		return ClosedTime{}, false
	}
	return ClosedTime{T: t}, true
}

func (ClosedNoTime) Start() Heating { return Heating{T: oven.DefaultCookSeconds} }

func (ClosedTime) DoorOpen() bool         { return false }
func (ClosedTime) MagnetronEnabled() bool { return false }
func (s ClosedTime) TimeRemain() uint     { return s.T }

func (s ClosedTime) OpenDoor() OpenTime { return OpenTime(s) }

// SetTime reports false when t is zero; the oven then becomes ClosedNoTime.
func (ClosedTime) SetTime(t uint) (ClosedTime, bool) {
	if t == 0 {
		return ClosedTime{}, false
	}
	return ClosedTime{T: t}, true
}

func (s ClosedTime) Start() Heating  { return Heating(s) }
func (ClosedTime) Stop() ClosedNoTime { return ClosedNoTime{} }

func (Heating) DoorOpen() bool         { return false }
func (Heating) MagnetronEnabled() bool { return true }
func (s Heating) TimeRemain() uint     { return s.T }

// Tick counts down one unit. It reports false when the countdown reached
// zero; the oven is then ClosedNoTime.
func (s Heating) Tick() (Heating, bool) {
	if s.T <= 1 {
		return Heating{}, false
	}
	return Heating{T: s.T - 1}, true
}

func (s Heating) OpenDoor() OpenTime { return OpenTime(s) }
func (s Heating) Stop() ClosedTime   { return ClosedTime(s) }

func (s Heating) Start() Heating {
	if s.T > math.MaxUint-oven.DefaultCookSeconds {
		return Heating{T: math.MaxUint}
	}
	return Heating{T: s.T + oven.DefaultCookSeconds}
}
