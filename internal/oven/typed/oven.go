package typed

import "controlling_microwave/internal/oven"

type state interface {
	DoorOpen() bool
	MagnetronEnabled() bool
	TimeRemain() uint
}

// Oven holds any one of the five state types. Each contract method selects
// the transition the current type offers and is a no-op when it has none.
type Oven struct {
	cur state
}

var _ oven.Contract = (*Oven)(nil)

func NewOven() *Oven { return &Oven{cur: New()} }

func (o *Oven) Reset() { o.cur = New() }

func (o *Oven) Tick() {
	if s, ok := o.cur.(Heating); ok {
		if next, running := s.Tick(); running {
			o.cur = next
		} else {
			o.cur = ClosedNoTime{}
		}
	}
}

func (o *Oven) ActionOpenDoor() {
	switch s := o.cur.(type) {
	case ClosedNoTime:
		o.cur = s.OpenDoor()
	case ClosedTime:
		o.cur = s.OpenDoor()
	case Heating:
		o.cur = s.OpenDoor()
	}
}

func (o *Oven) ActionCloseDoor() {
	switch s := o.cur.(type) {
	case OpenNoTime:
		o.cur = s.CloseDoor()
	case OpenTime:
		o.cur = s.CloseDoor()
	}
}

func (o *Oven) ActionSetTime(seconds uint) {
	switch s := o.cur.(type) {
	case OpenNoTime:
		o.cur = openOrEmpty(s.SetTime(seconds))
	case OpenTime:
		o.cur = openOrEmpty(s.SetTime(seconds))
	case ClosedNoTime:
		o.cur = closedOrEmpty(s.SetTime(seconds))
	case ClosedTime:
		o.cur = closedOrEmpty(s.SetTime(seconds))
	}
}

func (o *Oven) ActionStart() {
	switch s := o.cur.(type) {
	case ClosedNoTime:
		o.cur = s.Start()
	case ClosedTime:
		o.cur = s.Start()
	case Heating:
		o.cur = s.Start()
	}
}

func (o *Oven) ActionStop() {
	switch s := o.cur.(type) {
	case OpenTime:
		o.cur = s.Stop()
	case ClosedTime:
		o.cur = s.Stop()
	case Heating:
		o.cur = s.Stop()
	}
}

func (o *Oven) MagnetronEnabled() bool { return o.cur.MagnetronEnabled() }
func (o *Oven) DoorOpen() bool         { return o.cur.DoorOpen() }
func (o *Oven) TimeRemain() uint       { return o.cur.TimeRemain() }

func openOrEmpty(s OpenTime, ok bool) state {
	if !ok {
		return OpenNoTime{}
	}
	return s
}

func closedOrEmpty(s ClosedTime, ok bool) state {
	if !ok {
		return ClosedNoTime{}
	}
	return s
}
