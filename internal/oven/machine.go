package oven

// ObserverFunc is called after every operation on a Machine. A no-op
// reports from == to.
type ObserverFunc func(op Op, from, to State)

// Option configures a Machine.
type Option func(*Machine)

// WithObserver registers fn to receive every transition.
func WithObserver(fn ObserverFunc) Option {
	return func(m *Machine) { m.observer = fn }
}

// Machine is the reference Contract implementation. It holds one State and
// replaces it with the successor computed by the matching State method.
type Machine struct {
	state    State
	observer ObserverFunc
}

var _ Contract = (*Machine)(nil)

// New returns a Machine in the reset configuration.
func New(opts ...Option) *Machine {
	m := &Machine{state: Reset()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current configuration.
func (m *Machine) State() State { return m.state }

func (m *Machine) move(op Op, next State) {
	prev := m.state
	m.state = next
	if m.observer != nil {
		m.observer(op, prev, next)
	}
}

func (m *Machine) Reset()                     { m.move(OpReset, Reset()) }
func (m *Machine) Tick()                      { m.move(OpTick, m.state.Tick()) }
func (m *Machine) ActionOpenDoor()            { m.move(OpOpenDoor, m.state.OpenDoor()) }
func (m *Machine) ActionCloseDoor()           { m.move(OpCloseDoor, m.state.CloseDoor()) }
func (m *Machine) ActionSetTime(seconds uint) { m.move(OpSetTime, m.state.SetTime(seconds)) }
func (m *Machine) ActionStart()               { m.move(OpStart, m.state.Start()) }
func (m *Machine) ActionStop()                { m.move(OpStop, m.state.Stop()) }

func (m *Machine) MagnetronEnabled() bool { return m.state.MagnetronEnabled() }
func (m *Machine) DoorOpen() bool         { return m.state.DoorOpen() }
func (m *Machine) TimeRemain() uint       { return m.state.Time() }
