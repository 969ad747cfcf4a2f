package conformance

import (
	"errors"
	"fmt"

	"controlling_microwave/internal/oven"
)

// DefaultExploreTimes are the set_time arguments used when none are given.
var DefaultExploreTimes = []uint{0, 1, 2, 45}

// ExploreConfig bounds an exhaustive exploration.
type ExploreConfig struct {
	Depth int
	Times []uint
}

// ExploreReport counts explored sequences and operations applied.
type ExploreReport struct {
	Sequences  int `json:"sequences"`
	Operations int `json:"operations"`
}

type move struct {
	op      oven.Op
	seconds uint
}

func (m move) String() string { return stepLabel(m.op, m.seconds) }

func alphabet(times []uint) []move {
	var moves []move
	for _, op := range oven.Ops {
		if op == oven.OpSetTime {
			for _, t := range times {
				moves = append(moves, move{op, t})
			}
			continue
		}
		moves = append(moves, move{op: op})
	}
	return moves
}

// Explore enumerates every operation sequence up to cfg.Depth. Each
// sequence is replayed on a fresh instance from factory and, after every
// step, the observables are checked against the safety invariants and
// compared with the reference oven.State model.
func Explore(factory func() oven.Contract, cfg ExploreConfig, opts ...Option) (ExploreReport, error) {
	if cfg.Depth < 0 {
		return ExploreReport{}, errors.New("explore depth must be >= 0")
	}
	times := cfg.Times
	if len(times) == 0 {
		times = DefaultExploreTimes
	}
	rc := newRunConfig(opts)

	x := &explorer{factory: factory, moves: alphabet(times), depth: cfg.Depth}
	if err := x.checkFresh(); err != nil {
		return x.rep, err
	}
	err := x.walk(nil, oven.Reset())
	rc.log.Debugw("conformance_explored", "depth", cfg.Depth, "sequences", x.rep.Sequences, "operations", x.rep.Operations, "err", err)
	return x.rep, err
}

type explorer struct {
	factory func() oven.Contract
	moves   []move
	depth   int
	rep     ExploreReport
}

func (x *explorer) checkFresh() error {
	got := observe(x.factory())
	if want := expectOf(oven.Reset()); got != want {
		return &MismatchError{Group: "explore", Op: "new", Want: want, Got: got}
	}
	return nil
}

// walk extends prefix by every move. model is the reference state reached
// by prefix.
func (x *explorer) walk(prefix []move, model oven.State) error {
	if len(prefix) == x.depth {
		return nil
	}
	for _, m := range x.moves {
		seq := append(prefix[:len(prefix):len(prefix)], m)
		next := step(model, m)
		if err := x.replay(seq, next); err != nil {
			return err
		}
		if err := x.walk(seq, next); err != nil {
			return err
		}
	}
	return nil
}

// replay runs seq on a fresh instance and checks the final step. Earlier
// steps were checked when the shorter prefix was replayed.
func (x *explorer) replay(seq []move, want oven.State) error {
	impl := x.factory()
	for _, m := range seq {
		if err := oven.Apply(impl, m.op, m.seconds); err != nil {
			return err
		}
		x.rep.Operations++
	}
	x.rep.Sequences++

	last := seq[len(seq)-1]
	got := observe(impl)
	if name, ok := violated(got); ok {
		return &InvariantError{
			Invariant: name,
			Group:     "explore",
			Step:      len(seq),
			Op:        last.op,
			Seconds:   last.seconds,
			Observed:  got,
			Trace:     labels(seq),
		}
	}
	if w := expectOf(want); got != w {
		return &MismatchError{
			Group:   "explore",
			Step:    len(seq),
			Op:      last.op,
			Seconds: last.seconds,
			Want:    w,
			Got:     got,
			Trace:   labels(seq),
		}
	}
	return nil
}

func step(s oven.State, m move) oven.State {
	switch m.op {
	case oven.OpReset:
		return oven.Reset()
	case oven.OpTick:
		return s.Tick()
	case oven.OpOpenDoor:
		return s.OpenDoor()
	case oven.OpCloseDoor:
		return s.CloseDoor()
	case oven.OpSetTime:
		return s.SetTime(m.seconds)
	case oven.OpStart:
		return s.Start()
	case oven.OpStop:
		return s.Stop()
	default:
		panic(fmt.Sprintf("conformance: no model transition for %q", m.op))
	}
}

func labels(seq []move) []string {
	out := make([]string, len(seq))
	for i, m := range seq {
		out[i] = m.String()
	}
	return out
}
