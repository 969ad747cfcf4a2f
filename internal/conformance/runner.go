package conformance

import (
	"controlling_microwave/internal/logger"
	"controlling_microwave/internal/oven"
)

// Report counts what a run executed before it finished or failed.
type Report struct {
	Suite      string `json:"suite"`
	Groups     int    `json:"groups"`
	Steps      int    `json:"steps"`
	Assertions int    `json:"assertions"`
}

type runConfig struct {
	log *logger.Logger
}

// Option configures Run and Explore.
type Option func(*runConfig)

// WithLogger logs group progress at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(c *runConfig) { c.log = l }
}

func newRunConfig(opts []Option) runConfig {
	cfg := runConfig{log: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Run drives impl through every step of s and stops at the first failure.
// The safety invariants are checked after every step, before the step's
// expected values.
func Run(impl oven.Contract, s Suite, opts ...Option) (Report, error) {
	cfg := newRunConfig(opts)
	rep := Report{Suite: s.Name}

	for _, g := range s.Groups {
		cfg.log.Debugw("conformance_group", "suite", s.Name, "group", g.Name, "steps", len(g.Steps))
		rep.Groups++
		for i, st := range g.Steps {
			if err := oven.Apply(impl, st.Op, st.Seconds); err != nil {
				return rep, err
			}
			rep.Steps++

			got := observe(impl)
			if name, ok := violated(got); ok {
				return rep, &InvariantError{
					Invariant: name,
					Group:     g.Name,
					Step:      i + 1,
					Op:        st.Op,
					Seconds:   st.Seconds,
					Observed:  got,
				}
			}
			if st.Want == nil {
				continue
			}
			rep.Assertions++
			if got != *st.Want {
				return rep, &MismatchError{
					Group:   g.Name,
					Step:    i + 1,
					Op:      st.Op,
					Seconds: st.Seconds,
					Want:    *st.Want,
					Got:     got,
				}
			}
		}
	}
	cfg.log.Debugw("conformance_passed", "suite", s.Name, "steps", rep.Steps, "assertions", rep.Assertions)
	return rep, nil
}

// violated returns the first broken safety invariant, door interlock first.
func violated(e Expect) (string, bool) {
	if e.MagnetronEnabled && e.DoorOpen {
		return InvariantDoorInterlock, true
	}
	if e.MagnetronEnabled && e.TimeRemain == 0 {
		return InvariantHeatingNeedsTime, true
	}
	return "", false
}
