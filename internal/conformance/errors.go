package conformance

import (
	"fmt"
	"strings"

	"controlling_microwave/internal/oven"
)

// Invariant names reported by InvariantError.
const (
	InvariantDoorInterlock    = "door-interlock"     // magnetron on implies door closed
	InvariantHeatingNeedsTime = "heating-needs-time" // magnetron on implies time > 0
)

// InvariantError is a safety violation. It aborts a run before any value
// comparison for the same step is made.
type InvariantError struct {
	Invariant string
	Group     string
	Step      int // 1-based within the group
	Op        oven.Op
	Seconds   uint
	Observed  Expect
	Trace     []string
}

func (e *InvariantError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "invariant %s violated in %q step %d (%s): observed %s",
		e.Invariant, e.Group, e.Step, stepLabel(e.Op, e.Seconds), e.Observed)
	writeTrace(&buf, e.Trace)
	return buf.String()
}

// MismatchError is an observable value that differs from the expectation.
type MismatchError struct {
	Group   string
	Step    int
	Op      oven.Op
	Seconds uint
	Want    Expect
	Got     Expect
	Trace   []string
}

func (e *MismatchError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%q step %d (%s): want %s, got %s",
		e.Group, e.Step, stepLabel(e.Op, e.Seconds), e.Want, e.Got)
	writeTrace(&buf, e.Trace)
	return buf.String()
}

func stepLabel(op oven.Op, seconds uint) string {
	if op == oven.OpSetTime {
		return fmt.Sprintf("%s(%d)", op, seconds)
	}
	return string(op)
}

func writeTrace(buf *strings.Builder, trace []string) {
	if len(trace) == 0 {
		return
	}
	fmt.Fprintf(buf, "\ntrace: %s", strings.Join(trace, " -> "))
}
