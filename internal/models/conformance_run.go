package models

import "time"

// Conformance run outcomes.
const (
	RunPassed            = "PASSED"
	RunInvariantViolated = "INVARIANT_VIOLATED"
	RunMismatch          = "MISMATCH"
	RunError             = "ERROR"
)

// ConformanceRun records one execution of the conformance suite.
type ConformanceRun struct {
	RunID          string    `json:"run_id"`
	Implementation string    `json:"implementation"`
	Suite          string    `json:"suite"`
	Result         string    `json:"result"`
	Steps          int       `json:"steps"`
	Assertions     int       `json:"assertions"`
	Explored       int       `json:"explored,omitempty"` // sequences checked by exhaustive exploration
	Failure        string    `json:"failure,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	DurationMs     int64     `json:"duration_ms"`
}

// Passed reports whether the run succeeded.
func (r ConformanceRun) Passed() bool { return r.Result == RunPassed }
