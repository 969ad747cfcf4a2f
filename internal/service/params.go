package service

import (
	"time"

	"controlling_microwave/internal/oven"
)

// Command is one oven operation. Seconds is only read for set_time.
type Command struct {
	Op      oven.Op
	Seconds uint
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "START", "TICK", "COOK_COMPLETE", ...
}
