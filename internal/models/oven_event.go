package models

import "time"

// Event types written to the oven log.
const (
	EventReset        = "RESET"
	EventTick         = "TICK"
	EventOpenDoor     = "OPEN_DOOR"
	EventCloseDoor    = "CLOSE_DOOR"
	EventSetTime      = "SET_TIME"
	EventStart        = "START"
	EventStop         = "STOP"
	EventCookComplete = "COOK_COMPLETE"
)

// OvenEvent is a single log entry.
type OvenEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
