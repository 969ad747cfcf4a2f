package models

import "time"

// OvenState is the observable snapshot of the oven.
type OvenState struct {
	State            string    `json:"state"` // CLOSED_NO_TIME_NO_MTRON | CLOSED_TIME_NO_MTRON | CLOSED_TIME_MTRON | OPEN_NO_TIME | OPEN_TIME
	DoorOpen         bool      `json:"door_open"`
	MagnetronEnabled bool      `json:"magnetron_enabled"`
	TimeRemain       uint      `json:"time_remain"` // ticks
	UpdatedAt        time.Time `json:"updated_at"`
}
