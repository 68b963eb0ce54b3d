package models

import "time"

// Event types written to the event log.
const (
	EventRequest   = "REQUEST"
	EventCall      = "CALL"
	EventIgnored   = "IGNORED"
	EventArrive    = "ARRIVE"
	EventDepart    = "DEPART"
	EventIndicator = "INDICATOR"
	EventError     = "ERROR"
)

// ElevatorEvent is a single log entry.
type ElevatorEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Floor       *int      `json:"floor,omitempty"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
