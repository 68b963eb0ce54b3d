package service

import (
	"time"

	"elevator_dispatch/internal/models"
)

// RequestResult reports how a request or call was classified.
type RequestResult struct {
	Outcome string               // accepted | duplicate | current_floor | ignored
	State   models.ElevatorState // state right after classification
}

// LogFilter supports history filtering by time range, type and floor.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "REQUEST", "CALL", "IGNORED", "ARRIVE", "DEPART", "INDICATOR", "ERROR"
	Floor *int
}
