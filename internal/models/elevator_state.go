package models

import "time"

// ElevatorState is the published snapshot of the car.
type ElevatorState struct {
	ID               int            `json:"id"`
	Floor            int            `json:"floor"`
	Direction        string         `json:"direction"`            // UP | DOWN | IDLE
	Target           *int           `json:"target,omitempty"`     // farthest stop of the sweep
	NextStop         *int           `json:"next_stop,omitempty"`  // where the door opens next
	Phase            string         `json:"phase"`                // IDLE | MOVING | DOOR_OPEN
	Door             string         `json:"door"`                 // OPEN | CLOSED
	Motion           string         `json:"motion"`               // STATIONARY | IN_TRANSIT
	UpDestinations   []int          `json:"up_destinations"`      // ascending
	DownDestinations []int          `json:"down_destinations"`    // ascending
	Lights           []int          `json:"lights"`               // floors with request light on
	HallCalls        map[int]string `json:"hall_calls,omitempty"` // floor -> UP | DOWN | BOTH
	MinFloor         int            `json:"min_floor"`
	MaxFloor         int            `json:"max_floor"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
