package dispatch

import (
	"errors"
	"time"
)

// Direction of travel. Idle means nothing is scheduled.
type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return "IDLE"
	}
}

// step is the floor delta of one hop in direction d.
func (d Direction) step() int {
	switch d {
	case Up:
		return 1
	case Down:
		return -1
	default:
		return 0
	}
}

// Phase is the controller state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseDoorOpen
)

func (p Phase) String() string {
	switch p {
	case PhaseMoving:
		return "MOVING"
	case PhaseDoorOpen:
		return "DOOR_OPEN"
	default:
		return "IDLE"
	}
}

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (d DoorState) String() string {
	if d == DoorOpen {
		return "OPEN"
	}
	return "CLOSED"
}

type MotionState int

const (
	Stationary MotionState = iota
	InTransit
)

func (m MotionState) String() string {
	if m == InTransit {
		return "IN_TRANSIT"
	}
	return "STATIONARY"
}

// Outcome tells the caller what happened to a request. None of them is an error.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeDuplicate
	OutcomeCurrentFloor
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeCurrentFloor:
		return "current_floor"
	default:
		return "ignored"
	}
}

// ErrInconsistentState marks a broken scheduler invariant. It is a programming
// error and is never retried.
var ErrInconsistentState = errors.New("inconsistent dispatch state")

// Config is fixed at construction.
type Config struct {
	MinFloor           int
	MaxFloor           int
	InitialFloor       int
	DwellDuration      time.Duration
	TravelTimePerFloor time.Duration
}

// Listener receives the outbound notifications of the controller.
// Calls happen synchronously inside HandleFloorRequest, HandleCall and Tick.
type Listener interface {
	OnArrive(floor int)
	OnDepart(floor int)
	OnIndicatorChanged(floor int, on bool)
}

// Snapshot is a copy of the elevator state at one instant.
type Snapshot struct {
	Floor            int
	Direction        Direction
	Target           int
	HasTarget        bool
	NextStop         int
	HasNextStop      bool
	Phase            Phase
	Door             DoorState
	Motion           MotionState
	UpDestinations   []int
	DownDestinations []int
	Lights           []int
	Calls            map[int]CallDirection
}
