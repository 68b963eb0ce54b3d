package service

import (
	"context"
	"time"

	"elevator_dispatch/internal/models"
	"elevator_dispatch/internal/repository"
)

// Authorization manages operators and the tokens that identify them on
// dispatch requests.
type Authorization interface {
	Register(ctx context.Context, name, password, role string) (int, error)
	IssueToken(ctx context.Context, name, password string) (string, error)
	ParseToken(accessToken string) (models.Operator, error)
}

// Elevator accepts car panel requests and landing calls. Neither blocks on
// motion: the car moves only when the simulator ticks. When ctx carries an
// operator (see WithOperator) it must hold the dispatcher role, and its name
// is recorded on the REQUEST or CALL event.
type Elevator interface {
	RequestFloor(ctx context.Context, floor int) (RequestResult, error)
	CallFloor(ctx context.Context, floor int, direction string) (RequestResult, error)
}

// Monitoring exposes the live elevator state.
type Monitoring interface {
	GetState(ctx context.Context) (models.ElevatorState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ElevatorEvent, error)
}

// Simulator drives the dispatch clock until ctx is cancelled.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Elevator
	Monitoring
	EventLog
	Simulator
	Authorization
}

// Deps are the collaborators NewService wires together.
type Deps struct {
	Repos   *repository.Repository
	Runtime *Runtime
	Auth    AuthConfig
}

func NewService(d Deps) *Service {
	j := newJournal(d.Repos.StateRepo, d.Repos.EventRepo)
	return &Service{
		Elevator:      NewElevatorService(d.Runtime, j),
		Monitoring:    NewMonitoringService(d.Runtime),
		EventLog:      NewEventLogService(d.Repos.EventRepo),
		Simulator:     NewSimulatorService(d.Runtime, j),
		Authorization: NewAuthService(d.Repos.Operators, d.Auth),
	}
}
