package repository

import (
	"context"
	"database/sql"
	"time"

	"elevator_dispatch/internal/models"
)

// OperatorRepo stores API operators with their role.
type OperatorRepo interface {
	Create(ctx context.Context, op models.Operator) (int, error)
	GetByName(ctx context.Context, name string) (*models.Operator, error)
}

// StateRepo stores the latest elevator snapshot (single row).
type StateRepo interface {
	Save(ctx context.Context, s models.ElevatorState) error
	Load(ctx context.Context) (models.ElevatorState, error)
}

// EventFilter narrows List. Zero values mean "no bound".
type EventFilter struct {
	From  time.Time
	To    time.Time
	Type  string
	Floor *int
}

type EventRepo interface {
	Append(ctx context.Context, e models.ElevatorEvent) error
	AppendAll(ctx context.Context, events []models.ElevatorEvent) error
	List(ctx context.Context, f EventFilter) ([]models.ElevatorEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Operators OperatorRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Operators: NewOperatorSQLite(db),
	}
}
