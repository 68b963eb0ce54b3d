package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"elevator_dispatch/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	elevatorStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO elevator_state (id, floor, direction, target, next_stop, phase, door, motion,
			up_destinations, down_destinations, lights, hall_calls, min_floor, max_floor, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			floor=excluded.floor,
			direction=excluded.direction,
			target=excluded.target,
			next_stop=excluded.next_stop,
			phase=excluded.phase,
			door=excluded.door,
			motion=excluded.motion,
			up_destinations=excluded.up_destinations,
			down_destinations=excluded.down_destinations,
			lights=excluded.lights,
			hall_calls=excluded.hall_calls,
			min_floor=excluded.min_floor,
			max_floor=excluded.max_floor,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, floor, direction, target, next_stop, phase, door, motion,
			up_destinations, down_destinations, lights, hall_calls, min_floor, max_floor, updated_at
		FROM elevator_state WHERE id=?
	`
)

// marshalFloors encodes a floor list; nil becomes "[]".
func marshalFloors(floors []int) (string, error) {
	if floors == nil {
		floors = []int{}
	}
	b, err := json.Marshal(floors)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalFloors(s string) ([]int, error) {
	floors := []int{}
	if s == "" {
		return floors, nil
	}
	if err := json.Unmarshal([]byte(s), &floors); err != nil {
		return nil, err
	}
	return floors, nil
}

// marshalCalls encodes hall calls; an empty map is stored as NULL.
func marshalCalls(calls map[int]string) (*string, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(calls)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func unmarshalCalls(s sql.NullString) (map[int]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var calls map[int]string
	if err := json.Unmarshal([]byte(s.String), &calls); err != nil {
		return nil, err
	}
	return calls, nil
}

func nullableFloor(f *int) any {
	if f == nil {
		return nil
	}
	return *f
}

func floorPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	f := int(v.Int64)
	return &f
}

// Save upserts the elevator_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state models.ElevatorState) error {
	up, err := marshalFloors(state.UpDestinations)
	if err != nil {
		return fmt.Errorf("encode up destinations: %w", err)
	}
	down, err := marshalFloors(state.DownDestinations)
	if err != nil {
		return fmt.Errorf("encode down destinations: %w", err)
	}
	lights, err := marshalFloors(state.Lights)
	if err != nil {
		return fmt.Errorf("encode lights: %w", err)
	}
	calls, err := marshalCalls(state.HallCalls)
	if err != nil {
		return fmt.Errorf("encode hall calls: %w", err)
	}

	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err = r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		elevatorStateRowID,
		state.Floor,
		state.Direction,
		nullableFloor(state.Target),
		nullableFloor(state.NextStop),
		state.Phase,
		state.Door,
		state.Motion,
		up,
		down,
		lights,
		calls,
		state.MinFloor,
		state.MaxFloor,
		tsUTC,
	)
	return err
}

// Load fetches the elevator_state row. A zero state (ID 0) means nothing saved yet.
func (r *StateSQLite) Load(ctx context.Context) (models.ElevatorState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, elevatorStateRowID)

	var (
		s                models.ElevatorState
		target, next     sql.NullInt64
		up, down, lights string
		calls            sql.NullString
	)
	if err := row.Scan(
		&s.ID,
		&s.Floor,
		&s.Direction,
		&target,
		&next,
		&s.Phase,
		&s.Door,
		&s.Motion,
		&up,
		&down,
		&lights,
		&calls,
		&s.MinFloor,
		&s.MaxFloor,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ElevatorState{}, nil
		}
		return models.ElevatorState{}, err
	}

	var err error
	if s.UpDestinations, err = unmarshalFloors(up); err != nil {
		return models.ElevatorState{}, fmt.Errorf("decode up destinations: %w", err)
	}
	if s.DownDestinations, err = unmarshalFloors(down); err != nil {
		return models.ElevatorState{}, fmt.Errorf("decode down destinations: %w", err)
	}
	if s.Lights, err = unmarshalFloors(lights); err != nil {
		return models.ElevatorState{}, fmt.Errorf("decode lights: %w", err)
	}
	if s.HallCalls, err = unmarshalCalls(calls); err != nil {
		return models.ElevatorState{}, fmt.Errorf("decode hall calls: %w", err)
	}
	s.Target = floorPtr(target)
	s.NextStop = floorPtr(next)
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, nil
}
