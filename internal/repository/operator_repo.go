package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"elevator_dispatch/internal/models"
)

// ErrOperatorExists is returned when the operator name is already taken.
var ErrOperatorExists = errors.New("operator already exists")

// OperatorSQLite stores the people and systems allowed to drive the car.
type OperatorSQLite struct {
	db *sql.DB
}

func NewOperatorSQLite(db *sql.DB) *OperatorSQLite {
	return &OperatorSQLite{db: db}
}

var _ OperatorRepo = (*OperatorSQLite)(nil)

const (
	insertOperatorSQL       = `INSERT INTO operators (name, role, password_hash) VALUES (?, ?, ?)`
	selectOperatorByNameSQL = `SELECT id, name, role, password_hash FROM operators WHERE name = ?`
)

// Create registers op and returns its ID. A duplicate name yields
// ErrOperatorExists.
func (r *OperatorSQLite) Create(ctx context.Context, op models.Operator) (int, error) {
	res, err := r.db.ExecContext(ctx, insertOperatorSQL, op.Name, op.Role, op.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("operator %q: %w", op.Name, ErrOperatorExists)
		}
		return 0, fmt.Errorf("insert operator %q: %w", op.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for operator %q: %w", op.Name, err)
	}
	return int(id), nil
}

// GetByName returns (nil, nil) when no operator has that name.
func (r *OperatorSQLite) GetByName(ctx context.Context, name string) (*models.Operator, error) {
	var op models.Operator
	err := r.db.QueryRowContext(ctx, selectOperatorByNameSQL, name).
		Scan(&op.ID, &op.Name, &op.Role, &op.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select operator %q: %w", name, err)
	}
	return &op, nil
}

// modernc surfaces constraint failures only through the error text.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
