package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"elevator_dispatch/internal/dispatch"
	"elevator_dispatch/internal/models"
)

var errInvalidCallDirection = errors.New("invalid call direction: must be UP, DOWN or BOTH")

// ElevatorService is the inbound side of the dispatcher.
type ElevatorService struct {
	rt      *Runtime
	journal *journal
}

func NewElevatorService(rt *Runtime, j *journal) *ElevatorService {
	return &ElevatorService{rt: rt, journal: j}
}

// RequestFloor handles a car panel button. Out-of-range floors are ignored,
// not rejected: the result says "ignored" and the error is nil.
func (s *ElevatorService) RequestFloor(ctx context.Context, floor int) (RequestResult, error) {
	by, err := dispatcherFrom(ctx)
	if err != nil {
		return RequestResult{}, err
	}
	outcome, u := s.rt.request(floor, by)
	if err := s.journal.record(ctx, u); err != nil {
		return RequestResult{}, err
	}
	return RequestResult{Outcome: outcome.String(), State: u.state}, nil
}

// CallFloor handles a landing call button.
func (s *ElevatorService) CallFloor(ctx context.Context, floor int, direction string) (RequestResult, error) {
	by, err := dispatcherFrom(ctx)
	if err != nil {
		return RequestResult{}, err
	}
	dir, err := dispatch.ParseCallDirection(strings.ToUpper(strings.TrimSpace(direction)))
	if err != nil {
		return RequestResult{}, errInvalidCallDirection
	}
	outcome, u := s.rt.call(floor, dir, by)
	if err := s.journal.record(ctx, u); err != nil {
		return RequestResult{}, err
	}
	return RequestResult{Outcome: outcome.String(), State: u.state}, nil
}

// dispatcherFrom returns the operator on ctx, or nil for in-process callers.
func dispatcherFrom(ctx context.Context) (*models.Operator, error) {
	op, ok := OperatorFrom(ctx)
	if !ok {
		return nil, nil
	}
	if !op.CanDispatch() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotDispatcher, op.Name, op.Role)
	}
	return &op, nil
}

// IsValidationError reports errors caused by caller input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		errInvalidCallDirection, errInvalidTimeRange,
		errInvalidRole, errEmptyName, errEmptyPassword,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
