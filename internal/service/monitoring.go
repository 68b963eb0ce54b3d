package service

import (
	"context"

	"elevator_dispatch/internal/models"
)

// MonitoringService reads the car's live state. The database copy is an
// audit trail and may lag when a journal write fails.
type MonitoringService struct {
	rt *Runtime
}

func NewMonitoringService(rt *Runtime) *MonitoringService {
	return &MonitoringService{rt: rt}
}

// GetState returns the snapshot the runtime last published.
func (s *MonitoringService) GetState(ctx context.Context) (models.ElevatorState, error) {
	if err := ctx.Err(); err != nil {
		return models.ElevatorState{}, err
	}
	st, _ := s.rt.Current()
	return st, nil
}
