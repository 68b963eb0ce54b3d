package service

import (
	"context"
	"errors"
	"time"

	"elevator_dispatch/internal/dispatch"
	"elevator_dispatch/internal/logger"
)

// SimulatorService is the clock of the dispatcher: each tick advances travel
// and dwell timers by the real time elapsed since the previous tick.
type SimulatorService struct {
	rt      *Runtime
	journal *journal
	log     *logger.Logger
}

func NewSimulatorService(rt *Runtime, j *journal) *SimulatorService {
	return &SimulatorService{rt: rt, journal: j, log: rt.log.Named("simulator")}
}

// Run ticks at the given interval until ctx is cancelled or the dispatcher
// reports an inconsistent state.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	st, version := s.rt.Current()
	if err := s.journal.saveState(ctx, st, version); err != nil {
		s.log.Errorw("initial_state_save_failed", "err", err)
	}

	t := time.NewTicker(tick)
	defer t.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			dt := now.Sub(last)
			last = now
			if err := s.step(ctx, dt); err != nil {
				s.log.Errorw("simulator_halted", "err", err)
				return
			}
		}
	}
}

// step advances the dispatcher by dt and persists what changed. Storage
// failures are logged and the clock keeps running; a broken dispatch
// invariant is returned.
func (s *SimulatorService) step(ctx context.Context, dt time.Duration) error {
	u, err := s.rt.advance(dt)
	if u.changed || len(u.events) > 0 {
		if jerr := s.journal.record(ctx, u); jerr != nil {
			s.log.Warnw("journal_write_failed", "err", jerr, "events", len(u.events))
		}
	}
	if err != nil {
		if errors.Is(err, dispatch.ErrInconsistentState) {
			return err
		}
		s.log.Errorw("tick_failed", "err", err)
	}
	return nil
}
