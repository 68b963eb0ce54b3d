package service

import (
	"context"
	"fmt"
	"sync"

	"elevator_dispatch/internal/models"
	"elevator_dispatch/internal/repository"
)

// journal writes snapshots and events to storage. Request handlers and the
// simulator share one journal so an older snapshot never overwrites a newer one.
type journal struct {
	mu           sync.Mutex
	stateRepo    repository.StateRepo
	eventRepo    repository.EventRepo
	savedVersion uint64
}

func newJournal(stateRepo repository.StateRepo, eventRepo repository.EventRepo) *journal {
	return &journal{stateRepo: stateRepo, eventRepo: eventRepo}
}

func (j *journal) record(ctx context.Context, u update) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.eventRepo.AppendAll(ctx, u.events); err != nil {
		return fmt.Errorf("append %d events: %w", len(u.events), err)
	}
	if u.version <= j.savedVersion {
		return nil
	}
	if err := j.stateRepo.Save(ctx, u.state); err != nil {
		return fmt.Errorf("save state v%d: %w", u.version, err)
	}
	j.savedVersion = u.version
	return nil
}

// saveState forces a snapshot write, used once at startup.
func (j *journal) saveState(ctx context.Context, st models.ElevatorState, version uint64) error {
	return j.record(ctx, update{state: st, version: version})
}
