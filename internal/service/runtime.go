package service

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"elevator_dispatch/internal/dispatch"
	"elevator_dispatch/internal/logger"
	"elevator_dispatch/internal/models"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

// Runtime serializes every access to the dispatch controller. Requests from
// HTTP handlers and ticks from the simulator never interleave.
type Runtime struct {
	mu      sync.Mutex
	ctrl    *dispatch.Controller
	cfg     dispatch.Config
	log     *logger.Logger
	now     func() time.Time
	pending []models.ElevatorEvent

	last      dispatch.Snapshot
	updatedAt time.Time
	version   uint64
}

// update is what one serialized step produced.
type update struct {
	state   models.ElevatorState
	version uint64
	changed bool
	events  []models.ElevatorEvent
}

// NewRuntime builds the controller for cfg with the runtime as its listener.
func NewRuntime(cfg dispatch.Config, log *logger.Logger) (*Runtime, error) {
	if log == nil {
		log = logger.Nop()
	}
	rt := &Runtime{cfg: cfg, log: log, now: time.Now}
	ctrl, err := dispatch.NewController(cfg, eventRecorder{rt}, log.Named("dispatch"))
	if err != nil {
		return nil, fmt.Errorf("build dispatch controller: %w", err)
	}
	rt.ctrl = ctrl
	rt.last = ctrl.Snapshot()
	rt.updatedAt = rt.now().UTC()
	rt.version = 1
	return rt, nil
}

func (r *Runtime) Config() dispatch.Config { return r.cfg }

// Current returns the latest published state.
func (r *Runtime) Current() (models.ElevatorState, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.toModel(r.copyLast()), r.version
}

// request and call take the operator that pressed the button, nil when the
// caller is in-process.
func (r *Runtime) request(floor int, by *models.Operator) (dispatch.Outcome, update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := len(r.pending)
	outcome := r.ctrl.HandleFloorRequest(floor)
	r.recordRequest(start, models.EventRequest, floor, outcome, by, nil)
	return outcome, r.publish()
}

func (r *Runtime) call(floor int, dir dispatch.CallDirection, by *models.Operator) (dispatch.Outcome, update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := len(r.pending)
	outcome := r.ctrl.HandleCall(floor, dir)
	r.recordRequest(start, models.EventCall, floor, outcome, by, map[string]any{"direction": dir.String()})
	return outcome, r.publish()
}

// advance ticks the controller by dt. A non-nil error wraps
// dispatch.ErrInconsistentState.
func (r *Runtime) advance(dt time.Duration) (update, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.ctrl.Tick(dt)
	if err != nil {
		r.appendEvent(models.EventError, nil, "dispatch invariant broken", map[string]any{"err": err.Error()})
	}
	return r.publish(), err
}

// recordRequest logs the request ahead of the indicator events it caused,
// which were appended from index start on.
func (r *Runtime) recordRequest(start int, typ string, floor int, outcome dispatch.Outcome, by *models.Operator, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["outcome"] = outcome.String()
	if by != nil {
		meta["operator"] = by.Name
		meta["operator_id"] = by.ID
	}
	var ev models.ElevatorEvent
	if outcome == dispatch.OutcomeInvalid {
		meta["kind"] = typ
		ev = r.newEvent(models.EventIgnored, &floor, fmt.Sprintf("floor %d outside [%d, %d]", floor, r.cfg.MinFloor, r.cfg.MaxFloor), meta)
	} else {
		ev = r.newEvent(typ, &floor, fmt.Sprintf("%s for floor %d: %s", typ, floor, outcome), meta)
	}
	r.pending = slices.Insert(r.pending, start, ev)
}

func (r *Runtime) appendEvent(typ string, floor *int, desc string, meta any) {
	r.pending = append(r.pending, r.newEvent(typ, floor, desc, meta))
}

func (r *Runtime) newEvent(typ string, floor *int, desc string, meta any) models.ElevatorEvent {
	return models.ElevatorEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  r.now().UTC(),
		Type:        typ,
		Floor:       floor,
		Description: desc,
		Metadata:    meta,
	}
}

// publish must be called with mu held.
func (r *Runtime) publish() update {
	snap := r.ctrl.Snapshot()
	changed := !reflect.DeepEqual(snap, r.last)
	if changed {
		r.last = snap
		r.updatedAt = r.now().UTC()
		r.version++
	}
	events := r.pending
	r.pending = nil
	return update{
		state:   r.toModel(r.copyLast()),
		version: r.version,
		changed: changed,
		events:  events,
	}
}

// copyLast hands out a snapshot that does not alias the retained one.
func (r *Runtime) copyLast() dispatch.Snapshot {
	var out dispatch.Snapshot
	if err := deepcopy.Copy(&out, &r.last); err != nil {
		r.log.Warnw("snapshot_copy_failed", "err", err)
		return r.ctrl.Snapshot()
	}
	return out
}

func (r *Runtime) toModel(s dispatch.Snapshot) models.ElevatorState {
	st := models.ElevatorState{
		ID:               1,
		Floor:            s.Floor,
		Direction:        s.Direction.String(),
		Phase:            s.Phase.String(),
		Door:             s.Door.String(),
		Motion:           s.Motion.String(),
		UpDestinations:   s.UpDestinations,
		DownDestinations: s.DownDestinations,
		Lights:           s.Lights,
		MinFloor:         r.cfg.MinFloor,
		MaxFloor:         r.cfg.MaxFloor,
		UpdatedAt:        r.updatedAt,
	}
	if s.HasTarget {
		target := s.Target
		st.Target = &target
	}
	if s.HasNextStop {
		next := s.NextStop
		st.NextStop = &next
	}
	if len(s.Calls) > 0 {
		st.HallCalls = make(map[int]string, len(s.Calls))
		for f, c := range s.Calls {
			st.HallCalls[f] = c.String()
		}
	}
	return st
}

// eventRecorder turns controller notifications into pending log events.
// The controller only calls it while Runtime.mu is held.
type eventRecorder struct {
	r *Runtime
}

func (e eventRecorder) OnArrive(floor int) {
	e.r.log.Infow("car_arrived", "floor", floor)
	e.r.appendEvent(models.EventArrive, &floor, fmt.Sprintf("arrived at floor %d, door open", floor), nil)
}

func (e eventRecorder) OnDepart(floor int) {
	dir := e.r.ctrl.Direction()
	e.r.log.Infow("car_departed", "floor", floor, "direction", dir.String())
	e.r.appendEvent(models.EventDepart, &floor, fmt.Sprintf("door closed at floor %d", floor),
		map[string]any{"direction": dir.String(), "phase": e.r.ctrl.Phase().String()})
}

func (e eventRecorder) OnIndicatorChanged(floor int, on bool) {
	e.r.log.Debugw("indicator_changed", "floor", floor, "on", on)
	state := "off"
	if on {
		state = "on"
	}
	e.r.appendEvent(models.EventIndicator, &floor, fmt.Sprintf("floor %d light %s", floor, state),
		map[string]any{"on": on})
}
