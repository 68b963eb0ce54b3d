package dispatch

import (
	"fmt"
	"time"

	"elevator_dispatch/internal/logger"
)

// Controller owns the elevator state and the destination set. It is not safe
// for concurrent use: callers serialize HandleFloorRequest, HandleCall and Tick.
type Controller struct {
	cfg      Config
	registry *FloorRegistry
	dests    *DestinationSet
	listener Listener
	log      *logger.Logger

	floor     int
	direction Direction
	target    int
	hasTarget bool
	phase     Phase
	// time spent in the current hop or dwell
	elapsed time.Duration
}

// NewController validates cfg and returns an idle car parked at cfg.InitialFloor.
// A nil listener or logger is allowed.
func NewController(cfg Config, listener Listener, log *logger.Logger) (*Controller, error) {
	registry, err := NewFloorRegistry(cfg.MinFloor, cfg.MaxFloor)
	if err != nil {
		return nil, err
	}
	if !registry.IsValidFloor(cfg.InitialFloor) {
		return nil, fmt.Errorf("initial floor %d outside [%d, %d]", cfg.InitialFloor, cfg.MinFloor, cfg.MaxFloor)
	}
	if cfg.TravelTimePerFloor <= 0 {
		return nil, fmt.Errorf("travel time per floor must be positive, got %s", cfg.TravelTimePerFloor)
	}
	if cfg.DwellDuration <= 0 {
		return nil, fmt.Errorf("dwell duration must be positive, got %s", cfg.DwellDuration)
	}
	if listener == nil {
		listener = nopListener{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		cfg:      cfg,
		registry: registry,
		dests:    NewDestinationSet(registry),
		listener: listener,
		log:      log,
		floor:    cfg.InitialFloor,
	}, nil
}

// Accessors. Callers must serialize with HandleFloorRequest, HandleCall and Tick.
func (c *Controller) Registry() *FloorRegistry      { return c.registry }
func (c *Controller) Destinations() *DestinationSet { return c.dests }
func (c *Controller) Floor() int                    { return c.floor }
func (c *Controller) Direction() Direction          { return c.direction }
func (c *Controller) Phase() Phase                  { return c.phase }

// Target is the farthest stop of the current sweep.
func (c *Controller) Target() (int, bool) { return c.target, c.hasTarget }

// NextStop is the floor the car will open its door at next.
func (c *Controller) NextStop() (int, bool) { return nextStop(c.direction, c.dests) }

// Door is open only while the car dwells.
func (c *Controller) Door() DoorState {
	if c.phase == PhaseDoorOpen {
		return DoorOpen
	}
	return DoorClosed
}

// Motion is InTransit only while moving.
func (c *Controller) Motion() MotionState {
	if c.phase == PhaseMoving {
		return InTransit
	}
	return Stationary
}

// HandleFloorRequest classifies f into the destination set and re-resolves the
// target. It never blocks and never fails: invalid floors and duplicates are
// reported through the Outcome only.
func (c *Controller) HandleFloorRequest(f int) Outcome {
	outcome := c.schedule(f)
	switch outcome {
	case OutcomeAccepted:
		c.retarget()
	case OutcomeInvalid:
		c.log.Debugw("request_ignored", "floor", f, "min", c.cfg.MinFloor, "max", c.cfg.MaxFloor)
	}
	c.syncIndicators()
	return outcome
}

// HandleCall registers a landing call. The floor is scheduled like a car
// request and the landing lamp stays lit until the floor is serviced.
func (c *Controller) HandleCall(f int, dir CallDirection) Outcome {
	outcome := c.HandleFloorRequest(f)
	if outcome == OutcomeAccepted || outcome == OutcomeDuplicate {
		c.registry.AddCall(f, dir)
	}
	return outcome
}

func (c *Controller) schedule(f int) Outcome {
	if !c.registry.IsValidFloor(f) {
		return OutcomeInvalid
	}
	if c.dests.Contains(f) {
		return OutcomeDuplicate
	}
	// door already open here
	if f == c.floor && c.phase != PhaseMoving {
		return OutcomeCurrentFloor
	}

	switch c.direction {
	case Up:
		if f > c.floor {
			c.dests.AddUp(f)
		} else {
			c.dests.AddDown(f)
		}
	case Down:
		if f < c.floor {
			c.dests.AddDown(f)
		} else {
			c.dests.AddUp(f)
		}
	default:
		if f > c.floor {
			c.dests.AddUp(f)
		} else {
			c.dests.AddDown(f)
		}
	}
	return OutcomeAccepted
}

// retarget runs the resolver. An idle car with a fresh target starts moving.
func (c *Controller) retarget() {
	c.direction, c.target, c.hasTarget = resolve(c.direction, c.dests)
	if c.phase == PhaseIdle && c.hasTarget {
		c.phase = PhaseMoving
		c.elapsed = 0
	}
}

// Tick advances the travel or dwell timer by dt. It returns an error wrapping
// ErrInconsistentState if an invariant is broken afterwards.
func (c *Controller) Tick(dt time.Duration) error {
	switch c.phase {
	case PhaseIdle:
		c.retarget()
	case PhaseMoving:
		c.advance(dt)
	case PhaseDoorOpen:
		c.dwell(dt)
	}
	c.syncIndicators()
	return c.checkInvariants()
}

func (c *Controller) advance(dt time.Duration) {
	if c.stopsHere() {
		c.arrive()
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.cfg.TravelTimePerFloor {
		next := c.floor + c.direction.step()
		if next == c.floor || !c.registry.IsValidFloor(next) {
			c.elapsed = 0
			return
		}
		c.elapsed -= c.cfg.TravelTimePerFloor
		c.floor = next
		if c.stopsHere() {
			c.arrive()
			return
		}
	}
}

// stopsHere reports whether the current floor is pending in the active sweep.
func (c *Controller) stopsHere() bool {
	switch c.direction {
	case Up:
		return c.dests.ContainsUp(c.floor)
	case Down:
		return c.dests.ContainsDown(c.floor)
	}
	return false
}

func (c *Controller) arrive() {
	if c.direction == Up {
		c.dests.RemoveUp(c.floor)
	} else {
		c.dests.RemoveDown(c.floor)
	}
	c.registry.ClearCalls(c.floor)
	if c.hasTarget && c.target == c.floor {
		c.target, c.hasTarget = 0, false
	}
	c.phase = PhaseDoorOpen
	c.elapsed = 0
	c.syncIndicators()
	c.listener.OnArrive(c.floor)
}

func (c *Controller) dwell(dt time.Duration) {
	c.elapsed += dt
	if c.elapsed < c.cfg.DwellDuration {
		return
	}
	c.elapsed = 0
	c.direction, c.target, c.hasTarget = resolve(c.direction, c.dests)
	if c.hasTarget {
		c.phase = PhaseMoving
	} else {
		c.phase = PhaseIdle
	}
	c.listener.OnDepart(c.floor)
}

// syncIndicators makes every light mirror set membership.
func (c *Controller) syncIndicators() {
	for f := c.cfg.MinFloor; f <= c.cfg.MaxFloor; f++ {
		on := c.dests.Contains(f)
		if !on {
			c.registry.ClearCalls(f)
		}
		if c.registry.SetLight(f, on) {
			c.listener.OnIndicatorChanged(f, on)
		}
	}
}

func (c *Controller) checkInvariants() error {
	var problem string
	switch {
	case !c.registry.IsValidFloor(c.floor):
		problem = fmt.Sprintf("car at floor %d outside [%d, %d]", c.floor, c.cfg.MinFloor, c.cfg.MaxFloor)
	case c.direction == Idle && c.hasTarget:
		problem = fmt.Sprintf("idle car has target %d", c.target)
	case c.hasTarget && !c.dests.Contains(c.target):
		problem = fmt.Sprintf("target %d is not scheduled", c.target)
	case c.phase == PhaseMoving && !c.hasTarget:
		problem = "moving car has no target"
	default:
		return nil
	}
	c.log.Errorw("dispatch_inconsistent_state", "problem", problem, "floor", c.floor,
		"direction", c.direction.String(), "phase", c.phase.String())
	return fmt.Errorf("%w: %s", ErrInconsistentState, problem)
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	next, hasNext := c.NextStop()
	return Snapshot{
		Floor:            c.floor,
		Direction:        c.direction,
		Target:           c.target,
		HasTarget:        c.hasTarget,
		NextStop:         next,
		HasNextStop:      hasNext,
		Phase:            c.phase,
		Door:             c.Door(),
		Motion:           c.Motion(),
		UpDestinations:   c.dests.Up(),
		DownDestinations: c.dests.Down(),
		Lights:           c.registry.LitFloors(),
		Calls:            c.registry.Calls(),
	}
}

type nopListener struct{}

func (nopListener) OnArrive(int)                 {}
func (nopListener) OnDepart(int)                 {}
func (nopListener) OnIndicatorChanged(int, bool) {}
