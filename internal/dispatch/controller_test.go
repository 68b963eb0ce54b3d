package dispatch

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

const (
	testTravel = time.Second
	testDwell  = 3 * time.Second
)

// recorder collects listener notifications in order.
type recorder struct {
	log      []string
	arrivals []int
	departs  []int
}

func (r *recorder) OnArrive(f int) {
	r.arrivals = append(r.arrivals, f)
	r.log = append(r.log, fmt.Sprintf("arrive %d", f))
}

func (r *recorder) OnDepart(f int) {
	r.departs = append(r.departs, f)
	r.log = append(r.log, fmt.Sprintf("depart %d", f))
}

func (r *recorder) OnIndicatorChanged(f int, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	r.log = append(r.log, fmt.Sprintf("light %d %s", f, state))
}

func newTestController(t *testing.T, initial int) (*Controller, *recorder) {
	t.Helper()
	rec := &recorder{}
	c, err := NewController(Config{
		MinFloor:           0,
		MaxFloor:           9,
		InitialFloor:       initial,
		DwellDuration:      testDwell,
		TravelTimePerFloor: testTravel,
	}, rec, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, rec
}

// tick advances one travel period and checks the per-tick invariants.
func tick(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.Tick(testTravel); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	assertLightsMatchSet(t, c)
}

// runUntilIdle ticks until the car parks, failing after limit ticks.
func runUntilIdle(t *testing.T, c *Controller, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		tick(t, c)
		if c.Phase() == PhaseIdle {
			return
		}
	}
	t.Fatalf("car still %v after %d ticks", c.Phase(), limit)
}

func assertLightsMatchSet(t *testing.T, c *Controller) {
	t.Helper()
	for f := 0; f <= 9; f++ {
		if got, want := c.Registry().GetLight(f), c.Destinations().Contains(f); got != want {
			t.Fatalf("light %d = %v, scheduled = %v", f, got, want)
		}
	}
}

func TestNewController_ValidatesConfig(t *testing.T) {
	base := Config{MinFloor: 0, MaxFloor: 9, DwellDuration: time.Second, TravelTimePerFloor: time.Second}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted range", func(c *Config) { c.MinFloor, c.MaxFloor = 9, 0 }},
		{"initial floor out of range", func(c *Config) { c.InitialFloor = 12 }},
		{"zero travel time", func(c *Config) { c.TravelTimePerFloor = 0 }},
		{"zero dwell", func(c *Config) { c.DwellDuration = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if _, err := NewController(cfg, nil, nil); err == nil {
				t.Fatalf("expected config error")
			}
		})
	}

	c, err := NewController(base, nil, nil)
	if err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if c.Phase() != PhaseIdle || c.Direction() != Idle || c.Door() != DoorClosed || c.Motion() != Stationary {
		t.Fatalf("unexpected initial state: %+v", c.Snapshot())
	}
	if _, ok := c.Target(); ok {
		t.Fatalf("fresh controller must have no target")
	}
}

func TestHandleFloorRequest_InvalidFloorLeavesStateUnchanged(t *testing.T) {
	c, rec := newTestController(t, 4)
	c.HandleFloorRequest(7)
	before := c.Snapshot()
	logLen := len(rec.log)

	for _, f := range []int{-1, 10, 100, -50} {
		if got := c.HandleFloorRequest(f); got != OutcomeInvalid {
			t.Fatalf("HandleFloorRequest(%d) = %v, want invalid", f, got)
		}
	}
	if after := c.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(rec.log) != logLen {
		t.Fatalf("invalid requests produced notifications: %v", rec.log[logLen:])
	}
}

func TestHandleFloorRequest_Idempotent(t *testing.T) {
	for f := 0; f <= 9; f++ {
		once, _ := newTestController(t, 4)
		twice, _ := newTestController(t, 4)

		once.HandleFloorRequest(f)
		twice.HandleFloorRequest(f)
		second := twice.HandleFloorRequest(f)

		if f != 4 && second != OutcomeDuplicate {
			t.Fatalf("second request for %d = %v, want duplicate", f, second)
		}
		if !reflect.DeepEqual(once.Snapshot(), twice.Snapshot()) {
			t.Fatalf("floor %d: one request %+v, two requests %+v", f, once.Snapshot(), twice.Snapshot())
		}
	}
}

// Car at 1 asked for 9, then for 8 while passing 2: the sweep is extended,
// 8 is served before 9.
func TestScenario_SweepExtendedNotReversed(t *testing.T) {
	c, rec := newTestController(t, 1)

	if got := c.HandleFloorRequest(9); got != OutcomeAccepted {
		t.Fatalf("request 9 = %v", got)
	}
	if target, _ := c.Target(); c.Direction() != Up || target != 9 {
		t.Fatalf("after request 9: direction %v target %d", c.Direction(), target)
	}
	if c.Phase() != PhaseMoving || c.Motion() != InTransit {
		t.Fatalf("car should be moving, phase %v", c.Phase())
	}

	tick(t, c)
	if c.Floor() != 2 {
		t.Fatalf("floor = %d, want 2", c.Floor())
	}

	c.HandleFloorRequest(8)
	if got := c.Destinations().Up(); !reflect.DeepEqual(got, []int{8, 9}) {
		t.Fatalf("up destinations = %v", got)
	}
	if next, _ := c.NextStop(); next != 8 {
		t.Fatalf("next stop = %d, want 8", next)
	}
	if target, _ := c.Target(); target != 9 || c.Direction() != Up {
		t.Fatalf("sweep target %d direction %v, want 9 UP", target, c.Direction())
	}

	runUntilIdle(t, c, 40)
	if !reflect.DeepEqual(rec.arrivals, []int{8, 9}) {
		t.Fatalf("arrivals = %v, want [8 9]", rec.arrivals)
	}
	if c.Direction() != Idle {
		t.Fatalf("direction = %v after sweep", c.Direction())
	}
}

// Car moving up from 5 to 7, asked for 3: 3 waits for the return sweep.
func TestScenario_RequestBehindDeferredToReturnSweep(t *testing.T) {
	c, rec := newTestController(t, 5)
	c.HandleFloorRequest(7)

	if got := c.HandleFloorRequest(3); got != OutcomeAccepted {
		t.Fatalf("request 3 = %v", got)
	}
	if got := c.Destinations().Down(); !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("down destinations = %v", got)
	}
	if got := c.Destinations().Up(); !reflect.DeepEqual(got, []int{7}) {
		t.Fatalf("up destinations = %v", got)
	}
	if target, _ := c.Target(); target != 7 || c.Direction() != Up {
		t.Fatalf("target %d direction %v, want 7 UP", target, c.Direction())
	}

	runUntilIdle(t, c, 40)
	if !reflect.DeepEqual(rec.arrivals, []int{7, 3}) {
		t.Fatalf("arrivals = %v, want [7 3]", rec.arrivals)
	}
}

func TestScenario_RequestForCurrentFloorWhileIdle(t *testing.T) {
	c, rec := newTestController(t, 0)

	if got := c.HandleFloorRequest(0); got != OutcomeCurrentFloor {
		t.Fatalf("request 0 = %v, want current_floor", got)
	}
	if c.Phase() != PhaseIdle || c.Direction() != Idle || !c.Destinations().IsEmpty() {
		t.Fatalf("car should remain idle: %+v", c.Snapshot())
	}
	tick(t, c)
	if len(rec.log) != 0 {
		t.Fatalf("no notifications expected, got %v", rec.log)
	}
}

func TestSweepCompletion(t *testing.T) {
	t.Run("reverses when down side pending", func(t *testing.T) {
		c, rec := newTestController(t, 5)
		c.HandleFloorRequest(8)
		c.HandleFloorRequest(2)

		for len(rec.departs) == 0 {
			tick(t, c)
		}
		if rec.departs[0] != 8 {
			t.Fatalf("first departure from %d, want 8", rec.departs[0])
		}
		if target, _ := c.Target(); c.Direction() != Down || target != 2 {
			t.Fatalf("after up sweep: direction %v target %d, want DOWN 2", c.Direction(), target)
		}
	})

	t.Run("goes idle when nothing pending", func(t *testing.T) {
		c, rec := newTestController(t, 5)
		c.HandleFloorRequest(8)

		for len(rec.departs) == 0 {
			tick(t, c)
		}
		if c.Direction() != Idle || c.Phase() != PhaseIdle {
			t.Fatalf("direction %v phase %v, want idle", c.Direction(), c.Phase())
		}
		if _, ok := c.Target(); ok {
			t.Fatalf("idle car must have no target")
		}
	})
}

func TestArrival_OpensDoorThenDwells(t *testing.T) {
	c, rec := newTestController(t, 0)
	c.HandleFloorRequest(2)

	tick(t, c)
	tick(t, c)
	if c.Floor() != 2 || c.Phase() != PhaseDoorOpen || c.Door() != DoorOpen {
		t.Fatalf("floor %d phase %v door %v", c.Floor(), c.Phase(), c.Door())
	}
	if c.Destinations().Contains(2) || c.Registry().GetLight(2) {
		t.Fatalf("serviced floor must be removed and dark")
	}

	// dwell is 3 travel periods
	tick(t, c)
	tick(t, c)
	if c.Phase() != PhaseDoorOpen {
		t.Fatalf("door closed early")
	}
	tick(t, c)
	if c.Phase() != PhaseIdle || c.Door() != DoorClosed {
		t.Fatalf("phase %v door %v after dwell", c.Phase(), c.Door())
	}

	want := []string{"light 2 on", "light 2 off", "arrive 2", "depart 2"}
	if !reflect.DeepEqual(rec.log, want) {
		t.Fatalf("notifications = %v, want %v", rec.log, want)
	}
}

func TestTick_SubPeriodSteps(t *testing.T) {
	c, _ := newTestController(t, 0)
	c.HandleFloorRequest(3)

	for i := 0; i < 3; i++ {
		if err := c.Tick(250 * time.Millisecond); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if c.Floor() != 0 {
		t.Fatalf("car moved before a full travel period: floor %d", c.Floor())
	}
	if err := c.Tick(250 * time.Millisecond); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.Floor() != 1 {
		t.Fatalf("floor = %d, want 1", c.Floor())
	}
}

func TestRequestForOpenDoorFloorIsNoop(t *testing.T) {
	c, _ := newTestController(t, 0)
	c.HandleFloorRequest(2)
	tick(t, c)
	tick(t, c)
	if c.Phase() != PhaseDoorOpen {
		t.Fatalf("expected door open at 2, phase %v", c.Phase())
	}
	if got := c.HandleFloorRequest(2); got != OutcomeCurrentFloor {
		t.Fatalf("request 2 with door open = %v", got)
	}
	if !c.Destinations().IsEmpty() {
		t.Fatalf("set should stay empty")
	}
}

func TestRequestDuringDwellWaitsForDoor(t *testing.T) {
	c, _ := newTestController(t, 0)
	c.HandleFloorRequest(2)
	tick(t, c)
	tick(t, c)

	c.HandleFloorRequest(6)
	if c.Phase() != PhaseDoorOpen {
		t.Fatalf("request must not cut the dwell short, phase %v", c.Phase())
	}
	if target, _ := c.Target(); target != 6 || c.Direction() != Up {
		t.Fatalf("target %d direction %v", target, c.Direction())
	}
	for i := 0; i < 3; i++ {
		tick(t, c)
	}
	if c.Phase() != PhaseMoving || c.Floor() != 2 {
		t.Fatalf("phase %v floor %d after dwell", c.Phase(), c.Floor())
	}
}

func TestHandleCall_LampsFollowService(t *testing.T) {
	c, _ := newTestController(t, 0)

	if got := c.HandleCall(0, CallUp); got != OutcomeCurrentFloor || c.Registry().Call(0) != CallNone {
		t.Fatalf("call at current floor should not light a lamp")
	}
	if got := c.HandleCall(6, CallDown); got != OutcomeAccepted {
		t.Fatalf("call 6 = %v", got)
	}
	if got := c.HandleCall(6, CallUp); got != OutcomeDuplicate {
		t.Fatalf("second call 6 = %v", got)
	}
	if c.Registry().Call(6) != CallBoth {
		t.Fatalf("hall lamps at 6 = %v, want BOTH", c.Registry().Call(6))
	}
	if got := c.HandleCall(42, CallUp); got != OutcomeInvalid {
		t.Fatalf("call 42 = %v", got)
	}

	for c.Floor() != 6 || c.Phase() != PhaseDoorOpen {
		tick(t, c)
	}
	if c.Registry().Call(6) != CallNone {
		t.Fatalf("hall lamps at 6 not cleared on arrival")
	}
	if len(c.Snapshot().Calls) != 0 {
		t.Fatalf("snapshot calls = %v", c.Snapshot().Calls)
	}
}

// Random request streams never make the car skip the nearest pending stop
// of its sweep nor reverse while such a stop remains.
func TestSweepInvariants_RandomRequests(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c, rec := newTestController(t, 0)

	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			c.HandleFloorRequest(rng.Intn(12) - 1)
			assertLightsMatchSet(t, c)
		}

		dirBefore := c.Direction()
		next, hasNext := c.NextStop()
		pendingAhead := hasNext && dirBefore != Idle
		arrivalsBefore := len(rec.arrivals)

		tick(t, c)

		if len(rec.arrivals) > arrivalsBefore && pendingAhead {
			if got := rec.arrivals[len(rec.arrivals)-1]; got != next {
				t.Fatalf("tick %d: arrived at %d heading %v, nearest pending was %d", i, got, dirBefore, next)
			}
		}
		if pendingAhead && c.Direction() != dirBefore {
			if dirBefore == Up && c.Destinations().ContainsUp(next) {
				t.Fatalf("tick %d: reversed with %d still pending upward", i, next)
			}
			if dirBefore == Down && c.Destinations().ContainsDown(next) {
				t.Fatalf("tick %d: reversed with %d still pending downward", i, next)
			}
		}
	}
	if len(rec.arrivals) == 0 {
		t.Fatalf("expected the car to service some floors")
	}
}

func TestTick_ReportsInconsistentState(t *testing.T) {
	c, _ := newTestController(t, 3)
	c.direction = Idle
	c.target, c.hasTarget = 5, true
	c.phase = PhaseDoorOpen

	err := c.Tick(time.Millisecond)
	if !errors.Is(err, ErrInconsistentState) {
		t.Fatalf("err = %v, want ErrInconsistentState", err)
	}
}
