package dispatch

import "fmt"

// CallDirection is the set of landing call lamps lit at one floor.
type CallDirection int

const (
	CallNone CallDirection = iota
	CallUp
	CallDown
	CallBoth
)

func (c CallDirection) String() string {
	switch c {
	case CallUp:
		return "UP"
	case CallDown:
		return "DOWN"
	case CallBoth:
		return "BOTH"
	default:
		return "NONE"
	}
}

// merge returns the union of two call lamp sets.
func (c CallDirection) merge(other CallDirection) CallDirection {
	if c == other || other == CallNone {
		return c
	}
	if c == CallNone {
		return other
	}
	return CallBoth
}

// ParseCallDirection accepts UP, DOWN or BOTH.
func ParseCallDirection(s string) (CallDirection, error) {
	switch s {
	case "UP", "up":
		return CallUp, nil
	case "DOWN", "down":
		return CallDown, nil
	case "BOTH", "both":
		return CallBoth, nil
	}
	return CallNone, fmt.Errorf("invalid call direction %q", s)
}

// FloorRegistry holds the building bounds and the indicator state of every floor.
type FloorRegistry struct {
	minFloor int
	maxFloor int
	lights   []bool
	calls    []CallDirection
}

// NewFloorRegistry builds a registry for floors in [minFloor, maxFloor].
func NewFloorRegistry(minFloor, maxFloor int) (*FloorRegistry, error) {
	if minFloor > maxFloor {
		return nil, fmt.Errorf("invalid floor range: min %d > max %d", minFloor, maxFloor)
	}
	n := maxFloor - minFloor + 1
	return &FloorRegistry{
		minFloor: minFloor,
		maxFloor: maxFloor,
		lights:   make([]bool, n),
		calls:    make([]CallDirection, n),
	}, nil
}

// MinFloor and MaxFloor are the inclusive building bounds.
func (r *FloorRegistry) MinFloor() int { return r.minFloor }
func (r *FloorRegistry) MaxFloor() int { return r.maxFloor }

// IsValidFloor reports whether f lies within the building bounds.
func (r *FloorRegistry) IsValidFloor(f int) bool {
	return f >= r.minFloor && f <= r.maxFloor
}

// SetLight sets the request light of f and reports whether it flipped.
// Invalid floors are ignored.
func (r *FloorRegistry) SetLight(f int, on bool) bool {
	if !r.IsValidFloor(f) {
		return false
	}
	i := f - r.minFloor
	if r.lights[i] == on {
		return false
	}
	r.lights[i] = on
	return true
}

// GetLight reports the request light of f; false for invalid floors.
func (r *FloorRegistry) GetLight(f int) bool {
	if !r.IsValidFloor(f) {
		return false
	}
	return r.lights[f-r.minFloor]
}

// LitFloors lists floors whose light is on, ascending.
func (r *FloorRegistry) LitFloors() []int {
	out := make([]int, 0, len(r.lights))
	for i, on := range r.lights {
		if on {
			out = append(out, r.minFloor+i)
		}
	}
	return out
}

// AddCall lights the landing lamp for dir at f.
func (r *FloorRegistry) AddCall(f int, dir CallDirection) {
	if !r.IsValidFloor(f) {
		return
	}
	i := f - r.minFloor
	r.calls[i] = r.calls[i].merge(dir)
}

// ClearCalls turns off both landing lamps of f.
func (r *FloorRegistry) ClearCalls(f int) {
	if !r.IsValidFloor(f) {
		return
	}
	r.calls[f-r.minFloor] = CallNone
}

// Call returns the landing lamps lit at f, CallNone for invalid floors.
func (r *FloorRegistry) Call(f int) CallDirection {
	if !r.IsValidFloor(f) {
		return CallNone
	}
	return r.calls[f-r.minFloor]
}

// Calls maps every floor with a lit landing lamp to its lamp set.
func (r *FloorRegistry) Calls() map[int]CallDirection {
	out := make(map[int]CallDirection)
	for i, c := range r.calls {
		if c != CallNone {
			out[r.minFloor+i] = c
		}
	}
	return out
}
