package dispatch

import "github.com/google/btree"

// btreeDegree: a building has few floors.
const btreeDegree = 4

// DestinationSet holds the pending stops of both sweep directions.
// Each side is an ordered set kept ascending; a floor lives in at most one side.
type DestinationSet struct {
	registry *FloorRegistry
	up       *btree.BTreeG[int]
	down     *btree.BTreeG[int]
}

// NewDestinationSet returns an empty set bounded by registry.
func NewDestinationSet(registry *FloorRegistry) *DestinationSet {
	less := func(a, b int) bool { return a < b }
	return &DestinationSet{
		registry: registry,
		up:       btree.NewG[int](btreeDegree, less),
		down:     btree.NewG[int](btreeDegree, less),
	}
}

// AddUp schedules f for the upward sweep. It returns false when f is
// out of range or already scheduled on either side.
func (d *DestinationSet) AddUp(f int) bool {
	return d.add(d.up, f)
}

// AddDown schedules f for the downward sweep.
func (d *DestinationSet) AddDown(f int) bool {
	return d.add(d.down, f)
}

func (d *DestinationSet) add(side *btree.BTreeG[int], f int) bool {
	if !d.registry.IsValidFloor(f) || d.Contains(f) {
		return false
	}
	side.ReplaceOrInsert(f)
	return true
}

// RemoveUp drops f from the upward side and reports whether it was there.
func (d *DestinationSet) RemoveUp(f int) bool {
	_, ok := d.up.Delete(f)
	return ok
}

// RemoveDown drops f from the downward side and reports whether it was there.
func (d *DestinationSet) RemoveDown(f int) bool {
	_, ok := d.down.Delete(f)
	return ok
}

// Remove drops f from whichever side holds it.
func (d *DestinationSet) Remove(f int) bool {
	return d.RemoveUp(f) || d.RemoveDown(f)
}

// Contains reports whether either side holds f.
func (d *DestinationSet) Contains(f int) bool {
	return d.up.Has(f) || d.down.Has(f)
}

// ContainsUp and ContainsDown test a single side.
func (d *DestinationSet) ContainsUp(f int) bool   { return d.up.Has(f) }
func (d *DestinationSet) ContainsDown(f int) bool { return d.down.Has(f) }

// NextUp is the lowest upward stop.
func (d *DestinationSet) NextUp() (int, bool) { return d.up.Min() }

// FarthestUp is the highest upward stop.
func (d *DestinationSet) FarthestUp() (int, bool) { return d.up.Max() }

// NextDown is the highest downward stop.
func (d *DestinationSet) NextDown() (int, bool) { return d.down.Max() }

// FarthestDown is the lowest downward stop.
func (d *DestinationSet) FarthestDown() (int, bool) { return d.down.Min() }

// IsEmpty reports whether no stop is pending.
func (d *DestinationSet) IsEmpty() bool {
	return d.up.Len() == 0 && d.down.Len() == 0
}

// Len counts pending stops on both sides.
func (d *DestinationSet) Len() int { return d.up.Len() + d.down.Len() }

// Up returns the upward stops ascending.
func (d *DestinationSet) Up() []int { return collect(d.up) }

// Down returns the downward stops ascending.
func (d *DestinationSet) Down() []int { return collect(d.down) }

func collect(side *btree.BTreeG[int]) []int {
	out := make([]int, 0, side.Len())
	side.Ascend(func(f int) bool {
		out = append(out, f)
		return true
	})
	return out
}
