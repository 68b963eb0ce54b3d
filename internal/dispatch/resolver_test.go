package dispatch

import "testing"

func TestResolve(t *testing.T) {
	type want struct {
		dir    Direction
		target int
		ok     bool
	}
	cases := []struct {
		name string
		dir  Direction
		up   []int
		down []int
		want want
	}{
		{"empty from idle", Idle, nil, nil, want{Idle, 0, false}},
		{"empty while up", Up, nil, nil, want{Idle, 0, false}},
		{"idle picks up side", Idle, []int{5, 9}, nil, want{Up, 9, true}},
		{"idle picks down side", Idle, nil, []int{2, 4}, want{Down, 2, true}},
		{"idle prefers up over down", Idle, []int{7, 8}, []int{1, 3}, want{Up, 8, true}},
		{"up extends to farthest", Up, []int{4, 8, 9}, []int{1}, want{Up, 9, true}},
		{"up reverses when side empty", Up, nil, []int{1, 3}, want{Down, 1, true}},
		{"down extends to farthest", Down, []int{9}, []int{2, 6}, want{Down, 2, true}},
		{"down reverses when side empty", Down, []int{3, 6}, nil, want{Up, 6, true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestSet(t)
			for _, f := range tc.up {
				d.AddUp(f)
			}
			for _, f := range tc.down {
				d.AddDown(f)
			}
			dir, target, ok := resolve(tc.dir, d)
			got := want{dir, target, ok}
			if got != tc.want {
				t.Fatalf("resolve(%v) = %+v, want %+v", tc.dir, got, tc.want)
			}
		})
	}
}

// The direction must name the side holding the target, whatever the car's
// position, or the arrival check could never match it.
func TestResolve_DirectionFollowsTargetSide(t *testing.T) {
	for _, dir := range []Direction{Idle, Up, Down} {
		up := newTestSet(t)
		up.AddUp(3)
		if got, target, _ := resolve(dir, up); got != Up || !up.ContainsUp(target) {
			t.Fatalf("resolve(%v) with up-only set = %v/%d", dir, got, target)
		}

		down := newTestSet(t)
		down.AddDown(6)
		if got, target, _ := resolve(dir, down); got != Down || !down.ContainsDown(target) {
			t.Fatalf("resolve(%v) with down-only set = %v/%d", dir, got, target)
		}
	}
}

func TestResolve_DoesNotMutateSet(t *testing.T) {
	d := newTestSet(t)
	d.AddUp(6)
	d.AddDown(2)

	resolve(Idle, d)
	resolve(Up, d)
	resolve(Down, d)

	if d.Len() != 2 || !d.ContainsUp(6) || !d.ContainsDown(2) {
		t.Fatalf("resolver changed the set: up=%v down=%v", d.Up(), d.Down())
	}
}
