package dispatch

// resolve picks the travel direction and the target floor for a car heading
// in dir. The target is the farthest known stop of the sweep; ok is false
// when nothing is scheduled. The direction always names the side the target
// came from, so stopsHere can match it on arrival.
//
// From Idle the upward side wins when both sides hold stops.
func resolve(dir Direction, set *DestinationSet) (Direction, int, bool) {
	if set.IsEmpty() {
		return Idle, 0, false
	}

	switch dir {
	case Up:
		if f, ok := set.FarthestUp(); ok {
			return Up, f, true
		}
		f, _ := set.FarthestDown()
		return Down, f, true
	case Down:
		if f, ok := set.FarthestDown(); ok {
			return Down, f, true
		}
		f, _ := set.FarthestUp()
		return Up, f, true
	}

	if f, ok := set.FarthestUp(); ok {
		return Up, f, true
	}
	f, _ := set.FarthestDown()
	return Down, f, true
}

// nextStop is the nearest stop ahead in dir.
func nextStop(dir Direction, set *DestinationSet) (int, bool) {
	switch dir {
	case Up:
		return set.NextUp()
	case Down:
		return set.NextDown()
	}
	return 0, false
}
