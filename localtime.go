package groc

import "time"

// resolveWall returns the instant, in loc, at which the given wall-clock
// tuple occurs. Unambiguous tuples resolve exactly. A tuple repeated by a
// fall-back transition resolves to its standard-time (later) occurrence. A
// tuple erased by a spring-forward gap is interpreted at the zone's
// standard offset, so the returned instant renders shifted past the gap;
// callers detect that case by comparing the rendered hour with the
// requested one.
//
// Resolution is explicit rather than delegated to time.Date, whose choice
// of offset for ambiguous and nonexistent times is unspecified.
func resolveWall(year int, month time.Month, day, hour, minute int, loc *time.Location) time.Time {
	utc := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

	// The offsets in effect around the tuple are its only possible
	// interpretations.
	var candidates []time.Time
	for _, offset := range probeOffsets(utc, loc) {
		instant := utc.Add(-time.Duration(offset) * time.Second).In(loc)
		if rendersAs(instant, year, month, day, hour, minute) {
			candidates = append(candidates, instant)
		}
	}

	switch len(candidates) {
	case 1:
		return candidates[0]
	case 0:
		std := standardOffset(loc, year)
		return utc.Add(-time.Duration(std) * time.Second).In(loc)
	default:
		best := candidates[0]
		for _, c := range candidates[1:] {
			switch {
			case best.IsDST() && !c.IsDST():
				best = c
			case best.IsDST() == c.IsDST() && c.After(best):
				best = c
			}
		}
		return best
	}
}

// probeOffsets returns the distinct zone offsets in effect within a few
// half-days of the given reference, enough to straddle any transition
// adjacent to it.
func probeOffsets(around time.Time, loc *time.Location) []int {
	probes := []time.Duration{-30 * time.Hour, -12 * time.Hour, 0, 12 * time.Hour, 30 * time.Hour}
	offsets := make([]int, 0, 2)
	for _, d := range probes {
		_, off := around.Add(d).In(loc).Zone()
		seen := false
		for _, o := range offsets {
			if o == off {
				seen = true
				break
			}
		}
		if !seen {
			offsets = append(offsets, off)
		}
	}
	return offsets
}

// rendersAs reports whether t's wall clock reads exactly the given tuple.
func rendersAs(t time.Time, year int, month time.Month, day, hour, minute int) bool {
	y, m, d := t.Date()
	return y == year && m == month && d == day && t.Hour() == hour && t.Minute() == minute
}

// standardOffset returns loc's non-daylight UTC offset in seconds during
// the given year, probing month by month to cover both hemispheres. Zones
// observing daylight time year round fall back to the January offset.
func standardOffset(loc *time.Location, year int) int {
	fallback := 0
	for m := time.January; m <= time.December; m++ {
		t := time.Date(year, m, 1, 12, 0, 0, 0, time.UTC).In(loc)
		_, off := t.Zone()
		if m == time.January {
			fallback = off
		}
		if !t.IsDST() {
			return off
		}
	}
	return fallback
}

// inPendingFallBackHour reports whether t sits in the first, daylight pass
// of a wall-clock hour that a fall-back transition is about to repeat.
// During that window the same wall reading comes around once more on
// standard time.
func inPendingFallBackHour(t time.Time) bool {
	if !t.IsDST() {
		return false
	}
	_, off := t.Zone()
	delta := off - standardOffset(t.Location(), t.Year())
	if delta <= 0 {
		return false
	}
	later := t.Add(time.Duration(delta) * time.Second)
	return !later.IsDST() && later.Hour() == t.Hour()
}
