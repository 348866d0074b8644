package groc

import (
	"strconv"
	"time"
)

// IntervalUnit is the period an interval schedule counts in.
type IntervalUnit uint8

// The units the schedule language accepts.
const (
	Minutes IntervalUnit = iota
	Hours
)

func (u IntervalUnit) String() string {
	if u == Hours {
		return "hours"
	}
	return "minutes"
}

// unitSeconds returns the length of one unit in seconds.
func (u IntervalUnit) unitSeconds() int {
	if u == Hours {
		return 3600
	}
	return 60
}

const secondsPerDay = 24 * 60 * 60

// fullDayRange is the implicit window of a synchronized schedule.
var fullDayRange = TimeRange{Start: TimeOfDay{0, 0}, End: TimeOfDay{23, 59}}

// IntervalSchedule fires every fixed number of minutes or hours, e.g.
// "every 5 minutes". Without a range the occurrences float from the query
// instant. With a "from ... to ..." range they are locked to boundaries
// counted from the range start and confined to the daily window; a
// synchronized schedule is the same with an implicit midnight-anchored
// full-day window.
type IntervalSchedule struct {
	interval     int
	unit         IntervalUnit
	seconds      int
	timeRange    *TimeRange
	synchronized bool
	loc          *time.Location
}

// NewIntervalSchedule constructs an interval schedule. A nil range means
// no daily window; a nil location means UTC. Synchronized schedules cannot
// carry an explicit range, and their interval must evenly divide the day.
func NewIntervalSchedule(interval int, unit IntervalUnit, r *TimeRange, synchronized bool, loc *time.Location) (*IntervalSchedule, error) {
	if interval <= 0 {
		return nil, &InvalidScheduleError{
			Message: "interval must be positive",
			Field:   "interval",
			Value:   strconv.Itoa(interval),
		}
	}
	if unit != Minutes && unit != Hours {
		return nil, &InvalidScheduleError{
			Message: "unknown period",
			Field:   "period",
			Value:   strconv.Itoa(int(unit)),
		}
	}
	seconds := interval * unit.unitSeconds()

	if r != nil {
		if synchronized {
			return nil, &InvalidScheduleError{
				Message: "synchronized schedules cannot combine with a time range",
				Field:   "synchronized",
				Value:   "from " + r.Start.String() + " to " + r.End.String(),
			}
		}
		if err := validateTimeOfDay(r.Start, "from"); err != nil {
			return nil, err
		}
		if err := validateTimeOfDay(r.End, "to"); err != nil {
			return nil, err
		}
	}
	if synchronized && secondsPerDay%seconds != 0 {
		return nil, &InvalidScheduleError{
			Message: "interval does not evenly divide the day",
			Field:   "interval",
			Value:   strconv.Itoa(interval) + " " + unit.String(),
		}
	}

	if loc == nil {
		loc = time.UTC
	}
	s := &IntervalSchedule{
		interval:     interval,
		unit:         unit,
		seconds:      seconds,
		synchronized: synchronized,
		loc:          loc,
	}
	if r != nil {
		window := *r
		s.timeRange = &window
	}
	return s, nil
}

func validateTimeOfDay(t TimeOfDay, field string) *InvalidScheduleError {
	if t.Hour < 0 || t.Hour > 23 {
		return &InvalidScheduleError{
			Message: "hour out of range (0-23)",
			Field:   field,
			Value:   t.String(),
		}
	}
	if t.Minute < 0 || t.Minute > 59 {
		return &InvalidScheduleError{
			Message: "minute out of range (0-59)",
			Field:   field,
			Value:   t.String(),
		}
	}
	return nil
}

// Interval returns the interval count.
func (s *IntervalSchedule) Interval() int { return s.interval }

// Unit returns the interval's period.
func (s *IntervalSchedule) Unit() IntervalUnit { return s.unit }

// Seconds returns the effective interval length in seconds.
func (s *IntervalSchedule) Seconds() int { return s.seconds }

// Range returns the explicit daily window, if any. Synchronized schedules
// report their implicit full-day window.
func (s *IntervalSchedule) Range() (TimeRange, bool) {
	return s.effectiveRange()
}

// Synchronized reports whether occurrences are locked to boundaries
// counted from midnight.
func (s *IntervalSchedule) Synchronized() bool { return s.synchronized }

// Location returns the timezone the schedule is evaluated in.
func (s *IntervalSchedule) Location() *time.Location { return s.loc }

func (s *IntervalSchedule) effectiveRange() (TimeRange, bool) {
	if s.timeRange != nil {
		return *s.timeRange, true
	}
	if s.synchronized {
		return fullDayRange, true
	}
	return TimeRange{}, false
}

// anchored reports whether occurrences are fixed on the clock rather than
// floating from the query instant.
func (s *IntervalSchedule) anchored() bool {
	return s.synchronized || s.timeRange != nil
}

// Next returns the next occurrence strictly after t. The error is always
// nil; it exists to satisfy Schedule.
func (s *IntervalSchedule) Next(t time.Time) (time.Time, error) {
	r, ok := s.effectiveRange()
	if !ok {
		next := t.Add(time.Duration(s.seconds) * time.Second)
		// Seconds truncate to zero so repeated feeding of results stays on
		// whole minutes.
		return next.Add(-time.Duration(next.Second())*time.Second -
			time.Duration(next.Nanosecond())), nil
	}
	return s.nextWithinRange(t, r), nil
}

// nextWithinRange advances along interval boundaries counted from the most
// recent range start. When either the query or the boundary falls outside
// the daily window, the next window start is the next occurrence.
func (s *IntervalSchedule) nextWithinRange(t time.Time, r TimeRange) time.Time {
	prevStart := previousWallOccurrence(t, r.Start, s.loc)
	interval := time.Duration(s.seconds) * time.Second
	steps := t.Sub(prevStart)/interval + 1
	candidate := prevStart.Add(steps * interval)
	nextStart := nextWallOccurrence(t, r.Start, s.loc)
	if s.inRange(t, r) && s.inRange(candidate, r) && candidate.Before(nextStart) {
		return candidate
	}
	return nextStart
}

// inRange reports whether the instant lies inside the daily window: its
// most recent start boundary is more recent than its most recent end
// boundary, or it sits exactly on an end boundary. Windows crossing
// midnight work the same way.
func (s *IntervalSchedule) inRange(t time.Time, r TimeRange) bool {
	prevStart := previousWallOccurrence(t, r.Start, s.loc)
	prevEnd := previousWallOccurrence(t, r.End, s.loc)
	if prevStart.After(prevEnd) {
		return true
	}
	return prevEnd.Equal(t)
}

// previousWallOccurrence returns the latest instant at or before t whose
// wall clock in loc reads tod, walking back day by day.
func previousWallOccurrence(t time.Time, tod TimeOfDay, loc *time.Location) time.Time {
	local := t.In(loc)
	year, month, day := local.Date()
	date := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	for i := 0; ; i++ {
		y, m, d := date.Date()
		cand := resolveWall(y, m, d, tod.Hour, tod.Minute, loc)
		if !cand.After(t) || i == 3 {
			return cand
		}
		date = date.AddDate(0, 0, -1)
	}
}

// nextWallOccurrence returns the earliest instant strictly after t whose
// wall clock in loc reads tod, walking forward day by day.
func nextWallOccurrence(t time.Time, tod TimeOfDay, loc *time.Location) time.Time {
	local := t.In(loc)
	year, month, day := local.Date()
	date := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	for i := 0; ; i++ {
		y, m, d := date.Date()
		cand := resolveWall(y, m, d, tod.Hour, tod.Minute, loc)
		if cand.After(t) || i == 3 {
			return cand
		}
		date = date.AddDate(0, 0, 1)
	}
}

// Equal reports whether other is an interval schedule with the same
// effective interval and daily window. The timezone is compared only when
// an explicit window other than the full day is present.
func (s *IntervalSchedule) Equal(other Schedule) bool {
	o, ok := other.(*IntervalSchedule)
	if !ok || o == nil {
		return false
	}
	if s.seconds != o.seconds {
		return false
	}
	sr, sok := s.effectiveRange()
	or, ook := o.effectiveRange()
	if sok != ook || sr != or {
		return false
	}
	if sok && sr != fullDayRange {
		return s.loc.String() == o.loc.String()
	}
	return true
}

// Hash returns an FNV-1a hash over the fields Equal compares.
func (s *IntervalSchedule) Hash() uint64 {
	key := "i;" + strconv.Itoa(s.seconds) + ";"
	if r, ok := s.effectiveRange(); ok {
		key += r.Start.String() + "-" + r.End.String()
		if r != fullDayRange {
			key += ";" + s.loc.String()
		}
	}
	return computeHash(key)
}
