package groc

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Schedule describes a recurring schedule and computes its occurrences.
// Implementations are immutable and safe for concurrent use.
type Schedule interface {
	// Next returns the first occurrence strictly after the given time.
	// The error is non-nil only when the occurrence search bound is
	// exhausted, which indicates a schedule that can never match.
	Next(t time.Time) (time.Time, error)

	// Equal reports whether the other schedule describes the same
	// recurrence. Schedules of different kinds are never equal.
	Equal(other Schedule) bool

	// Hash returns a value hash consistent with Equal: equal schedules
	// return equal hashes.
	Hash() uint64

	// Location returns the timezone the schedule is evaluated in.
	Location() *time.Location

	// String renders the schedule back to schedule-language text.
	String() string
}

// TimeOfDay is a wall-clock (hour, minute) pair. It is comparable with ==.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

// TimeRange bounds an interval schedule to the daily window between Start
// and End (inclusive of End). A range may cross midnight.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// maxSearchMonths bounds the specific-time occurrence search. A schedule
// that survives construction-time validation should always match within
// this many candidate months; exhausting the bound is reported as an
// UnreachableScheduleError rather than searching forever.
const maxSearchMonths = 48

// UnreachableScheduleError is returned by Next when no occurrence exists
// within the search bound. Construction-time validation rejects the
// schedules known to cause this, so hitting it indicates a schedule the
// day matcher can never satisfy in its timezone.
type UnreachableScheduleError struct {
	Schedule string
	After    time.Time
}

func (e *UnreachableScheduleError) Error() string {
	return fmt.Sprintf("no occurrence of %q within %d months after %s",
		e.Schedule, maxSearchMonths, e.After.Format(time.RFC3339))
}

// Canonical full field sets, used when a clause is omitted.
var (
	allOrdinals = []int{1, 2, 3, 4, 5}
	allWeekdays = []int{0, 1, 2, 3, 4, 5, 6}
	allMonths   = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
)

// maxDaysByMonth is the last day of each month, assuming a leap year for
// February. Validation treats a day as possible if any selected month can
// ever contain it.
var maxDaysByMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// SpecificTimeSchedule fires at a fixed time of day on calendar days
// selected either by ordinal-and-weekday (e.g. "1st,3rd monday") or by
// explicit days of the month, optionally restricted to a set of months.
// Field sets are normalized at construction: sorted, deduplicated, and
// defaulted to the full range when omitted.
type SpecificTimeSchedule struct {
	ordinals  []int // 1-5, empty never (defaults to all)
	weekdays  []int // 0-6 with 0=Sunday; empty when monthdays is set
	monthdays []int // 1-31; empty when weekdays is set
	months    []int // 1-12
	tod       TimeOfDay
	loc       *time.Location
	logger    Logger
}

// NewSpecificTimeSchedule constructs a specific-time schedule from field
// sets. Empty ordinals select every ordinal, empty months every month, and
// empty weekdays with empty monthdays every weekday. Weekdays and
// monthdays are mutually exclusive. A nil location means UTC.
//
// Construction is atomic: on error no schedule is returned, and the
// returned error is an *InvalidScheduleError naming the offending field.
func NewSpecificTimeSchedule(ordinals, weekdays, monthdays, months []int, t TimeOfDay, loc *time.Location) (*SpecificTimeSchedule, error) {
	if len(weekdays) > 0 && len(monthdays) > 0 {
		return nil, &InvalidScheduleError{
			Message: "weekdays and days of month are mutually exclusive",
			Field:   "weekdays",
			Value:   intListString(weekdays),
		}
	}

	ords, err := normalizeSet(ordinals, 1, 5, "ordinals", "1-5")
	if err != nil {
		return nil, err
	}
	wds, err := normalizeSet(weekdays, 0, 6, "weekdays", "0-6")
	if err != nil {
		return nil, err
	}
	mds, err := normalizeSet(monthdays, 1, 31, "monthdays", "1-31")
	if err != nil {
		return nil, err
	}
	mos, err := normalizeSet(months, 1, 12, "months", "1-12")
	if err != nil {
		return nil, err
	}

	if t.Hour < 0 || t.Hour > 23 {
		return nil, &InvalidScheduleError{
			Message: "value out of range (0-23)",
			Field:   "hour",
			Value:   strconv.Itoa(t.Hour),
		}
	}
	if t.Minute < 0 || t.Minute > 59 {
		return nil, &InvalidScheduleError{
			Message: "value out of range (0-59)",
			Field:   "minute",
			Value:   strconv.Itoa(t.Minute),
		}
	}

	if len(ords) == 0 {
		ords = append([]int(nil), allOrdinals...)
	}
	if len(mos) == 0 {
		mos = append([]int(nil), allMonths...)
	}
	if len(wds) == 0 && len(mds) == 0 {
		wds = append([]int(nil), allWeekdays...)
	}

	// Every schedule must have at least one day that can exist on the
	// calendar. Ordinal-and-weekday selections always do (ordinals 1-4 fit
	// in any month); explicit monthdays may not, e.g. "31 of feb".
	if len(mds) > 0 && !anyValidMonthday(mds, mos) {
		return nil, &InvalidScheduleError{
			Message: "no selected month ever contains any of the selected days",
			Field:   "monthdays",
			Value:   intListString(mds),
		}
	}

	if loc == nil {
		loc = time.UTC
	}
	return &SpecificTimeSchedule{
		ordinals:  ords,
		weekdays:  wds,
		monthdays: mds,
		months:    mos,
		tod:       t,
		loc:       loc,
		logger:    DiscardLogger,
	}, nil
}

// normalizeSet copies, sorts, deduplicates, and range-checks a field set.
// An empty input stays empty; defaulting is the caller's concern.
func normalizeSet(vals []int, min, max int, field, legal string) ([]int, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := append([]int(nil), vals...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if v < min || v > max {
			return nil, &InvalidScheduleError{
				Message: "value out of range (" + legal + ")",
				Field:   field,
				Value:   strconv.Itoa(v),
			}
		}
		if i > 0 && v == out[n-1] {
			continue
		}
		out[n] = v
		n++
	}
	return out[:n], nil
}

// anyValidMonthday reports whether at least one (month, day) combination
// is calendrically possible, assuming a leap year for February.
func anyValidMonthday(monthdays, months []int) bool {
	for _, m := range months {
		for _, d := range monthdays {
			if d <= maxDaysByMonth[m] {
				return true
			}
		}
	}
	return false
}

// intListString renders a field set for error messages and display.
func intListString(vals []int) string {
	var b []byte
	for i, v := range vals {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}

// Ordinals returns the normalized ordinal set (1-5).
func (s *SpecificTimeSchedule) Ordinals() []int { return append([]int(nil), s.ordinals...) }

// Weekdays returns the normalized weekday set (0=Sunday). It is empty when
// the schedule selects explicit days of the month.
func (s *SpecificTimeSchedule) Weekdays() []int { return append([]int(nil), s.weekdays...) }

// Monthdays returns the normalized day-of-month set, empty in weekday mode.
func (s *SpecificTimeSchedule) Monthdays() []int { return append([]int(nil), s.monthdays...) }

// Months returns the normalized month set (1-12).
func (s *SpecificTimeSchedule) Months() []int { return append([]int(nil), s.months...) }

// Time returns the schedule's wall-clock time of day.
func (s *SpecificTimeSchedule) Time() TimeOfDay { return s.tod }

// Location returns the timezone the schedule is evaluated in.
func (s *SpecificTimeSchedule) Location() *time.Location { return s.loc }

// Next returns the next occurrence strictly after t, in t's location.
//
// The search walks candidate months from t's local month outward, collects
// each month's matching days, and resolves each (date, time-of-day) wall
// tuple to an instant with explicit daylight saving handling: ambiguous
// fall-back times resolve to the earlier occurrence when t precedes both,
// and wall times erased by a spring-forward gap are skipped entirely.
func (s *SpecificTimeSchedule) Next(t time.Time) (time.Time, error) {
	local := t.In(s.loc)
	cycle := newMonthCycle(int(local.Month()), s.months)
	for probe := 0; probe < maxSearchMonths; probe++ {
		month, wraps := cycle.next()
		year := local.Year() + wraps
		days := s.matchingDays(year, time.Month(month))
		if wraps == 0 && month == int(local.Month()) {
			days = filterCurrentMonthDays(days, local, s.tod)
		}
		for _, day := range days {
			if match, ok := s.resolveLocal(year, time.Month(month), day, local); ok {
				return match.In(t.Location()), nil
			}
		}
	}
	return time.Time{}, &UnreachableScheduleError{Schedule: s.String(), After: t}
}

// filterCurrentMonthDays drops days that have already passed in the query
// month. The query day itself survives only while the target time of day
// is still ahead of the local clock, or while the clock sits in the first
// pass of a repeated fall-back hour whose second pass can still fire.
func filterCurrentMonthDays(days []int, now time.Time, tod TimeOfDay) []int {
	today := now.Day()
	days = days[sort.SearchInts(days, today):]
	if len(days) > 0 && days[0] == today && !todayStillAhead(now, tod) {
		days = days[1:]
	}
	return days
}

// todayStillAhead reports whether the target time of day can still occur
// today. Equality counts as passed so that successive Next calls always
// advance.
func todayStillAhead(now time.Time, tod TimeOfDay) bool {
	if tod.Hour != now.Hour() {
		return tod.Hour > now.Hour()
	}
	if tod.Minute > now.Minute() {
		return true
	}
	// Same hour, target minute at or behind the clock. During the first
	// pass of a repeated fall-back hour the same wall time comes around
	// again, so the day is not spent yet.
	return inPendingFallBackHour(now)
}

// resolveLocal turns a candidate (year, month, day) plus the schedule's
// time of day into an instant, or reports false when the candidate must be
// discarded. query must be in the schedule's location.
func (s *SpecificTimeSchedule) resolveLocal(year int, month time.Month, day int, query time.Time) (time.Time, bool) {
	cand := resolveWall(year, month, day, s.tod.Hour, s.tod.Minute, s.loc)

	// Ambiguous wall tuples resolve to standard time above. When the query
	// clock is still on daylight time, the daylight reading of the same
	// wall tuple is the earlier valid occurrence; take it if it has not
	// already passed.
	if query.IsDST() && !cand.IsDST() {
		_, qoff := query.Zone()
		_, coff := cand.Zone()
		if delta := qoff - coff; delta > 0 {
			backed := cand.Add(-time.Duration(delta) * time.Second)
			if backed.After(query) && backed.IsDST() {
				s.logger.Info("resolved ambiguous wall time to daylight occurrence",
					"schedule", s.String(), "standard", cand, "daylight", backed)
				cand = backed
			}
		}
	}

	if !cand.After(query) {
		return time.Time{}, false
	}
	// A wall time erased by a spring-forward gap resolves to a shifted
	// hour; such a day has no valid occurrence.
	if cand.Hour() != s.tod.Hour {
		s.logger.Info("skipping day without the scheduled wall time",
			"schedule", s.String(), "shifted", cand)
		return time.Time{}, false
	}
	return cand, true
}

// Equal reports whether other is a specific-time schedule with the same
// normalized field sets, time of day, and timezone.
func (s *SpecificTimeSchedule) Equal(other Schedule) bool {
	o, ok := other.(*SpecificTimeSchedule)
	if !ok || o == nil {
		return false
	}
	return intSetsEqual(s.ordinals, o.ordinals) &&
		intSetsEqual(s.weekdays, o.weekdays) &&
		intSetsEqual(s.monthdays, o.monthdays) &&
		intSetsEqual(s.months, o.months) &&
		s.tod == o.tod &&
		s.loc.String() == o.loc.String()
}

// Hash returns an FNV-1a hash over the fields Equal compares.
func (s *SpecificTimeSchedule) Hash() uint64 {
	return computeHash("t;" + intListString(s.ordinals) +
		";" + intListString(s.weekdays) +
		";" + intListString(s.monthdays) +
		";" + intListString(s.months) +
		";" + s.tod.String() +
		";" + s.loc.String())
}

func intSetsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
