package groc

import (
	"strconv"
	"strings"
	"time"
)

// InvalidScheduleError reports why schedule text or structured fields were
// rejected. Field and Value name the offending part when one can be singled
// out; Offset is the byte position within Text for syntax errors.
type InvalidScheduleError struct {
	Text    string // original schedule text, empty for structured construction
	Message string
	Field   string // optional: which field caused the error
	Value   string // optional: the invalid value
	Offset  int    // byte offset into Text; meaningful for syntax errors only
	Err     error  // wrapped cause, may be nil
}

func (e *InvalidScheduleError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = msg + " in " + e.Field + ": " + e.Value
	}
	if e.Text != "" {
		return "invalid schedule " + strconv.Quote(e.Text) + ": " + msg
	}
	return msg
}

func (e *InvalidScheduleError) Unwrap() error { return e.Err }

// ErrEmptySchedule is returned when an empty schedule string is provided.
var ErrEmptySchedule = &InvalidScheduleError{Message: "empty schedule string"}

// ScheduleKind identifies which schedule form some text parsed into.
type ScheduleKind uint8

const (
	// KindInvalid is the kind of text that failed to parse.
	KindInvalid ScheduleKind = iota
	// KindSpecificTime is a calendar-day schedule with a fixed time of day.
	KindSpecificTime
	// KindInterval is an every-N-minutes or every-N-hours schedule.
	KindInterval
)

func (k ScheduleKind) String() string {
	switch k {
	case KindSpecificTime:
		return "specific time"
	case KindInterval:
		return "interval"
	default:
		return "invalid"
	}
}

// ScheduleAnalysis contains detailed information about parsed schedule
// text. It provides insight into the schedule without computing
// occurrences by hand.
type ScheduleAnalysis struct {
	// Valid indicates whether the text was successfully parsed.
	Valid bool

	// Error contains the parsing error if Valid is false.
	Error error

	// Kind is the parsed schedule form, KindInvalid if parsing failed.
	Kind ScheduleKind

	// Schedule is the parsed schedule, available for further
	// introspection. Nil if the text is invalid.
	Schedule Schedule

	// Location is the timezone the schedule is evaluated in.
	Location *time.Location

	// Fields contains the normalized field values. Specific-time keys:
	// "ordinals", "weekdays" or "monthdays", "months", "time". Interval
	// keys: "interval", "period", and "from"/"to" or "synchronized" as
	// present.
	Fields map[string]string

	// Interval is the effective interval duration for interval schedules,
	// zero otherwise.
	Interval time.Duration

	// Synchronized reports midnight-locked boundaries for interval
	// schedules.
	Synchronized bool

	// NextRun is the first occurrence after the analysis reference time.
	// Zero if the text is invalid or no occurrence was found.
	NextRun time.Time

	// NextRuns holds up to three occurrences after the reference time.
	NextRuns []time.Time

	// Warnings contains non-fatal notes about the schedule. They do not
	// prevent parsing but may indicate unexpected behavior, e.g. a fifth
	// ordinal that skips months without a fifth such weekday.
	Warnings []string
}

// Validate checks schedule text without constructing anything else.
// It returns nil if the text is valid, or an error describing the problem.
//
// Example:
//
//	if err := groc.Validate(userInput); err != nil {
//	    return fmt.Errorf("bad schedule: %w", err)
//	}
func Validate(text string) error {
	_, err := standardParser.Parse(text)
	return err
}

// ValidateWith validates schedule text using a configured Parser, for
// callers that need a non-UTC evaluation zone or an attached logger.
func ValidateWith(text string, p Parser) error {
	_, err := p.Parse(text)
	return err
}

// ValidateAll validates multiple schedule texts at once. It returns a map
// of index to error for any invalid texts; if all are valid the map is
// empty (not nil).
//
// This suits bulk pre-flight checks of configuration before any schedule
// is put to use.
func ValidateAll(texts []string) map[int]error {
	errs := make(map[int]error)
	for i, text := range texts {
		if _, err := standardParser.Parse(text); err != nil {
			errs[i] = err
		}
	}
	return errs
}

// Analyze provides detailed analysis of schedule text, with occurrences
// computed from the current time. See AnalyzeAt for a fixed reference.
//
// Example:
//
//	result := groc.Analyze("every 2 hours synchronized")
//	if !result.Valid {
//	    log.Printf("invalid: %v", result.Error)
//	} else {
//	    log.Printf("next run: %v", result.NextRun)
//	}
func Analyze(text string) ScheduleAnalysis {
	return AnalyzeAt(text, time.Now())
}

// AnalyzeAt is like Analyze with occurrences computed from ref instead of
// the current time, which keeps analysis deterministic.
func AnalyzeAt(text string, ref time.Time) ScheduleAnalysis {
	result := ScheduleAnalysis{Fields: make(map[string]string)}

	if strings.TrimSpace(text) == "" {
		result.Error = ErrEmptySchedule
		return result
	}

	sched, err := standardParser.Parse(text)
	if err != nil {
		result.Error = err
		return result
	}

	result.Valid = true
	result.Schedule = sched
	result.Location = sched.Location()

	switch s := sched.(type) {
	case *SpecificTimeSchedule:
		result.Kind = KindSpecificTime
		result.analyzeSpecificTime(s)
	case *IntervalSchedule:
		result.Kind = KindInterval
		result.analyzeInterval(s)
	}

	runs, err := NextN(sched, ref, 3)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	}
	if len(runs) > 0 {
		result.NextRun = runs[0]
		result.NextRuns = runs
	}
	return result
}

// analyzeSpecificTime fills fields and warnings for a calendar schedule.
func (r *ScheduleAnalysis) analyzeSpecificTime(s *SpecificTimeSchedule) {
	r.Fields["ordinals"] = intListString(s.ordinals)
	if len(s.monthdays) > 0 {
		r.Fields["monthdays"] = intListString(s.monthdays)
	} else {
		r.Fields["weekdays"] = intListString(s.weekdays)
	}
	r.Fields["months"] = intListString(s.months)
	r.Fields["time"] = s.tod.String()

	if len(s.monthdays) == 0 && containsInt(s.ordinals, 5) && !intSetsEqual(s.ordinals, allOrdinals) {
		r.Warnings = append(r.Warnings,
			"a fifth weekday does not occur in every month; those occurrences are skipped")
	}
	if len(s.monthdays) > 0 {
		if d, ok := dayMissingFromSomeMonth(s.monthdays, s.months); ok {
			r.Warnings = append(r.Warnings,
				"day "+strconv.Itoa(d)+" does not occur in every selected month; months without it are skipped")
		}
		if containsInt(s.monthdays, 29) && containsInt(s.months, 2) {
			r.Warnings = append(r.Warnings, "february 29 only occurs in leap years")
		}
	}
}

// analyzeInterval fills fields for an interval schedule.
func (r *ScheduleAnalysis) analyzeInterval(s *IntervalSchedule) {
	r.Interval = time.Duration(s.seconds) * time.Second
	r.Synchronized = s.synchronized
	r.Fields["interval"] = strconv.Itoa(s.interval)
	r.Fields["period"] = s.unit.String()
	if s.timeRange != nil {
		r.Fields["from"] = s.timeRange.Start.String()
		r.Fields["to"] = s.timeRange.End.String()
	}
	if s.synchronized {
		r.Fields["synchronized"] = "true"
	}
}

// dayMissingFromSomeMonth returns a selected day that at least one
// selected month is too short for.
func dayMissingFromSomeMonth(monthdays, months []int) (int, bool) {
	for _, m := range months {
		for _, d := range monthdays {
			if d > maxDaysByMonth[m] {
				return d, true
			}
		}
	}
	return 0, false
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
