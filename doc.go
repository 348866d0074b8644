/*
Package groc parses human-readable recurring schedules and computes their
occurrences.

The schedule language is the "groc" format popularized by App Engine cron:
phrases like "every day 09:00", "2nd,third wed of march 17:00", or
"every 2 hours from 10:00 to 14:00" instead of cron field expressions.

# Installation

To download the package, run:

	go get github.com/netresearch/go-groc

Import it in your program as:

	import "github.com/netresearch/go-groc"

It requires Go 1.25 or later.

# Usage

Parse schedule text once, then ask the schedule for occurrences:

	schedule, err := groc.Parse("every monday 09:00")
	if err != nil {
	    log.Fatal(err)
	}
	next, err := schedule.Next(time.Now())
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println("next run:", next)

Schedules are immutable values. A single schedule may be shared between
goroutines without synchronization.

To evaluate in a time zone other than UTC, configure a Parser:

	nyc, _ := time.LoadLocation("America/New_York")
	p := groc.NewParser().WithLocation(nyc)
	schedule, err := p.Parse("every day 02:30")

# Schedule Language

A schedule is either a specific-time form or an interval form.

Specific-time schedules name calendar days and a time of day:

	("every" | ordinal-list)? (weekday-list | "day")? (daynumber-list)? ("of" (month-list | "month"))? HH:MM

	Examples:
	  every day 09:00                     - every day of the week
	  monday 17:30                        - every monday (ordinals default to all)
	  2nd monday,wed 10:00                - second monday and second wednesday
	  1st,third fri of jan,march 08:15    - sparse months
	  every tue of month 12:00            - "of month" means all months
	  1,15 of jan 06:00                   - days of the month instead of weekdays
	  31 of month 00:15                   - short months are skipped

Interval schedules repeat at a fixed period:

	"every" N ("minutes" | "mins" | "hours") ("from" HH:MM "to" HH:MM)? ("synchronized")?

	Examples:
	  every 5 minutes                     - relative to the query time
	  every 30 mins                       - "mins" is accepted for "minutes"
	  every 2 hours synchronized          - locked to midnight boundaries
	  every 2 hours from 10:00 to 14:00   - daily window, inclusive ends

Field rules:

	Field      | Values                     | Notes
	-----      | ------                     | -----
	ordinal    | 1st-5th, first-fifth       | "every" selects all five
	weekday    | sun-sat, full names        | "day" selects all seven
	day number | 1-31                       | mutually exclusive with weekdays
	month      | jan-dec, full names        | "month" selects all twelve
	time       | H:MM or HH:MM, 24-hour     | minutes are always two digits

Lists are comma-separated without spaces around the commas. Words are
case-insensitive; three-letter abbreviations and full names are both
accepted. Day numbers cannot take ordinals: "1st monday" is valid,
"1st 15 of jan" is not.

A day-number schedule must be satisfiable: "31 of feb 09:00" is rejected
because no selected month ever contains any selected day, while
"29 of feb 09:00" is accepted and fires in leap years.

# Time Zones

All interpretation of a schedule's wall-clock fields happens in the
schedule's location, which is fixed at parse time (UTC unless the Parser
says otherwise). Next accepts an instant in any location and returns the
occurrence converted back to that location:

	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	p := groc.NewParser().WithLocation(tokyo)
	schedule, _ := p.Parse("every day 06:00")
	// 06:00 Tokyo time, reported in the caller's zone
	next, _ := schedule.Next(time.Now())

# Daylight Saving Time (DST) Handling

Specific-time schedules resolve wall-clock times explicitly, so DST
transitions have defined behavior.

Spring forward (clocks skip an hour):
  - A scheduled time inside the skipped hour does not occur that day
  - The schedule fires on the next selected day instead
  - Example: "every day 02:30" in America/New_York skips the transition day

Fall back (clocks repeat an hour):
  - A scheduled time inside the repeated hour occurs once, not twice
  - Queried before both occurrences, the first (daylight) one is returned
  - ⚠️ Note: queried between the two occurrences, the next day's run is
    returned; the repeated occurrence is never reported twice

Midnight doesn't exist:
  - Some transitions skip midnight entirely (e.g. historic America/Sao_Paulo)
  - A 00:00 schedule skips that day like any other erased wall time

30-minute offset transitions:
  - Zones like Australia/Lord_Howe shift by 30 minutes
  - An erased wall time is skipped only when the clock lands in a
    different hour; a half-hour shift within the scheduled hour fires at
    the shifted reading

Interval schedules without a range tick in absolute time and are immune
to DST: "every 2 hours" means 7200 seconds, even across a transition.
Ranged and synchronized intervals anchor to wall-clock times and follow
the specific-time rules at the window boundaries.

Attach a logger to observe resolution decisions around transitions:

	p := groc.NewParser().WithLocation(nyc).WithLogger(groc.DefaultLogger)

# Intervals and Synchronization

Plain intervals are relative: the next occurrence is the query time plus
the period, truncated to the minute.

	every 10 minutes    - 09:03:45 -> 09:13:00

Synchronized intervals divide the day from midnight into equal slots and
fire on slot boundaries. The period must divide 24 hours evenly:

	every 3 hours synchronized   - 00:00, 03:00, 06:00, ... 21:00
	every 7 hours synchronized   - rejected, 7 does not divide 24

Ranged intervals repeat only inside a daily window. Both endpoints are
themselves occurrences, and the phase restarts at the window start each
day:

	every 2 hours from 10:00 to 14:00   - 10:00, 12:00, 14:00 daily

Windows may cross midnight ("from 22:00 to 02:00"), and a window whose
start equals its end fires exactly once per day. Combining "synchronized"
with an explicit range is rejected.

# Validation and Analysis

Validate checks schedule text without using the schedule:

	if err := groc.Validate(userInput); err != nil {
	    // err describes the first problem found
	}

ValidateAll performs bulk pre-flight checks and reports failures by
index. Analyze goes further and returns a ScheduleAnalysis with the
parsed kind, normalized fields, the next few occurrences, and warnings
about surprising but legal schedules (a fifth ordinal, a day number some
selected months are too short for, february 29).

Errors are structured. Parse and construction failures are
*InvalidScheduleError values carrying the original text, the offending
field and value when one can be named, and the byte offset for syntax
errors. A schedule that can never fire within the search horizon yields
*UnreachableScheduleError from Next.

# Introspection

Beyond Next, free functions answer common questions about a schedule:

	times, err := groc.NextN(schedule, time.Now(), 10)
	times, err := groc.Between(schedule, start, end)
	count, err := groc.Count(schedule, start, end)
	ok := groc.Matches(schedule, t)

Between and Count treat the range as (start, end): strictly after start,
excluding end. Matches reports false for plain intervals, which have no
fixed phase to match against.

# Equality and Hashing

Schedules compare by meaning, not by spelling:

	a, _ := groc.Parse("mon,monday of jan 09:00")
	b, _ := groc.Parse("monday of january 9:00")
	a.Equal(b)             // true
	a.Hash() == b.Hash()   // true

Hash is a 64-bit FNV-1a over the normalized form, suitable for
deduplicating schedules or keying them in maps alongside Equal.

String renders the normalized canonical text, which parses back to an
equal schedule.

# Logging

The package defines a Logger interface that is a subset of the one in
github.com/go-logr/logr. It has two logging levels (Info and Error), and
parameters are key/value pairs, so logging can plug into structured
logging systems. Adapters are provided for the standard library:
[Verbose]PrintfLogger wraps a *log.Logger, and NewSlogLogger wraps
log/slog.

Schedules log at Info level when DST forces a resolution decision, such
as skipping a day whose scheduled time falls into a spring-forward gap.
The default is DiscardLogger; nothing is logged unless a logger is
attached via Parser.WithLogger.

# Security Considerations

Input validation:
  - Schedule text is limited to 1024 bytes (MaxScheduleLength)
  - All fields are range-checked during construction
  - Occurrence search is bounded; pathological schedules return
    *UnreachableScheduleError instead of looping

Recommended patterns:
  - Validate user-provided schedule text before storing it
  - Use ValidateAll for configuration files
  - Treat UnreachableScheduleError as a configuration error

# Implementation

Specific-time schedules walk candidate months in a cycle starting from
the query month, generate the matching day numbers per month, and
resolve each candidate wall time against the time zone database. The
search is bounded at 48 candidate months. Interval schedules are
computed arithmetically; ranged intervals locate the enclosing window
start and step from there.

Wall-time resolution probes zone offsets directly rather than trusting a
single construction, which is what makes the gap and fall-back rules
above hold on any IANA zone, including half-hour zones and zones whose
standard offset changed over time.
*/
package groc
