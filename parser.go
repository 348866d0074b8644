package groc

import (
	"errors"
	"hash/fnv"
	"strconv"
	"strings"
	"time"
)

// Parser turns schedule text into Schedule values. Configuration is
// copy-on-write: the With* methods return a modified copy, so a configured
// Parser can be stored in a package variable and shared freely.
//
// The zero value parses in UTC; NewParser is the documented way to obtain
// one.
type Parser struct {
	loc    *time.Location
	logger Logger
}

// NewParser returns a Parser that evaluates schedules in UTC and logs
// nothing.
//
// Example:
//
//	p := groc.NewParser().WithLocation(nyc)
//	sched, err := p.Parse("every day 09:00")
func NewParser() Parser {
	return Parser{loc: time.UTC, logger: DiscardLogger}
}

// WithLocation returns a copy of the parser whose schedules are evaluated
// in loc. A nil loc leaves the parser unchanged.
func (p Parser) WithLocation(loc *time.Location) Parser {
	if loc != nil {
		p.loc = loc
	}
	return p
}

// WithLogger returns a copy of the parser that attaches l to the schedules
// it produces. Schedules report daylight saving resolution decisions
// through the logger at Info level; the default is DiscardLogger, so a
// library user sees nothing unless they ask.
func (p Parser) WithLogger(l Logger) Parser {
	if l != nil {
		p.logger = l
	}
	return p
}

// MaxScheduleLength is the maximum accepted schedule text length. The
// limit prevents resource exhaustion from extremely long inputs.
const MaxScheduleLength = 1024

var standardParser = NewParser()

// Parse parses schedule text evaluated in UTC.
//
// It accepts the groc schedule language:
//   - specific times: "every day 09:00", "2nd,4th monday of jan,feb 10:00",
//     "1,15 of month 12:30", "09:00"
//   - intervals: "every 5 minutes", "every 2 hours synchronized",
//     "every 30 minutes from 08:00 to 17:00"
//
// It returns a descriptive *InvalidScheduleError if the text is not a
// valid schedule.
func Parse(text string) (Schedule, error) {
	return standardParser.Parse(text)
}

// ParseInLocation is like Parse, with the schedule evaluated in loc.
// Specific-time and ranged-interval schedules fire at wall-clock times of
// that location, including across daylight saving transitions.
func ParseInLocation(text string, loc *time.Location) (Schedule, error) {
	return standardParser.WithLocation(loc).Parse(text)
}

// MustParse is like Parse but panics on error. It simplifies hardcoded
// schedules where invalid text is a programming error.
func MustParse(text string) Schedule {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse parses schedule text into a Schedule evaluated in the parser's
// location. It returns a *SpecificTimeSchedule or an *IntervalSchedule
// behind the Schedule interface, or a descriptive *InvalidScheduleError.
func (p Parser) Parse(text string) (Schedule, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptySchedule
	}
	if len(trimmed) > MaxScheduleLength {
		return nil, &InvalidScheduleError{
			Message: "schedule too long: " + strconv.Itoa(len(trimmed)) +
				" > " + strconv.Itoa(MaxScheduleLength),
		}
	}
	toks, err := lex(trimmed)
	if err != nil {
		return nil, err
	}
	ps := &parseState{input: trimmed, toks: toks}
	return ps.parseTimespec(p)
}

// parseState is a recursive-descent cursor over the token stream.
type parseState struct {
	input string
	toks  []token
	pos   int
}

func (ps *parseState) peek() token {
	return ps.toks[ps.pos]
}

func (ps *parseState) next() token {
	t := ps.toks[ps.pos]
	if t.kind != tokEOF {
		ps.pos++
	}
	return t
}

func (ps *parseState) errorf(at token, msg string) error {
	return &InvalidScheduleError{Text: ps.input, Message: msg, Offset: at.pos}
}

// describe renders a token for error messages.
func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// parseTimespec dispatches between the two schedule forms. "every"
// followed by a bare number opens an interval clause; "every" directly
// followed by a unit keyword is an interval missing its count; everything
// else is a specific-time spec.
func (ps *parseState) parseTimespec(p Parser) (Schedule, error) {
	if ps.peek().kind == tokEvery {
		switch tok := ps.toks[ps.pos+1]; tok.kind {
		case tokNumber:
			return ps.parseInterval(p)
		case tokMinutes, tokHours:
			return nil, ps.errorf(tok, `expected an interval count after "every", found `+tok.describe())
		}
	}
	return ps.parseSpecificTime(p)
}

// parseInterval parses: "every" INT ("minutes"|"hours")
// ["from" TIME "to" TIME] ["synchronized"].
func (ps *parseState) parseInterval(p Parser) (Schedule, error) {
	ps.next() // every
	count := ps.next()

	var unit IntervalUnit
	switch tok := ps.next(); tok.kind {
	case tokMinutes:
		unit = Minutes
	case tokHours:
		unit = Hours
	default:
		return nil, ps.errorf(tok, `expected "minutes" or "hours", found `+tok.describe())
	}

	var window *TimeRange
	if ps.peek().kind == tokFrom {
		ps.next()
		start, err := ps.expectTime("from")
		if err != nil {
			return nil, err
		}
		if tok := ps.next(); tok.kind != tokTo {
			return nil, ps.errorf(tok, `expected "to", found `+tok.describe())
		}
		end, err := ps.expectTime("to")
		if err != nil {
			return nil, err
		}
		window = &TimeRange{Start: start, End: end}
	}

	synchronized := false
	if ps.peek().kind == tokSynchronized {
		ps.next()
		synchronized = true
	}
	if err := ps.expectEOF(); err != nil {
		return nil, err
	}

	sched, err := NewIntervalSchedule(count.val, unit, window, synchronized, p.loc)
	if err != nil {
		return nil, attachText(err, ps.input)
	}
	return sched, nil
}

// parseSpecificTime parses:
// [ordinals | "every"] ["day" | weekdays] [monthdays] ["of" months] TIME.
func (ps *parseState) parseSpecificTime(p Parser) (Schedule, error) {
	var ordinals, weekdays, monthdays, months []int
	var err error

	explicitOrdinals := false
	switch ps.peek().kind {
	case tokEvery:
		ps.next()
	case tokOrdinal:
		explicitOrdinals = true
		if ordinals, err = ps.parseList(tokOrdinal, "an ordinal"); err != nil {
			return nil, err
		}
	}

	switch ps.peek().kind {
	case tokDay:
		ps.next()
		weekdays = append([]int(nil), allWeekdays...)
	case tokWeekday:
		if weekdays, err = ps.parseList(tokWeekday, "a weekday"); err != nil {
			return nil, err
		}
	}

	if ps.peek().kind == tokNumber {
		if monthdays, err = ps.parseList(tokNumber, "a day of the month"); err != nil {
			return nil, err
		}
		if explicitOrdinals {
			return nil, ps.errorf(ps.toks[0],
				"ordinals apply to weekdays, not days of the month")
		}
	}

	if ps.peek().kind == tokOf {
		ps.next()
		if ps.peek().kind == tokMonthWord {
			ps.next()
			months = append([]int(nil), allMonths...)
		} else if months, err = ps.parseList(tokMonth, "a month"); err != nil {
			return nil, err
		}
	}

	timeTok := ps.next()
	if timeTok.kind != tokTime {
		return nil, ps.errorf(timeTok, "expected a time (HH:MM), found "+timeTok.describe())
	}
	if err := ps.expectEOF(); err != nil {
		return nil, err
	}

	tod := TimeOfDay{Hour: timeTok.val / 60, Minute: timeTok.val % 60}
	sched, err := NewSpecificTimeSchedule(ordinals, weekdays, monthdays, months, tod, p.loc)
	if err != nil {
		return nil, attachText(err, ps.input)
	}
	if p.logger != nil {
		sched.logger = p.logger
	}
	return sched, nil
}

// parseList parses a non-empty comma-separated list of same-kind tokens.
// The caller guarantees the first token matches.
func (ps *parseState) parseList(kind tokenKind, what string) ([]int, error) {
	var vals []int
	for {
		tok := ps.next()
		if tok.kind != kind {
			return nil, ps.errorf(tok, "expected "+what+", found "+tok.describe())
		}
		vals = append(vals, tok.val)
		if ps.peek().kind != tokComma {
			return vals, nil
		}
		ps.next()
	}
}

func (ps *parseState) expectTime(after string) (TimeOfDay, error) {
	tok := ps.next()
	if tok.kind != tokTime {
		return TimeOfDay{}, ps.errorf(tok, `expected a time after "`+after+`", found `+tok.describe())
	}
	return TimeOfDay{Hour: tok.val / 60, Minute: tok.val % 60}, nil
}

func (ps *parseState) expectEOF() error {
	if tok := ps.peek(); tok.kind != tokEOF {
		return ps.errorf(tok, "unexpected trailing "+tok.describe())
	}
	return nil
}

// attachText records the original schedule text on construction errors
// raised below the parser.
func attachText(err error, text string) error {
	var ie *InvalidScheduleError
	if errors.As(err, &ie) && ie.Text == "" {
		ie.Text = text
	}
	return err
}

// computeHash returns a deterministic hash value from a key.
// Uses FNV-1a which provides good distribution for string keys.
func computeHash(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // hash.Hash.Write never returns an error
	return h.Sum64()
}
