package groc

import (
	"strconv"
	"strings"
	"unicode"
)

// tokenKind identifies the lexical class of a token.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokTime
	tokOrdinal
	tokWeekday
	tokMonth
	tokEvery
	tokDay
	tokMonthWord
	tokOf
	tokFrom
	tokTo
	tokSynchronized
	tokMinutes
	tokHours
	tokComma
)

// kindNames provides human-readable names for error messages.
var kindNames = map[tokenKind]string{
	tokEOF:          "end of input",
	tokNumber:       "number",
	tokTime:         "time",
	tokOrdinal:      "ordinal",
	tokWeekday:      "weekday",
	tokMonth:        "month",
	tokEvery:        `"every"`,
	tokDay:          `"day"`,
	tokMonthWord:    `"month"`,
	tokOf:           `"of"`,
	tokFrom:         `"from"`,
	tokTo:           `"to"`,
	tokSynchronized: `"synchronized"`,
	tokMinutes:      `"minutes"`,
	tokHours:        `"hours"`,
	tokComma:        `","`,
}

func (k tokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "token"
}

// token is a single lexical unit of a schedule string. For tokNumber and
// tokOrdinal, val holds the numeric value; for tokWeekday 0-6 (0=Sunday);
// for tokMonth 1-12; for tokTime, hour*60+minute.
type token struct {
	kind tokenKind
	val  int
	text string
	pos  int
}

// keywordToken pairs a token kind with a fixed value for keyword lookup.
type keywordToken struct {
	kind tokenKind
	val  int
}

// keywords maps every word the schedule language accepts to its token.
// Weekday and month names are accepted as full names and common
// abbreviations; ordinals additionally as words.
var keywords = map[string]keywordToken{
	"every":        {tokEvery, 0},
	"day":          {tokDay, 0},
	"month":        {tokMonthWord, 0},
	"of":           {tokOf, 0},
	"from":         {tokFrom, 0},
	"to":           {tokTo, 0},
	"synchronized": {tokSynchronized, 0},
	"minutes":      {tokMinutes, 0},
	"mins":         {tokMinutes, 0},
	"hours":        {tokHours, 0},

	"first":  {tokOrdinal, 1},
	"second": {tokOrdinal, 2},
	"third":  {tokOrdinal, 3},
	"fourth": {tokOrdinal, 4},
	"fifth":  {tokOrdinal, 5},

	"sun":       {tokWeekday, 0},
	"sunday":    {tokWeekday, 0},
	"mon":       {tokWeekday, 1},
	"monday":    {tokWeekday, 1},
	"tue":       {tokWeekday, 2},
	"tues":      {tokWeekday, 2},
	"tuesday":   {tokWeekday, 2},
	"wed":       {tokWeekday, 3},
	"wednesday": {tokWeekday, 3},
	"thu":       {tokWeekday, 4},
	"thur":      {tokWeekday, 4},
	"thurs":     {tokWeekday, 4},
	"thursday":  {tokWeekday, 4},
	"fri":       {tokWeekday, 5},
	"friday":    {tokWeekday, 5},
	"sat":       {tokWeekday, 6},
	"saturday":  {tokWeekday, 6},

	"jan":       {tokMonth, 1},
	"january":   {tokMonth, 1},
	"feb":       {tokMonth, 2},
	"february":  {tokMonth, 2},
	"mar":       {tokMonth, 3},
	"march":     {tokMonth, 3},
	"apr":       {tokMonth, 4},
	"april":     {tokMonth, 4},
	"may":       {tokMonth, 5},
	"jun":       {tokMonth, 6},
	"june":      {tokMonth, 6},
	"jul":       {tokMonth, 7},
	"july":      {tokMonth, 7},
	"aug":       {tokMonth, 8},
	"august":    {tokMonth, 8},
	"sep":       {tokMonth, 9},
	"september": {tokMonth, 9},
	"oct":       {tokMonth, 10},
	"october":   {tokMonth, 10},
	"nov":       {tokMonth, 11},
	"november":  {tokMonth, 11},
	"dec":       {tokMonth, 12},
	"december":  {tokMonth, 12},
}

// ordinalSuffixes are the accepted suffixes for digit ordinals ("1st".."5th").
var ordinalSuffixes = map[string]bool{"st": true, "nd": true, "rd": true, "th": true}

// lex splits a schedule string into tokens. Keywords are case-insensitive.
// The returned slice always ends with a tokEOF token carrying the position
// one past the end of input.
func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := rune(input[i])
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		case unicode.IsDigit(c):
			tok, next, err := lexNumber(input, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case unicode.IsLetter(c):
			start := i
			for i < len(input) && unicode.IsLetter(rune(input[i])) {
				i++
			}
			word := input[start:i]
			kw, ok := keywords[strings.ToLower(word)]
			if !ok {
				return nil, &InvalidScheduleError{
					Text:    input,
					Message: "unknown word " + strconv.Quote(word),
					Offset:  start,
				}
			}
			toks = append(toks, token{kind: kw.kind, val: kw.val, text: word, pos: start})
		default:
			return nil, &InvalidScheduleError{
				Text:    input,
				Message: "unexpected character " + strconv.QuoteRune(c),
				Offset:  i,
			}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})
	return toks, nil
}

// lexNumber scans a token starting with a digit: a bare number, a time
// literal (H:MM or HH:MM), or a digit ordinal (1st..5th).
func lexNumber(input string, start int) (token, int, error) {
	i := start
	for i < len(input) && unicode.IsDigit(rune(input[i])) {
		i++
	}
	digits := input[start:i]

	// Time literal: hour is one or two digits, minute exactly two.
	if i < len(input) && input[i] == ':' {
		if len(digits) > 2 {
			return token{}, 0, &InvalidScheduleError{
				Text:    input,
				Message: "hour must be one or two digits",
				Offset:  start,
			}
		}
		j := i + 1
		for j < len(input) && unicode.IsDigit(rune(input[j])) {
			j++
		}
		minuteDigits := input[i+1 : j]
		if len(minuteDigits) != 2 {
			return token{}, 0, &InvalidScheduleError{
				Text:    input,
				Message: "minute must be exactly two digits",
				Offset:  i + 1,
			}
		}
		hour, _ := strconv.Atoi(digits)
		minute, _ := strconv.Atoi(minuteDigits)
		if hour > 23 {
			return token{}, 0, &InvalidScheduleError{
				Text:    input,
				Message: "hour out of range (0-23)",
				Offset:  start,
			}
		}
		if minute > 59 {
			return token{}, 0, &InvalidScheduleError{
				Text:    input,
				Message: "minute out of range (0-59)",
				Offset:  i + 1,
			}
		}
		return token{kind: tokTime, val: hour*60 + minute, text: input[start:j], pos: start}, j, nil
	}

	// Digit ordinal: number directly followed by st/nd/rd/th.
	if i < len(input) && unicode.IsLetter(rune(input[i])) {
		j := i
		for j < len(input) && unicode.IsLetter(rune(input[j])) {
			j++
		}
		suffix := strings.ToLower(input[i:j])
		if !ordinalSuffixes[suffix] {
			return token{}, 0, &InvalidScheduleError{
				Text:    input,
				Message: "unknown ordinal suffix " + strconv.Quote(input[i:j]),
				Offset:  i,
			}
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return token{}, 0, &InvalidScheduleError{
				Text:    input,
				Message: "invalid ordinal " + strconv.Quote(input[start:j]),
				Offset:  start,
				Err:     err,
			}
		}
		return token{kind: tokOrdinal, val: n, text: input[start:j], pos: start}, j, nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return token{}, 0, &InvalidScheduleError{
			Text:    input,
			Message: "invalid number " + strconv.Quote(digits),
			Offset:  start,
			Err:     err,
		}
	}
	return token{kind: tokNumber, val: n, text: digits, pos: start}, i, nil
}
