package groc

import (
	"fmt"
	"strconv"
	"strings"
)

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var monthNames = [13]string{
	"", "jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// ordinalString renders a 1-5 ordinal the way the schedule language
// writes it.
func ordinalString(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

// String renders the schedule back to schedule-language text. Full field
// sets collapse to their shorthand: all ordinals to "every", all weekdays
// to "day", and the month clause is omitted when every month is selected.
// The output re-parses to an equal schedule.
func (s *SpecificTimeSchedule) String() string {
	var b strings.Builder
	if len(s.monthdays) > 0 {
		b.WriteString(intListString(s.monthdays))
	} else {
		if intSetsEqual(s.ordinals, allOrdinals) {
			b.WriteString("every")
		} else {
			for i, o := range s.ordinals {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(ordinalString(o))
			}
		}
		b.WriteByte(' ')
		if intSetsEqual(s.weekdays, allWeekdays) {
			b.WriteString("day")
		} else {
			for i, wd := range s.weekdays {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(weekdayNames[wd])
			}
		}
	}
	if !intSetsEqual(s.months, allMonths) {
		b.WriteString(" of ")
		for i, m := range s.months {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(monthNames[m])
		}
	}
	b.WriteByte(' ')
	b.WriteString(s.tod.String())
	return b.String()
}

// String renders the schedule back to schedule-language text. The output
// re-parses to an equal schedule.
func (s *IntervalSchedule) String() string {
	var b strings.Builder
	b.WriteString("every ")
	b.WriteString(strconv.Itoa(s.interval))
	b.WriteByte(' ')
	b.WriteString(s.unit.String())
	if s.timeRange != nil {
		fmt.Fprintf(&b, " from %02d:%02d to %02d:%02d",
			s.timeRange.Start.Hour, s.timeRange.Start.Minute,
			s.timeRange.End.Hour, s.timeRange.End.Minute)
	}
	if s.synchronized {
		b.WriteString(" synchronized")
	}
	return b.String()
}
