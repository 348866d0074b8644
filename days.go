package groc

import (
	"sort"
	"time"
)

// matchingDays returns the ascending days of the given month that satisfy
// the schedule's day selection. In weekday mode the day of the Nth
// occurrence of a weekday follows from the weekday of the 1st; in monthday
// mode the selection is clipped to the month's length. The result may be
// empty, e.g. a fifth ordinal in a short month.
func (s *SpecificTimeSchedule) matchingDays(year int, month time.Month) []int {
	last := lastDayOfMonth(year, month)
	if len(s.monthdays) > 0 {
		var days []int
		for _, d := range s.monthdays {
			if d <= last {
				days = append(days, d)
			}
		}
		return days
	}

	firstWeekday := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	days := make([]int, 0, len(s.ordinals)*len(s.weekdays))
	for _, wd := range s.weekdays {
		first := (7+wd-firstWeekday)%7 + 1
		for _, ord := range s.ordinals {
			if d := first + 7*(ord-1); d <= last {
				days = append(days, d)
			}
		}
	}
	sort.Ints(days)
	return days
}

// lastDayOfMonth returns the number of days in the month, leap years
// included. Day zero of the following month normalizes to the last day of
// this one.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
