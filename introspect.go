package groc

import "time"

// NextN returns the next n occurrences of the schedule, starting strictly
// after t. Returns nil if schedule is nil or n <= 0.
//
// This is useful for:
//   - Previews showing upcoming runs
//   - Capacity planning
//   - Debugging schedule text
//
// Example:
//
//	schedule, _ := groc.Parse("every monday 09:00")
//	times, err := groc.NextN(schedule, time.Now(), 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range times {
//	    fmt.Println("next run:", t)
//	}
func NextN(schedule Schedule, t time.Time, n int) ([]time.Time, error) {
	if schedule == nil || n <= 0 {
		return nil, nil
	}

	times := make([]time.Time, 0, n)
	current := t

	for i := 0; i < n; i++ {
		next, err := schedule.Next(current)
		if err != nil {
			return times, err
		}
		times = append(times, next)
		current = next
	}

	return times, nil
}

// Between returns all occurrences in the range (start, end). Occurrences
// are strictly after start; the end time is exclusive. Returns nil if
// schedule is nil.
//
// WARNING: for high-frequency schedules over long ranges this can return
// many results. Use BetweenWithLimit for bounded queries.
//
// Example:
//
//	schedule, _ := groc.Parse("every day 09:00")
//	start := time.Now()
//	end := start.AddDate(0, 1, 0)
//	times, err := groc.Between(schedule, start, end)
func Between(schedule Schedule, start, end time.Time) ([]time.Time, error) {
	return BetweenWithLimit(schedule, start, end, 0)
}

// BetweenWithLimit returns occurrences in the range (start, end) up to
// limit. If limit is 0 or negative, no limit is applied. Returns nil if
// schedule is nil.
//
// Example:
//
//	schedule, _ := groc.Parse("every 1 minutes")
//	times, err := groc.BetweenWithLimit(schedule, start, end, 100)
func BetweenWithLimit(schedule Schedule, start, end time.Time, limit int) ([]time.Time, error) {
	if schedule == nil {
		return nil, nil
	}

	if !start.Before(end) {
		return nil, nil
	}

	var times []time.Time
	if limit > 0 {
		times = make([]time.Time, 0, limit)
	}

	current := start
	for {
		next, err := schedule.Next(current)
		if err != nil {
			return times, err
		}
		if !next.Before(end) {
			break
		}
		times = append(times, next)
		current = next

		if limit > 0 && len(times) >= limit {
			break
		}
	}

	return times, nil
}

// Count returns the number of occurrences in the range (start, end).
// The end time is exclusive. Returns 0 if schedule is nil.
//
// WARNING: for high-frequency schedules over long ranges this may take
// significant time. Use CountWithLimit for bounded counting.
//
// Example:
//
//	schedule, _ := groc.Parse("every 1 hours")
//	count, err := groc.Count(schedule, start, end)
func Count(schedule Schedule, start, end time.Time) (int, error) {
	return CountWithLimit(schedule, start, end, 0)
}

// CountWithLimit counts occurrences in the range (start, end) up to limit.
// If limit is 0 or negative, no limit is applied. The count will be at
// most limit if a limit was specified. Returns 0 if schedule is nil.
//
// Example:
//
//	schedule, _ := groc.Parse("every 1 minutes")
//	count, err := groc.CountWithLimit(schedule, start, end, 10000)
//	if count == 10000 {
//	    fmt.Println("at least 10000 occurrences")
//	}
func CountWithLimit(schedule Schedule, start, end time.Time, limit int) (int, error) {
	if schedule == nil {
		return 0, nil
	}

	if !start.Before(end) {
		return 0, nil
	}

	count := 0
	current := start

	for {
		next, err := schedule.Next(current)
		if err != nil {
			return count, err
		}
		if !next.Before(end) {
			break
		}
		count++
		current = next

		if limit > 0 && count >= limit {
			break
		}
	}

	return count, nil
}

// Matches reports whether the given time is an occurrence of the schedule.
// Seconds and nanoseconds in t are ignored; occurrences land on whole
// minutes.
//
// Interval schedules without a range or synchronization have no fixed
// phase (each occurrence is relative to the previous one), so Matches
// returns false for them. Returns false if schedule is nil.
//
// Example:
//
//	schedule, _ := groc.Parse("every monday 09:00")
//	if groc.Matches(schedule, time.Now()) {
//	    fmt.Println("now is a scheduled time")
//	}
func Matches(schedule Schedule, t time.Time) bool {
	if schedule == nil {
		return false
	}

	if iv, ok := schedule.(*IntervalSchedule); ok && !iv.anchored() {
		return false
	}

	// Probe from one minute before: the candidate time matches exactly
	// when it is the first occurrence after that probe.
	tt := t.Truncate(time.Minute)
	next, err := schedule.Next(tt.Add(-time.Minute))
	if err != nil {
		return false
	}
	return next.Equal(tt)
}
