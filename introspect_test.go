package groc

import (
	"errors"
	"testing"
	"time"
)

// TestNextN tests the NextN function for retrieving multiple occurrences.
func TestNextN(t *testing.T) {
	schedule, err := Parse("every day 09:00")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	start := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "next 3 daily occurrences", n: 3, wantLen: 3},
		{name: "next 5 daily occurrences", n: 5, wantLen: 5},
		{name: "next 0 returns nothing", n: 0, wantLen: 0},
		{name: "negative n returns nothing", n: -1, wantLen: 0},
		{name: "next 1", n: 1, wantLen: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			times, err := NextN(schedule, start, tc.n)
			if err != nil {
				t.Fatal(err)
			}
			if len(times) != tc.wantLen {
				t.Fatalf("got %d times, want %d", len(times), tc.wantLen)
			}
			for i, tm := range times {
				want := time.Date(2024, time.June, 16+i, 9, 0, 0, 0, time.UTC)
				if !tm.Equal(want) {
					t.Errorf("times[%d] = %v, want %v", i, tm, want)
				}
			}
		})
	}
}

func TestNextNNilSchedule(t *testing.T) {
	times, err := NextN(nil, time.Now(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if times != nil {
		t.Errorf("NextN(nil, ...) = %v, want nil", times)
	}
}

// TestNextNUnreachable verifies that the error from an exhausted
// occurrence search propagates, along with any occurrences found before
// the failing one.
func TestNextNUnreachable(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	schedule, err := ParseInLocation("2nd sunday of mar 02:30", nyc)
	if err != nil {
		t.Fatal(err)
	}

	times, err := NextN(schedule, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	var unreachable *UnreachableScheduleError
	if !errors.As(err, &unreachable) {
		t.Fatalf("expected *UnreachableScheduleError, got %T", err)
	}
	if len(times) != 0 {
		t.Errorf("got %d times before the error, want 0", len(times))
	}
}

func TestBetween(t *testing.T) {
	schedule, err := Parse("every day 09:00")
	if err != nil {
		t.Fatal(err)
	}

	day := func(d, h, m int) time.Time {
		return time.Date(2024, time.May, d, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end time.Time
		wantLen    int
	}{
		{"three full days", day(1, 0, 0), day(4, 0, 0), 3},
		{"start is exclusive", day(1, 9, 0), day(4, 0, 0), 2},
		{"end is exclusive", day(1, 0, 0), day(3, 9, 0), 2},
		{"empty range", day(1, 0, 0), day(1, 0, 0), 0},
		{"inverted range", day(4, 0, 0), day(1, 0, 0), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			times, err := Between(schedule, tc.start, tc.end)
			if err != nil {
				t.Fatal(err)
			}
			if len(times) != tc.wantLen {
				t.Errorf("got %d times, want %d: %v", len(times), tc.wantLen, times)
			}
			for i, tm := range times {
				if !tm.After(tc.start) {
					t.Errorf("times[%d] = %v, not after start %v", i, tm, tc.start)
				}
				if !tm.Before(tc.end) {
					t.Errorf("times[%d] = %v, not before end %v", i, tm, tc.end)
				}
			}
		})
	}
}

func TestBetweenNilSchedule(t *testing.T) {
	times, err := Between(nil, time.Now(), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if times != nil {
		t.Errorf("Between(nil, ...) = %v, want nil", times)
	}
}

func TestBetweenWithLimit(t *testing.T) {
	schedule, err := Parse("every 5 minutes")
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	times, err := BetweenWithLimit(schedule, start, end, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 10 {
		t.Errorf("got %d times, want 10", len(times))
	}

	// Zero means no limit: a full day of five-minute steps.
	times, err = BetweenWithLimit(schedule, start, end, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 287 {
		t.Errorf("got %d times, want 287", len(times))
	}
}

func TestCount(t *testing.T) {
	schedule, err := Parse("every 1 hours")
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	count, err := Count(schedule, start, start.Add(6*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}

	count, err = Count(nil, start, start.Add(6*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d for nil schedule, want 0", count)
	}
}

func TestCountWithLimit(t *testing.T) {
	schedule, err := Parse("every 1 minutes")
	if err != nil {
		t.Fatal(err)
	}

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	count, err := CountWithLimit(schedule, start, start.Add(24*time.Hour), 100)
	if err != nil {
		t.Fatal(err)
	}
	if count != 100 {
		t.Errorf("count = %d, want 100", count)
	}
}

func TestMatches(t *testing.T) {
	at := func(h, m, s int) time.Time {
		return time.Date(2024, time.May, 6, h, m, s, 0, time.UTC)
	}

	tests := []struct {
		text string
		at   time.Time
		want bool
	}{
		{"every day 09:00", at(9, 0, 0), true},
		{"every day 09:00", at(9, 0, 30), true}, // seconds are ignored
		{"every day 09:01", at(9, 0, 0), false},
		{"every day 09:00", at(10, 0, 0), false},
		{"monday 09:00", at(9, 0, 0), true}, // 2024-05-06 is a Monday
		{"tuesday 09:00", at(9, 0, 0), false},

		{"every 2 hours synchronized", at(4, 0, 0), true},
		{"every 2 hours synchronized", at(5, 0, 0), false},
		{"every 2 hours synchronized", at(4, 30, 0), false},
		{"every 2 hours from 10:00 to 14:00", at(10, 0, 0), true},
		{"every 2 hours from 10:00 to 14:00", at(12, 0, 0), true},
		{"every 2 hours from 10:00 to 14:00", at(14, 0, 0), true},
		{"every 2 hours from 10:00 to 14:00", at(16, 0, 0), false},
		{"every 2 hours from 10:00 to 14:00", at(9, 0, 0), false},

		// Floating intervals have no fixed phase to match against.
		{"every 5 minutes", at(9, 0, 0), false},
		{"every 5 minutes", at(9, 5, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.text+"_"+tc.at.Format("15:04:05"), func(t *testing.T) {
			schedule, err := Parse(tc.text)
			if err != nil {
				t.Fatal(err)
			}
			if got := Matches(schedule, tc.at); got != tc.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tc.text, tc.at, got, tc.want)
			}
		})
	}

	if Matches(nil, time.Now()) {
		t.Error("Matches(nil, ...) = true, want false")
	}
}
