package groc

import "testing"

func TestMonthCycle(t *testing.T) {
	type step struct {
		month int
		wraps int
	}

	tests := []struct {
		name   string
		start  int
		months []int
		want   []step
	}{
		{
			name:   "all_months_from_november",
			start:  11,
			months: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
			want:   []step{{11, 0}, {12, 0}, {1, 1}, {2, 1}, {3, 1}},
		},
		{
			name:   "sparse_set_wraps_immediately",
			start:  3,
			months: []int{1, 2},
			want:   []step{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
		},
		{
			name:   "single_month_matching_start",
			start:  3,
			months: []int{3},
			want:   []step{{3, 0}, {3, 1}, {3, 2}},
		},
		{
			name:   "single_month_december_start",
			start:  12,
			months: []int{12},
			want:   []step{{12, 0}, {12, 1}},
		},
		{
			name:   "start_between_candidates",
			start:  5,
			months: []int{3, 9},
			want:   []step{{9, 0}, {3, 1}, {9, 1}, {3, 2}},
		},
		{
			name:   "first_call_yields_start",
			start:  9,
			months: []int{3, 9},
			want:   []step{{9, 0}, {3, 1}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cycle := newMonthCycle(tc.start, tc.months)
			for i, want := range tc.want {
				month, wraps := cycle.next()
				if month != want.month || wraps != want.wraps {
					t.Fatalf("step %d = (%d, %d), want (%d, %d)",
						i, month, wraps, want.month, want.wraps)
				}
			}
		})
	}
}
