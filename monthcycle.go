package groc

// monthCycle is an infinite cursor over a sorted, non-empty set of
// candidate months. Each call to next yields the smallest candidate after
// the previous yield, wrapping to the start of the set and counting a year
// boundary when the current pass is exhausted. The first call may yield
// the starting month itself.
//
// A cycle is local to a single Next invocation and is never shared.
type monthCycle struct {
	months []int
	after  int
	wraps  int
}

func newMonthCycle(start int, months []int) *monthCycle {
	return &monthCycle{months: months, after: start - 1}
}

// next returns the next candidate month and the number of year wraps that
// have occurred so far. Deterministic: the same initial state always
// produces the same sequence.
func (c *monthCycle) next() (month, yearWraps int) {
	for _, m := range c.months {
		if m > c.after {
			c.after = m
			return m, c.wraps
		}
	}
	c.wraps++
	c.after = c.months[0]
	return c.after, c.wraps
}
