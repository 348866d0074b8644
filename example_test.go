package groc_test

import (
	"fmt"
	"log"
	"time"

	groc "github.com/netresearch/go-groc"
)

// This example demonstrates basic schedule parsing and occurrence
// computation.
func Example() {
	schedule, err := groc.Parse("every monday 09:00")
	if err != nil {
		log.Fatal(err)
	}

	// Get the next occurrence after a Wednesday
	now := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)
	next, err := schedule.Next(now)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Next run: %s\n", next.Format("Mon 15:04"))
	// Output: Next run: Mon 09:00
}

// This example demonstrates that parsed schedules render back to
// normalized text.
func ExampleParse() {
	schedule, err := groc.Parse("first,third FRI of jan,march 8:15")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(schedule)
	// Output: 1st,3rd friday of jan,mar 8:15
}

// This example demonstrates MustParse for hardcoded schedules.
func ExampleMustParse() {
	schedule := groc.MustParse("every 5 minutes")

	fmt.Println(schedule)
	// Output: every 5 minutes
}

// This example demonstrates timezone-aware scheduling. The schedule fires
// at 9 AM New York wall-clock time, and the occurrence is reported in the
// timezone of the query time.
func ExampleParseInLocation() {
	nyc, _ := time.LoadLocation("America/New_York")

	schedule, err := groc.ParseInLocation("every day 09:00", nyc)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	next, _ := schedule.Next(now)

	fmt.Println(next.Format(time.RFC3339))
	fmt.Println(next.In(nyc).Format("15:04 MST"))
	// Output:
	// 2024-01-09T14:00:00Z
	// 09:00 EST
}

// This example demonstrates configuring a reusable parser.
func ExampleParser_WithLocation() {
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	parser := groc.NewParser().WithLocation(tokyo)

	schedule, err := parser.Parse("every day 09:00")
	if err != nil {
		log.Fatal(err)
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, tokyo)
	next, _ := schedule.Next(now)
	fmt.Println(next.Format("2006-01-02 15:04 MST"))
	// Output: 2024-06-02 09:00 JST
}

// This example demonstrates computing several upcoming occurrences.
func ExampleNextN() {
	schedule := groc.MustParse("1st monday of month 10:00")

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	runs, err := groc.NextN(schedule, now, 3)
	if err != nil {
		log.Fatal(err)
	}
	for _, run := range runs {
		fmt.Println(run.Format("2006-01-02 15:04"))
	}
	// Output:
	// 2024-07-01 10:00
	// 2024-08-05 10:00
	// 2024-09-02 10:00
}

// This example demonstrates listing occurrences within a time range.
func ExampleBetween() {
	schedule := groc.MustParse("every monday 09:00")

	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	times, err := groc.Between(schedule, start, end)
	if err != nil {
		log.Fatal(err)
	}
	for _, tm := range times {
		fmt.Println(tm.Format("2006-01-02"))
	}
	// Output:
	// 2024-07-01
	// 2024-07-08
	// 2024-07-15
	// 2024-07-22
	// 2024-07-29
}

// This example demonstrates counting occurrences within a time range.
func ExampleCount() {
	schedule := groc.MustParse("every 30 minutes from 08:00 to 17:00")

	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)
	count, err := groc.Count(schedule, start, end)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d runs\n", count)
	// Output: 19 runs
}

// This example demonstrates checking whether a time is an occurrence.
// Seconds and finer are ignored.
func ExampleMatches() {
	schedule := groc.MustParse("every 2 hours synchronized")

	fmt.Println(groc.Matches(schedule, time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC)))
	fmt.Println(groc.Matches(schedule, time.Date(2024, 7, 1, 5, 0, 0, 0, time.UTC)))
	// Output:
	// true
	// false
}

// This example demonstrates validating schedule text from user input.
func ExampleValidate() {
	if err := groc.Validate("every day 09:00"); err == nil {
		fmt.Println("schedule is valid")
	}

	err := groc.Validate("31 of feb 10:00")
	fmt.Println(err)
	// Output:
	// schedule is valid
	// invalid schedule "31 of feb 10:00": no selected month ever contains any of the selected days in monthdays: 31
}

// This example demonstrates inspecting schedule text without computing
// occurrences by hand.
func ExampleAnalyzeAt() {
	ref := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	analysis := groc.AnalyzeAt("every 2 hours from 10:00 to 14:00", ref)

	fmt.Printf("kind: %s\n", analysis.Kind)
	fmt.Printf("interval: %s\n", analysis.Interval)
	for _, run := range analysis.NextRuns {
		fmt.Println(run.Format("2006-01-02 15:04"))
	}
	// Output:
	// kind: interval
	// interval: 2h0m0s
	// 2024-07-01 10:00
	// 2024-07-01 12:00
	// 2024-07-01 14:00
}

// This example demonstrates verbose logging of daylight saving
// resolution decisions.
func ExampleVerbosePrintfLogger() {
	logger := groc.VerbosePrintfLogger(log.Default())

	nyc, _ := time.LoadLocation("America/New_York")
	parser := groc.NewParser().WithLocation(nyc).WithLogger(logger)

	// 2:30 AM does not exist on the spring-forward day; the skip is logged.
	schedule, err := parser.Parse("every day 02:30")
	if err != nil {
		log.Fatal(err)
	}
	schedule.Next(time.Date(2024, 3, 9, 12, 0, 0, 0, nyc))
	// Output:
}
