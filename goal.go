package ascent

import (
	"fmt"

	"github.com/etnz/ascent/date"
	"github.com/shopspring/decimal"
)

// Frequency defines the cadence at which a goal expects progress updates.
type Frequency int

const (
	// Daily goals expect one update per day.
	Daily Frequency = iota
	// Weekly goals expect one update per week.
	Weekly
	// Monthly goals expect one update per month.
	Monthly
)

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return "unknown"
	}
}

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch s {
	case "Daily", "daily":
		return Daily, nil
	case "Weekly", "weekly":
		return Weekly, nil
	case "Monthly", "monthly":
		return Monthly, nil
	default:
		return 0, fmt.Errorf("unknown frequency: %q (want Daily, Weekly or Monthly)", s)
	}
}

// Goal is a tracked habit or objective with a due date, a cadence, and a
// compounding progress score.
//
// The ID is assigned once at creation and never reused or changed. Progress
// starts at 1.0 and is only ever adjusted by SubmitUpdate.
type Goal struct {
	ID        string
	Name      string
	DueDate   date.Date
	Frequency Frequency
	Progress  decimal.Decimal
	DateAdded date.Date
	// Week caches the ISO week number of DateAdded for weekly filtering.
	Week int
}
