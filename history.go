package ascent

import (
	"sort"

	"github.com/etnz/ascent/date"
	"github.com/shopspring/decimal"
)

// HistoryEntry is an immutable record of one reported update (or the
// creation seed) for a goal.
//
// GoalName is a denormalized copy of the goal's name at the time of the
// entry; goals cannot be renamed so it never goes stale. Progress is the
// resulting score after this entry was applied. Percentage is the raw
// reported value (0, 50 or 100; 0 for the seed entry) and Change the signed
// adjustment it produced (0 for the seed entry).
type HistoryEntry struct {
	GoalID     string
	GoalName   string
	Date       date.Date
	Progress   decimal.Decimal
	Percentage int
	Change     decimal.Decimal
}

// sortEntries sorts history entries chronologically, preserving the
// insertion order of entries sharing the same date.
func sortEntries(entries []HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
