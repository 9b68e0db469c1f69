package ascent

import (
	"fmt"

	"github.com/etnz/ascent/date"
	"github.com/shopspring/decimal"
)

// DefaultMilestones are the score thresholds annotated as peaks on the
// climb chart.
var DefaultMilestones = []decimal.Decimal{
	decimal.RequireFromString("1.5"),
	decimal.RequireFromString("2.0"),
}

// Peaks returns the subset of thresholds the goal's score has reached.
// Thresholds are expected in ascending order and returned in that order.
func Peaks(g Goal, thresholds []decimal.Decimal) []decimal.Decimal {
	var reached []decimal.Decimal
	for _, t := range thresholds {
		if g.Progress.GreaterThanOrEqual(t) {
			reached = append(reached, t)
		}
	}
	return reached
}

// LatestEntry returns the most recent history entry of a goal, or false if
// the goal has no history at all.
func (l *Ledger) LatestEntry(goalID string) (HistoryEntry, bool) {
	entries := l.History(goalID)
	if len(entries) == 0 {
		return HistoryEntry{}, false
	}
	return entries[len(entries)-1], true
}

// CurrentWeekGoals returns the goals whose tracking began in the ISO week
// of 'today'.
//
// "Weekly progress" deliberately means goals added this week, not goals
// updated this week: the cached week of DateAdded is the filter.
func (l *Ledger) CurrentWeekGoals(today date.Date) []Goal {
	var goals []Goal
	week := today.Week()
	for _, g := range l.goals {
		if g.Week == week {
			goals = append(goals, g)
		}
	}
	return goals
}

// ClimbReport is the per-goal view consumed by the climb chart: the full
// chronological history with the derived streak, reached milestones, and the
// score series per day.
type ClimbReport struct {
	Goal    Goal
	Entries []HistoryEntry
	Streak  int
	Peaks   []decimal.Decimal
	// Series holds the end-of-day score for every day with an entry.
	Series *date.History[float64]
}

// NewClimbReport builds the climb report for one goal. It fails with
// ErrGoalNotFound for an unknown id.
func (l *Ledger) NewClimbReport(goalID string, milestones []decimal.Decimal) (*ClimbReport, error) {
	g := l.Goal(goalID)
	if g == nil {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goalID)
	}

	entries := l.History(goalID)
	series := new(date.History[float64])
	for _, e := range entries {
		// Several entries on the same day collapse to the last score.
		series.Append(e.Date, e.Progress.InexactFloat64())
	}

	return &ClimbReport{
		Goal:    *g,
		Entries: entries,
		Streak:  Streak(entries),
		Peaks:   Peaks(*g, milestones),
		Series:  series,
	}, nil
}

// WeeklyReport is the view of the goals whose tracking began this ISO week,
// with their current scores.
type WeeklyReport struct {
	Week  int
	Goals []Goal
}

// NewWeeklyReport builds the weekly report as of 'today'.
func (l *Ledger) NewWeeklyReport(today date.Date) *WeeklyReport {
	return &WeeklyReport{
		Week:  today.Week(),
		Goals: l.CurrentWeekGoals(today),
	}
}
