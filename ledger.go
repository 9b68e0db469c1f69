package ascent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/ascent/date"
)

// Sentinel errors returned by the mutating operations. Callers discriminate
// with errors.Is; no operation leaves the ledger partially mutated after
// returning one of these.
var (
	// ErrValidation reports an invalid request: an empty goal name, or an
	// import file missing required columns.
	ErrValidation = errors.New("invalid request")
	// ErrGoalNotFound reports an update submitted against an unknown goal.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrInvalidPercentage reports a percentage outside {0, 50, 100}.
	ErrInvalidPercentage = errors.New("percentage must be 0, 50 or 100")
)

// Ledger holds the two tables of record: the goals and their append-only
// progress history.
//
// Goal rows are mutated in place (score only) by SubmitUpdate; history rows
// are never mutated or deleted. The ledger is process-local state: every
// mutating command loads it, transforms it and rewrites it fully (see Load
// and Save).
type Ledger struct {
	goals   []Goal
	entries []HistoryEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		goals:   make([]Goal, 0),
		entries: make([]HistoryEntry, 0),
	}
}

// Goals returns all goal rows, in creation order. The returned slice is
// read-only.
func (l *Ledger) Goals() []Goal { return l.goals }

// Entries returns all history rows, in insertion order. The returned slice
// is read-only.
func (l *Ledger) Entries() []HistoryEntry { return l.entries }

// Goal returns the goal declared with this id, or nil if unknown.
//
// Should several rows ever share an id, the first one wins.
func (l *Ledger) Goal(id string) *Goal {
	for i := range l.goals {
		if l.goals[i].ID == id {
			return &l.goals[i]
		}
	}
	return nil
}

// History returns the chronological history of a goal, including its seed
// entry. Entries sharing a date keep their insertion order.
func (l *Ledger) History(goalID string) []HistoryEntry {
	var entries []HistoryEntry
	for _, e := range l.entries {
		if e.GoalID == goalID {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries
}

// nextID derives the next goal identifier from the number of distinct
// existing ids. Goals cannot be deleted, so the count only grows and the
// scheme cannot collide.
func (l *Ledger) nextID() string {
	distinct := make(map[string]struct{}, len(l.goals))
	for _, g := range l.goals {
		distinct[g.ID] = struct{}{}
	}
	return fmt.Sprintf("G%d", len(distinct)+1)
}

// seed appends the goal row and its synthetic seed history entry. Creation
// and import share this path so that every goal starts with the same pair.
func (l *Ledger) seed(g Goal) {
	l.goals = append(l.goals, g)
	l.entries = append(l.entries, HistoryEntry{
		GoalID:     g.ID,
		GoalName:   g.Name,
		Date:       g.DateAdded,
		Progress:   g.Progress,
		Percentage: 0,
		// Change is zero: the seed is not a reported update.
	})
}

// CreateGoal inserts a new goal with the seed score and its seed history
// entry, both dated 'on'. It returns the created goal.
//
// The name must not be blank; the ledger is left untouched otherwise.
func (l *Ledger) CreateGoal(name string, due date.Date, freq Frequency, on date.Date) (Goal, error) {
	if strings.TrimSpace(name) == "" {
		return Goal{}, fmt.Errorf("%w: goal name cannot be empty", ErrValidation)
	}
	g := Goal{
		ID:        l.nextID(),
		Name:      name,
		DueDate:   due,
		Frequency: freq,
		Progress:  SeedScore,
		DateAdded: on,
		Week:      on.Week(),
	}
	l.seed(g)
	return g, nil
}

// ImportGoals inserts a batch of goals, seeding each one exactly like
// CreateGoal, except that ids are taken verbatim from the rows.
//
// The caller is responsible for id uniqueness: collisions with existing
// goals are not checked. All rows share the same DateAdded and week.
func (l *Ledger) ImportGoals(rows []ImportRow, on date.Date) {
	for _, row := range rows {
		l.seed(Goal{
			ID:        row.GoalID,
			Name:      row.Name,
			DueDate:   row.DueDate,
			Frequency: row.Frequency,
			Progress:  SeedScore,
			DateAdded: on,
			Week:      on.Week(),
		})
	}
}

// SubmitUpdate applies a reported completion percentage to a goal: the
// scoring engine computes the new score, the goal row is updated in place
// and a history entry dated 'on' is appended. It returns the updated goal.
//
// It fails with ErrGoalNotFound for an unknown id and ErrInvalidPercentage
// for a percentage outside {0, 50, 100}; the ledger is left untouched in
// both cases.
func (l *Ledger) SubmitUpdate(goalID string, percentage int, on date.Date) (Goal, error) {
	if percentage != 0 && percentage != 50 && percentage != 100 {
		return Goal{}, fmt.Errorf("%w: got %d", ErrInvalidPercentage, percentage)
	}
	g := l.Goal(goalID)
	if g == nil {
		return Goal{}, fmt.Errorf("%w: %q", ErrGoalNotFound, goalID)
	}

	score, change := Apply(g.Progress, percentage)
	g.Progress = score
	l.entries = append(l.entries, HistoryEntry{
		GoalID:     g.ID,
		GoalName:   g.Name,
		Date:       on,
		Progress:   score,
		Percentage: percentage,
		Change:     change,
	})
	return *g, nil
}
