package ascent

import (
	"errors"
	"testing"

	"github.com/etnz/ascent/date"
	"github.com/shopspring/decimal"
)

func TestCreateGoal(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")

	g, err := l.CreateGoal("Run 5k", date.MustParse("2026-12-31"), Daily, on)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	if g.ID != "G1" {
		t.Errorf("first goal id = %q, want G1", g.ID)
	}
	if !g.Progress.Equal(SeedScore) {
		t.Errorf("new goal progress = %s, want 1", g.Progress)
	}
	if g.Week != 35 {
		t.Errorf("new goal week = %d, want 35", g.Week)
	}

	entries := l.History("G1")
	if len(entries) != 1 {
		t.Fatalf("new goal has %d history entries, want exactly the seed", len(entries))
	}
	seed := entries[0]
	if seed.Percentage != 0 || !seed.Change.IsZero() || !seed.Progress.Equal(SeedScore) {
		t.Errorf("seed entry = %+v, want percentage 0, change 0, progress 1", seed)
	}
	if seed.Date != on {
		t.Errorf("seed entry date = %s, want %s", seed.Date, on)
	}
}

func TestCreateGoal_SequentialIDs(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")
	for i, name := range []string{"Run 5k", "Read", "Swim"} {
		g, err := l.CreateGoal(name, date.MustParse("2026-12-31"), Weekly, on)
		if err != nil {
			t.Fatalf("CreateGoal(%s): %v", name, err)
		}
		want := []string{"G1", "G2", "G3"}[i]
		if g.ID != want {
			t.Errorf("goal id = %q, want %q", g.ID, want)
		}
	}
}

func TestCreateGoal_EmptyName(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")

	for _, name := range []string{"", "   ", "\t"} {
		_, err := l.CreateGoal(name, date.MustParse("2026-12-31"), Weekly, on)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("CreateGoal(%q) error = %v, want ErrValidation", name, err)
		}
	}
	if len(l.Goals()) != 0 || len(l.Entries()) != 0 {
		t.Errorf("rejected creation mutated the ledger: %d goals, %d entries", len(l.Goals()), len(l.Entries()))
	}
}

func TestSubmitUpdate(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")
	if _, err := l.CreateGoal("Run 5k", date.MustParse("2026-12-31"), Daily, on); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	g, err := l.SubmitUpdate("G1", 100, on.Add(1))
	if err != nil {
		t.Fatalf("SubmitUpdate: %v", err)
	}

	want := decimal.RequireFromString("1.01")
	if !g.Progress.Equal(want) {
		t.Errorf("score after full completion = %s, want %s", g.Progress, want)
	}
	if !l.Goal("G1").Progress.Equal(want) {
		t.Errorf("goal row progress = %s, want %s", l.Goal("G1").Progress, want)
	}

	entries := l.History("G1")
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want seed + update", len(entries))
	}
	update := entries[1]
	if update.Percentage != 100 {
		t.Errorf("update percentage = %d, want 100", update.Percentage)
	}
	if !update.Change.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("update change = %s, want 0.01", update.Change)
	}
	if !update.Progress.Equal(want) {
		t.Errorf("update progress = %s, want %s", update.Progress, want)
	}
}

func TestSubmitUpdate_UnknownGoal(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")
	if _, err := l.CreateGoal("Run 5k", date.MustParse("2026-12-31"), Daily, on); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	_, err := l.SubmitUpdate("G999", 100, on)
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("SubmitUpdate(G999) error = %v, want ErrGoalNotFound", err)
	}
	if len(l.Goals()) != 1 || len(l.Entries()) != 1 {
		t.Errorf("failed update mutated the ledger")
	}
}

func TestSubmitUpdate_InvalidPercentage(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")
	if _, err := l.CreateGoal("Run 5k", date.MustParse("2026-12-31"), Daily, on); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	for _, p := range []int{-1, 1, 42, 75, 101} {
		_, err := l.SubmitUpdate("G1", p, on)
		if !errors.Is(err, ErrInvalidPercentage) {
			t.Errorf("SubmitUpdate(G1, %d) error = %v, want ErrInvalidPercentage", p, err)
		}
	}
	if len(l.Entries()) != 1 {
		t.Errorf("rejected updates appended history entries")
	}
}

func TestImportGoals(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")

	l.ImportGoals([]ImportRow{
		{GoalID: "G10", Name: "Read 20 pages", DueDate: date.MustParse("2026-12-31"), Frequency: Daily},
		{GoalID: "G11", Name: "Swim", DueDate: date.MustParse("2026-10-01"), Frequency: Weekly},
	}, on)

	if len(l.Goals()) != 2 {
		t.Fatalf("imported %d goals, want 2", len(l.Goals()))
	}
	for _, id := range []string{"G10", "G11"} {
		g := l.Goal(id)
		if g == nil {
			t.Fatalf("imported goal %q not found", id)
		}
		if !g.Progress.Equal(SeedScore) {
			t.Errorf("imported goal %s progress = %s, want 1", id, g.Progress)
		}
		if g.DateAdded != on || g.Week != on.Week() {
			t.Errorf("imported goal %s dated %s week %d, want %s week %d", id, g.DateAdded, g.Week, on, on.Week())
		}
		if len(l.History(id)) != 1 {
			t.Errorf("imported goal %s has %d history entries, want the seed only", id, len(l.History(id)))
		}
	}
}

// Import trusts its input: colliding ids are not rejected, and lookups on a
// duplicated id return the first row.
func TestImportGoals_DuplicateID(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2026-08-24")
	if _, err := l.CreateGoal("Run 5k", date.MustParse("2026-12-31"), Daily, on); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	l.ImportGoals([]ImportRow{
		{GoalID: "G1", Name: "Impostor", DueDate: date.MustParse("2026-12-31"), Frequency: Daily},
	}, on)

	if len(l.Goals()) != 2 {
		t.Fatalf("duplicate import was rejected; got %d goals", len(l.Goals()))
	}
	if got := l.Goal("G1").Name; got != "Run 5k" {
		t.Errorf("Goal(G1) resolved to %q, want the first row %q", got, "Run 5k")
	}
}
