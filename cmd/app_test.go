package cmd

import (
	"testing"

	"github.com/etnz/ascent"
)

func TestMilestones_Default(t *testing.T) {
	config.Milestones = nil
	ms := milestones()
	if len(ms) != len(ascent.DefaultMilestones) {
		t.Fatalf("milestones() returned %d thresholds, want the %d defaults", len(ms), len(ascent.DefaultMilestones))
	}
	for i := range ms {
		if !ms[i].Equal(ascent.DefaultMilestones[i]) {
			t.Errorf("milestones()[%d] = %s, want %s", i, ms[i], ascent.DefaultMilestones[i])
		}
	}
}

func TestMilestones_Configured(t *testing.T) {
	config.Milestones = []float64{1.2, 3}
	defer func() { config.Milestones = nil }()

	ms := milestones()
	if len(ms) != 2 {
		t.Fatalf("milestones() returned %d thresholds, want 2", len(ms))
	}
	if got := ms[0].String(); got != "1.2" {
		t.Errorf("milestones()[0] = %s, want 1.2", got)
	}
}
