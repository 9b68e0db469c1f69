package ascent

import "github.com/shopspring/decimal"

// The scoring engine implements compounding growth and decay: completing a
// goal fully compounds the score by 1%, a partial completion by 0.5%, and a
// skipped period divides it back by 1%. Consistency therefore compounds;
// skipping erodes.

var (
	// SeedScore is the progress score assigned to every goal at creation.
	SeedScore = decimal.NewFromInt(1)

	rateFull = decimal.RequireFromString("1.01")
	rateHalf = decimal.RequireFromString("1.005")

	deltaFull = decimal.RequireFromString("0.01")
	deltaHalf = decimal.RequireFromString("0.005")
	deltaSkip = decimal.RequireFromString("-0.01")
)

// Apply computes the new progress score and the signed adjustment for a
// reported completion percentage.
//
// Apply is a pure function over the valid percentages 100, 50 and 0; any
// other value is treated as a skip. Callers validate the percentage first
// (see SubmitUpdate).
func Apply(current decimal.Decimal, percentage int) (score, change decimal.Decimal) {
	switch percentage {
	case 100:
		return current.Mul(rateFull), deltaFull
	case 50:
		return current.Mul(rateHalf), deltaHalf
	default:
		return current.Div(rateFull), deltaSkip
	}
}

// deltaFor maps a reported percentage to its signed adjustment. It is the
// backfill rule for history rows persisted before the Change column existed.
func deltaFor(percentage int) decimal.Decimal {
	switch percentage {
	case 100:
		return deltaFull
	case 50:
		return deltaHalf
	default:
		return deltaSkip
	}
}

// Streak counts the consecutive most-recent entries with a positive change.
//
// Entries must be in chronological order. The count stops at the first
// non-positive change walking backward from the latest entry. Streak is a
// pure function of the change sequence; scores are irrelevant.
func Streak(entries []HistoryEntry) int {
	streak := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Change.Sign() <= 0 {
			break
		}
		streak++
	}
	return streak
}

// Replay re-derives a goal's progress score by applying every change of its
// chronological history starting from the seed score.
//
// For a well-formed history it reproduces the goal's current Progress
// exactly: the changes form the derivation chain of the score.
func Replay(entries []HistoryEntry) decimal.Decimal {
	score := SeedScore
	for _, e := range entries {
		switch {
		case e.Change.Equal(deltaFull):
			score = score.Mul(rateFull)
		case e.Change.Equal(deltaHalf):
			score = score.Mul(rateHalf)
		case e.Change.Equal(deltaSkip):
			score = score.Div(rateFull)
		}
		// A zero change is the creation seed: the score is left untouched.
	}
	return score
}
