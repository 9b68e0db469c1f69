package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ascent"
	md "github.com/nao1215/markdown"
)

// ClimbMarkdown renders the climb chart of one goal: its chronological
// history with per-entry badges, the reached milestones, and the streak
// message.
func ClimbMarkdown(r *ascent.ClimbReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Climb to Success: %s", r.Goal.Name))
	doc.PlainText(fmt.Sprintf("Due %s, %s cadence.", r.Goal.DueDate, r.Goal.Frequency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Progress", "Change"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			score(e.Progress),
			badge(e.Change),
		})
	}
	doc.Table(table)

	for _, peak := range r.Peaks {
		doc.PlainText(fmt.Sprintf("Peak %s 🏁 reached!", peak))
	}

	doc.PlainText(climbMessage(r))

	return doc.String()
}

// climbMessage is the motivational footer of the climb chart, tiered by
// streak length.
func climbMessage(r *ascent.ClimbReport) string {
	var message string
	switch {
	case r.Streak >= 3:
		message = fmt.Sprintf("%d-day climb! Keep ascending! 🔥", r.Streak)
	case r.Streak > 0:
		message = fmt.Sprintf("%d-day climb! You're gaining ground! 💪", r.Streak)
	default:
		message = "Start your climb today! 🎯"
	}
	if len(r.Peaks) > 0 {
		message += " Reached Peak " + r.Peaks[len(r.Peaks)-1].String() + "! You're a legend! 🎉"
	}
	return message
}
