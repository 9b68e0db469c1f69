package renderer

import (
	"bytes"

	"github.com/etnz/ascent"
	md "github.com/nao1215/markdown"
)

// GoalsMarkdown renders the goal cards: one row per goal with its cadence,
// due date and current score.
func GoalsMarkdown(goals []ascent.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")

	if len(goals) == 0 {
		doc.PlainText("No goals added yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Goal", "Frequency", "Due", "Progress"},
		Rows:   [][]string{},
	}
	for _, g := range goals {
		table.Rows = append(table.Rows, []string{
			g.ID,
			g.Name,
			g.Frequency.String(),
			g.DueDate.String(),
			score(g.Progress),
		})
	}
	doc.Table(table)

	return doc.String()
}
