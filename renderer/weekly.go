package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/ascent"
	md "github.com/nao1215/markdown"
)

// barWidth is the width of the weekly chart bars, in cells.
const barWidth = 30

// WeeklyMarkdown renders the weekly progress overview: the goals whose
// tracking began this ISO week, with a bar per goal scaled to the best
// score of the week.
func WeeklyMarkdown(r *ascent.WeeklyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Weekly Progress (week %d)", r.Week))

	if len(r.Goals) == 0 {
		doc.PlainText("No progress tracked for this week.")
		return doc.String()
	}

	max := 0.0
	for _, g := range r.Goals {
		if s := g.Progress.InexactFloat64(); s > max {
			max = s
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Goal", "Progress", ""},
		Rows:   [][]string{},
	}
	for _, g := range r.Goals {
		table.Rows = append(table.Rows, []string{
			g.Name,
			score(g.Progress),
			bar(g.Progress.InexactFloat64(), max, barWidth),
		})
	}
	doc.Table(table)

	doc.PlainText("You're building habits that last! 🚀")

	return doc.String()
}
