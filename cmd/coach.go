package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/ascent"
	"github.com/etnz/ascent/date"
	"github.com/etnz/ascent/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const coachModel = "gemini-2.5-flash"

const coachInstruction = `You are a supportive habit coach. You receive the
state of the user's goal tracker: every goal with its compounding progress
score, streak and history. Comment on the trends, call out eroding scores,
and suggest one concrete action for the coming week. Be brief and concrete.`

type coachCmd struct{}

func (*coachCmd) Name() string     { return "coach" }
func (*coachCmd) Synopsis() string { return "ask the AI coach to review your progress" }
func (*coachCmd) Usage() string {
	return `asc coach [question]

  Sends your goals and their histories to the Gemini coach and prints its
  review. An optional question orients the answer.

  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *coachCmd) SetFlags(f *flag.FlagSet) {}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "How am I doing, and what should I focus on this week?"
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	ledger := DecodeLedger()
	if len(ledger.Goals()) == 0 {
		fmt.Println("No goals to review yet. Add one with 'asc add'.")
		return subcommands.ExitSuccess
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("could not initialize Gemini's client: %w", err))
	}

	chat, err := client.Chats.Create(ctx, coachModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(coachInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		return fail(fmt.Errorf("could not start the coach session: %w", err))
	}

	resp, err := chat.Send(ctx,
		&genai.Part{Text: coachContext(ledger)},
		&genai.Part{Text: question},
	)
	if err != nil {
		return fail(fmt.Errorf("coach failed: %w", err))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fail(fmt.Errorf("no response from the coach"))
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}

// coachContext renders the whole tracker state as markdown for the model.
func coachContext(l *ascent.Ledger) string {
	var b strings.Builder
	b.WriteString(renderer.WeeklyMarkdown(l.NewWeeklyReport(date.Today())))
	for _, g := range l.Goals() {
		report, err := l.NewClimbReport(g.ID, milestones())
		if err != nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(renderer.ClimbMarkdown(report))
	}
	return b.String()
}
