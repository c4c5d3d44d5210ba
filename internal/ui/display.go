package ui

import (
	"fmt"
	"strings"

	"mentor-eval/internal/evaluation"
	"mentor-eval/internal/timecode"

	"github.com/pterm/pterm"
)

const barWidth = 20

func PrintWelcome(model string) {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack, pterm.Bold)).
		Println("MentorEvaluator")
	pterm.Println(pterm.Gray("AI pedagogical analysis of mentoring sessions · " + model))
	pterm.Println()
}

func scoreColor(score int) pterm.Color {
	switch {
	case score >= 80:
		return pterm.FgGreen
	case score >= 60:
		return pterm.FgYellow
	default:
		return pterm.FgRed
	}
}

// Bar renders a score in [0,100] as a fixed-width gauge.
func Bar(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func PrintResult(res *evaluation.Result) {
	pterm.Println()
	pterm.DefaultSection.WithStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).Println("Session Insights")

	pterm.Printfln("%s  %s",
		pterm.Bold.Sprint(scoreColor(res.OverallScore).Sprintf("%d", res.OverallScore))+pterm.Gray("/100 pedagogical score"),
		pterm.Gray(fmt.Sprintf("· %d interactions found", len(res.Interactions))),
	)
	pterm.Println()
	if res.Summary != "" {
		PrintTypewriter(res.Summary)
	}

	printMetrics(res.Metrics)

	if len(res.Interactions) == 0 {
		pterm.Warning.Println("No learner-mentor exchanges were found in this session.")
	}
	for i, in := range res.Interactions {
		printInteraction(i+1, in)
	}

	printSources(res.Sources)

	if res.Clamped > 0 {
		pterm.Warning.Printfln("%d score(s) were outside 0-100 and have been clamped.", res.Clamped)
	}
	pterm.Println()
}

func printMetrics(m evaluation.Metrics) {
	rows := []struct {
		label string
		val   int
	}{
		{"Clarity", m.Clarity},
		{"Empathy", m.Empathy},
		{"Accuracy", m.Accuracy},
		{"Pacing", m.Pacing},
	}

	tableData := pterm.TableData{{"Skill", "Score", ""}}
	for _, r := range rows {
		c := scoreColor(r.val)
		tableData = append(tableData, []string{
			r.label,
			c.Sprintf("%d%%", r.val),
			c.Sprint(Bar(r.val, barWidth)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
	pterm.Println()
}

func printInteraction(n int, in evaluation.Interaction) {
	title := fmt.Sprintf("#%d  %s  ·  %s",
		n, timecode.Label(in.Timestamp),
		scoreColor(in.EffectivenessScore).Sprintf("%d/100", in.EffectivenessScore))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", pterm.Bold.Sprint("Learner:"), in.LearnerQuestion)
	fmt.Fprintf(&sb, "%s %s\n\n", pterm.Bold.Sprint("Mentor:"), in.MentorAnswer)
	sb.WriteString(stripMarkdown(in.Analysis))
	for _, s := range in.Strengths {
		fmt.Fprintf(&sb, "\n%s %s", pterm.FgGreen.Sprint("+"), s)
	}
	for _, s := range in.Improvements {
		fmt.Fprintf(&sb, "\n%s %s", pterm.FgYellow.Sprint("→"), s)
	}

	pterm.DefaultBox.WithTitle(title).Println(sb.String())
	pterm.Println()
}

func printSources(sources []evaluation.Source) {
	if len(sources) == 0 {
		return
	}
	pterm.DefaultSection.WithLevel(2).Println("Sources")
	items := make([]pterm.BulletListItem, 0, len(sources))
	for _, s := range sources {
		text := s.URI
		if s.Title != "" {
			text = s.Title + pterm.Gray("  "+s.URI)
		}
		items = append(items, pterm.BulletListItem{Level: 0, Text: text})
	}
	pterm.DefaultBulletList.WithItems(items).Render()
}

func PrintCancelled() {
	pterm.Warning.Println("Cancelled.")
}

func PrintFarewell() {
	pterm.Println()
	pterm.Println(pterm.Gray("Thanks! See you next session."))
	pterm.Println()
}

func PrintError(msg string) {
	pterm.Error.Println(msg)
}

func PrintStatus(msg string) {
	pterm.Println(pterm.Gray(msg))
}
