package test

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/ui/components"
	"github.com/abhisek/intervet/internal/ui/theme"
)

// lowTimeThresholdSecs switches the countdown to the warning color.
const lowTimeThresholdSecs = 5 * 60

var domainTags = map[assessment.Domain]string{
	assessment.DomainAptitude:  "APTITUDE",
	assessment.DomainReasoning: "REASONING",
	assessment.DomainCoding:    "CODING",
}

func (t *TestScreen) View(width, height int) string {
	if t.guarded() {
		return t.renderGuard(width, height)
	}
	if t.confirming {
		return t.renderConfirm(width, height)
	}
	return t.renderQuestion(width, height)
}

func (t *TestScreen) renderGuard(width, height int) string {
	msg := theme.Incorrect.Render("No questions were loaded for this test.") + "\n\n" +
		theme.Body.Render("Go back and assemble the test again.") + "\n\n" +
		theme.Hint.Render("Press Esc to return to difficulty selection.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}

func (t *TestScreen) renderConfirm(width, height int) string {
	unanswered := len(t.questions) - t.answers.Answered()

	var warn string
	if unanswered > 0 {
		warn = theme.Incorrect.Render(fmt.Sprintf("%d question(s) unanswered — they will score as incorrect.", unanswered)) + "\n\n"
	}

	msg := theme.Title.Render("Submit the test?") + "\n\n" +
		warn +
		theme.Body.Render("Y — submit now        N — keep going")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}

func (t *TestScreen) renderQuestion(width, height int) string {
	q := t.questions[t.idx]

	// Status line: position, answered count, countdown.
	mins := t.remaining / 60
	secs := t.remaining % 60
	timerStr := fmt.Sprintf("⏱ %02d:%02d", mins, secs)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if t.remaining < lowTimeThresholdSecs {
		timerStyle = theme.TimerLow
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", domainTags[q.Domain], q.ID))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   answered %d   ", t.idx+1, len(t.questions), t.answers.Answered())) +
		timerStyle.Render(timerStr)

	statusLine := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		statusLine += strings.Repeat(" ", pad) + right
	}

	var b strings.Builder
	b.WriteString(statusLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Answered-progress bar.
	answered := float64(t.answers.Answered()) / float64(len(t.questions))
	bar := components.NewProgressBar("", answered, false, width/2)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString("    " + questionStyle.Render(q.Question.Text))
	b.WriteString("\n\n")

	choices := lipgloss.NewStyle().PaddingLeft(4).Render(t.choiceList.View())
	b.WriteString(choices)

	return b.String()
}
