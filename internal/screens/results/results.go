package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/layout"
	"github.com/abhisek/intervet/internal/ui/theme"
)

// narrativeMsg carries the AI narrative from the backend.
type narrativeMsg struct {
	Markdown string
	Err      error
}

// recordedMsg confirms the report event was appended locally.
type recordedMsg struct {
	Err error
}

// ResultsScreen shows the locally scored report and fetches the AI
// narrative for it. The score on screen never depends on the network;
// only the narrative does.
type ResultsScreen struct {
	gateway     api.Gateway
	eventRepo   store.EventRepo
	homeFactory func() screen.Screen

	report       *assessment.Report
	attemptID    string
	durationSecs int

	loading   bool
	narrative string
	errMsg    string
	scroll    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen. A nil report puts the screen into a
// dead-end guard: no narrative request is made and the only edge is a
// reset back to the start.
func New(gateway api.Gateway, eventRepo store.EventRepo, homeFactory func() screen.Screen, report *assessment.Report, attemptID string, durationSecs int) *ResultsScreen {
	return &ResultsScreen{
		gateway:      gateway,
		eventRepo:    eventRepo,
		homeFactory:  homeFactory,
		report:       report,
		attemptID:    attemptID,
		durationSecs: durationSecs,
	}
}

func (r *ResultsScreen) guarded() bool {
	return r.report == nil
}

func (r *ResultsScreen) Init() tea.Cmd {
	if r.guarded() {
		return nil
	}
	r.loading = true
	return r.fetchNarrative()
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.guarded() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start over"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "N", Description: "New assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if r.errMsg != "" {
		hints = append([]layout.KeyHint{{Key: "R", Description: "Retry narrative"}}, hints...)
	}
	return hints
}

// fetchNarrative posts the scored report for narrative synthesis.
func (r *ResultsScreen) fetchNarrative() tea.Cmd {
	report := r.report
	return func() tea.Msg {
		resp, err := r.gateway.GenerateReport(context.Background(), api.GenerateReportRequest{
			Answers:  report.Answers,
			Totals:   report.Totals,
			Behavior: report.Behavior,
			Profile:  report.Profile,
		})
		if err != nil {
			return narrativeMsg{Err: err}
		}
		return narrativeMsg{Markdown: resp.ReportMarkdown}
	}
}

// recordNarrative appends the report event to the local history.
func (r *ResultsScreen) recordNarrative(narrative string) tea.Cmd {
	if r.eventRepo == nil {
		return nil
	}
	data := store.ReportEventData{
		AttemptID:   r.attemptID,
		AccuracyPct: r.report.Behavior.Accuracy,
		Consistency: r.report.Behavior.Consistency,
		Narrative:   narrative,
	}
	return func() tea.Msg {
		return recordedMsg{Err: r.eventRepo.AppendReportEvent(context.Background(), data)}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narrativeMsg:
		r.loading = false
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		r.errMsg = ""
		r.narrative = msg.Markdown
		return r, r.recordNarrative(msg.Markdown)

	case recordedMsg:
		// History write failures never surface on the results view.
		return r, nil

	case tea.KeyMsg:
		if r.guarded() {
			if msg.String() == "enter" {
				return r, func() tea.Msg {
					return router.ResetScreenMsg{Screen: r.homeFactory()}
				}
			}
			return r, nil
		}

		switch msg.String() {
		case "up", "k":
			if r.scroll > 0 {
				r.scroll--
			}
		case "down", "j":
			r.scroll++
		case "r", "R":
			if r.errMsg != "" && !r.loading {
				r.loading = true
				r.errMsg = ""
				return r, r.fetchNarrative()
			}
		case "n", "N":
			return r, func() tea.Msg {
				return router.ResetScreenMsg{Screen: r.homeFactory()}
			}
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	if r.guarded() {
		msg := theme.Incorrect.Render("There is no report to show.") + "\n\n" +
			theme.Body.Render("A report only exists after a submitted test.") + "\n\n" +
			theme.Hint.Render("Press Enter to start over.")
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(msg)
	}

	var b strings.Builder
	b.WriteString(r.renderScore(width))
	b.WriteString("\n\n")
	b.WriteString(r.renderNarrative(width))

	// Cheap scroll: drop leading lines.
	lines := strings.Split(b.String(), "\n")
	if r.scroll >= len(lines) {
		r.scroll = len(lines) - 1
	}
	return strings.Join(lines[r.scroll:], "\n")
}

func (r *ResultsScreen) renderScore(width int) string {
	t := r.report.Totals
	behave := r.report.Behavior

	name := ""
	if r.report.Profile != nil && r.report.Profile.Name != "" {
		name = " — " + r.report.Profile.Name
	}

	mins := r.durationSecs / 60
	secs := r.durationSecs % 60

	rows := []string{
		fmt.Sprintf("Overall      %d / %d   (%d%%)", t.Overall, t.TotalQuestions, behave.Accuracy),
		fmt.Sprintf("Aptitude     %d", t.Aptitude),
		fmt.Sprintf("Reasoning    %d", t.Reasoning),
		fmt.Sprintf("Coding       %d", t.Coding),
		fmt.Sprintf("Consistency  %s", behave.Consistency),
		fmt.Sprintf("Time taken   %02d:%02d", mins, secs),
	}

	var card strings.Builder
	for _, row := range rows {
		card.WriteString(theme.Body.Render(row) + "\n")
	}

	out := theme.Title.Width(width).Render("Assessment Complete"+name) + "\n\n" +
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(theme.Card.Render(card.String()))
	return out
}

func (r *ResultsScreen) renderNarrative(width int) string {
	switch {
	case r.loading:
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(theme.Hint.Render("Generating AI narrative..."))
	case r.errMsg != "":
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render(theme.Incorrect.Render("Narrative unavailable: "+r.errMsg) + "\n" +
				theme.Hint.Render("Press R to retry."))
	case r.narrative == "":
		return ""
	}

	body := lipgloss.NewStyle().
		Width(width - 8).
		Foreground(theme.Text).
		Render(r.narrative)

	return lipgloss.NewStyle().PaddingLeft(4).Render(body)
}
