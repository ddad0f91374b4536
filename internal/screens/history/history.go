package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/layout"
	"github.com/abhisek/intervet/internal/ui/theme"
)

// loadedMsg carries the attempt list from the local store.
type loadedMsg struct {
	Attempts []store.AttemptSummary
	Err      error
}

// verifiedMsg carries the accuracy recomputed from one attempt's
// answer log.
type verifiedMsg struct {
	AttemptID string
	Fraction  float64
	Err       error
}

// HistoryScreen lists past completed attempts from the local store.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AttemptSummary
	loaded    bool
	errMsg    string
	scroll    int
	detail    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := h.eventRepo.ListAttempts(context.Background(), 0)
		return loadedMsg{Attempts: attempts, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Verify"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.loaded = true
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.attempts = msg.Attempts
		return h, nil

	case verifiedMsg:
		if msg.Err != nil {
			h.detail = theme.Incorrect.Render("Answer log unavailable: " + msg.Err.Error())
			return h, nil
		}
		h.detail = theme.Body.Render(fmt.Sprintf(
			"Answer log for %s: %.0f%% of recorded answers correct.",
			msg.AttemptID, msg.Fraction*100))
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if h.scroll > 0 {
				h.scroll--
				h.detail = ""
			}
		case "down", "j":
			if h.scroll < len(h.attempts)-1 {
				h.scroll++
				h.detail = ""
			}
		case "enter":
			return h, h.verifySelected()
		}
	}

	return h, nil
}

// verifySelected recomputes the selected attempt's accuracy from its
// per-answer events, as a cross-check against the stored summary.
func (h *HistoryScreen) verifySelected() tea.Cmd {
	if len(h.attempts) == 0 {
		return nil
	}
	id := h.attempts[h.scroll].AttemptID
	return func() tea.Msg {
		frac, err := h.eventRepo.AttemptAccuracy(context.Background(), id)
		return verifiedMsg{AttemptID: id, Fraction: frac, Err: err}
	}
}

func (h *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Past Attempts"))
	b.WriteString("\n\n")

	switch {
	case !h.loaded:
		b.WriteString(centered(width, theme.Hint.Render("Loading...")))
	case h.errMsg != "":
		b.WriteString(centered(width, theme.Incorrect.Render(h.errMsg)))
	case len(h.attempts) == 0:
		b.WriteString(centered(width, theme.Hint.Render("No completed attempts yet.")))
	default:
		b.WriteString(h.renderTable(width, height))
	}

	return b.String()
}

func (h *HistoryScreen) renderTable(width, height int) string {
	header := fmt.Sprintf("  %-19s  %-20s  %7s  %8s  %-22s  %6s",
		"WHEN", "CANDIDATE", "SCORE", "ACCURACY", "CONSISTENCY", "TIME")

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))

	visible := height - 6
	if visible < 1 {
		visible = 1
	}

	end := h.scroll + visible
	if end > len(h.attempts) {
		end = len(h.attempts)
	}

	for i, a := range h.attempts[h.scroll:end] {
		name := a.CandidateName
		if name == "" {
			name = "(unknown)"
		}
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		marker := "  "
		if i == 0 {
			marker = "▸ "
		}
		row := fmt.Sprintf("%s%-19s  %-20s  %3d/%-3d  %7d%%  %-22s  %3dm%02ds",
			marker,
			a.Finished.Format("2006-01-02 15:04"),
			name,
			a.CorrectAnswers, a.QuestionsServed,
			a.AccuracyPct,
			a.Consistency,
			a.DurationSecs/60, a.DurationSecs%60,
		)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = style.Bold(true)
		}
		rows = append(rows, style.Render(row))
	}

	if end < len(h.attempts) {
		rows = append(rows, theme.Hint.Render(fmt.Sprintf("  ... %d more", len(h.attempts)-end)))
	}

	if h.detail != "" {
		rows = append(rows, "", "  "+h.detail)
	}

	return strings.Join(rows, "\n")
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
