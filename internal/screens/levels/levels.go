package levels

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
	"github.com/abhisek/intervet/internal/screens/instructions"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/layout"
	"github.com/abhisek/intervet/internal/ui/theme"
)

// questionsMsg carries the assembled test from the backend.
type questionsMsg struct {
	Set *assessment.QuestionSet
	Err error
}

// savedMsg confirms level persistence.
type savedMsg struct {
	Err error
}

// LevelsScreen lets the candidate pick a difficulty level per domain.
type LevelsScreen struct {
	gateway     api.Gateway
	eventRepo   store.EventRepo
	homeFactory func() screen.Screen
	profile     *assessment.ParsedProfile
	userID      string

	cursor  int // row index into assessment.Domains
	picks   [3]int
	loading bool
	errMsg  string
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates the difficulty selection screen. userID may be empty
// when registration failed; the resume profile is sent instead so the
// backend can still fold strength into the final levels.
func New(gateway api.Gateway, eventRepo store.EventRepo, homeFactory func() screen.Screen, profile *assessment.ParsedProfile, userID string) *LevelsScreen {
	return &LevelsScreen{
		gateway:     gateway,
		eventRepo:   eventRepo,
		homeFactory: homeFactory,
		profile:     profile,
		userID:      userID,
		picks:       [3]int{1, 1, 1}, // intermediate preselected
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (l *LevelsScreen) Title() string {
	return "Difficulty"
}

func (l *LevelsScreen) KeyHints() []layout.KeyHint {
	if l.loading {
		return []layout.KeyHint{}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Domain"},
		{Key: "←→", Description: "Level"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// choice returns the current selection as a LevelChoice.
func (l *LevelsScreen) choice() assessment.LevelChoice {
	return assessment.LevelChoice{
		Aptitude:  assessment.Levels[l.picks[0]],
		Reasoning: assessment.Levels[l.picks[1]],
		Coding:    assessment.Levels[l.picks[2]],
	}
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		// Persistence is best-effort; selection proceeds either way.
		return l, l.selectQuestions()

	case questionsMsg:
		l.loading = false
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		next := instructions.New(l.gateway, l.eventRepo, l.homeFactory, l.profile, l.userID, l.choice(), msg.Set)
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}

	case tea.KeyMsg:
		if l.loading {
			return l, nil
		}
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
			}
		case "down", "j":
			if l.cursor < len(assessment.Domains)-1 {
				l.cursor++
			}
		case "left", "h":
			if l.picks[l.cursor] > 0 {
				l.picks[l.cursor]--
			}
		case "right", "l":
			if l.picks[l.cursor] < len(assessment.Levels)-1 {
				l.picks[l.cursor]++
			}
		case "enter":
			l.loading = true
			l.errMsg = ""
			return l, l.saveLevels()
		}
	}

	return l, nil
}

// saveLevels persists the selection when a registered candidate id is
// available; otherwise selection proceeds directly.
func (l *LevelsScreen) saveLevels() tea.Cmd {
	if l.userID == "" {
		return l.selectQuestions()
	}
	choice := l.choice()
	userID := l.userID
	return func() tea.Msg {
		_, err := l.gateway.SaveLevels(context.Background(), api.SaveLevelsRequest{
			UserID:         userID,
			AptitudeLevel:  choice.Aptitude,
			ReasoningLevel: choice.Reasoning,
			CodingLevel:    choice.Coding,
		})
		return savedMsg{Err: err}
	}
}

// selectQuestions asks the backend to assemble the test.
func (l *LevelsScreen) selectQuestions() tea.Cmd {
	choice := l.choice()
	req := api.SelectQuestionsRequest{
		AptitudeLevel:  choice.Aptitude,
		ReasoningLevel: choice.Reasoning,
		CodingLevel:    choice.Coding,
	}
	if l.userID != "" {
		req.UserID = l.userID
	} else {
		req.Resume = l.profile
	}
	return func() tea.Msg {
		set, err := l.gateway.SelectQuestions(context.Background(), req)
		return questionsMsg{Set: set, Err: err}
	}
}

var domainLabels = map[assessment.Domain]string{
	assessment.DomainAptitude:  "Aptitude",
	assessment.DomainReasoning: "Logical Reasoning",
	assessment.DomainCoding:    "Coding",
}

var levelLabels = map[assessment.Level]string{
	assessment.LevelBeginner:     "Beginner",
	assessment.LevelIntermediate: "Intermediate",
	assessment.LevelAdvance:      "Advanced",
}

func (l *LevelsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Choose Your Difficulty"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("The backend may adjust levels based on resume strength"))
	b.WriteString("\n\n")

	if l.loading {
		b.WriteString(centered(width, theme.Hint.Render("Preparing your test...")))
		return frame(width, height, b.String())
	}

	var rows strings.Builder
	for i, d := range assessment.Domains {
		label := domainLabels[d]

		var opts []string
		for j, lv := range assessment.Levels {
			name := levelLabels[lv]
			switch {
			case j == l.picks[i] && i == l.cursor:
				name = theme.Selected.Render("[ " + name + " ]")
			case j == l.picks[i]:
				name = lipgloss.NewStyle().Foreground(theme.Secondary).Render("[ " + name + " ]")
			default:
				name = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + name + "  ")
			}
			opts = append(opts, name)
		}

		prefix := "   "
		labelStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(20)
		if i == l.cursor {
			prefix = " ▸ "
			labelStyle = labelStyle.Bold(true)
		}

		rows.WriteString(fmt.Sprintf("%s%s%s\n\n", prefix, labelStyle.Render(label), strings.Join(opts, "  ")))
	}

	b.WriteString(centered(width, theme.Card.Render(rows.String())))

	if l.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Incorrect.Render(l.errMsg)))
	}

	return frame(width, height, b.String())
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

func frame(width, height int, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(s)
}
