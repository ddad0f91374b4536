package instructions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/screens/test"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/layout"
	"github.com/abhisek/intervet/internal/ui/theme"
)

// InstructionsScreen shows the test rules before the timer starts.
type InstructionsScreen struct {
	gateway     api.Gateway
	eventRepo   store.EventRepo
	homeFactory func() screen.Screen
	profile     *assessment.ParsedProfile
	userID      string
	choice      assessment.LevelChoice
	set         *assessment.QuestionSet
}

var _ screen.Screen = (*InstructionsScreen)(nil)
var _ screen.KeyHintProvider = (*InstructionsScreen)(nil)

// New creates the instructions screen for an assembled question set.
func New(gateway api.Gateway, eventRepo store.EventRepo, homeFactory func() screen.Screen, profile *assessment.ParsedProfile, userID string, choice assessment.LevelChoice, set *assessment.QuestionSet) *InstructionsScreen {
	return &InstructionsScreen{
		gateway:     gateway,
		eventRepo:   eventRepo,
		homeFactory: homeFactory,
		profile:     profile,
		userID:      userID,
		choice:      choice,
		set:         set,
	}
}

func (i *InstructionsScreen) Init() tea.Cmd {
	return nil
}

func (i *InstructionsScreen) Title() string {
	return "Instructions"
}

func (i *InstructionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin test"},
		{Key: "Esc", Description: "Back"},
	}
}

func (i *InstructionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return i, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			flat := assessment.Flatten(i.set)
			next := test.New(i.gateway, i.eventRepo, i.homeFactory, i.profile, i.userID, i.choice, flat)
			return i, func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}
	}
	return i, nil
}

func (i *InstructionsScreen) View(width, height int) string {
	total := i.set.Total()

	counts := fmt.Sprintf("Aptitude %d  ·  Reasoning %d  ·  Coding %d",
		len(i.set.Aptitude.Questions),
		len(i.set.Reasoning.Questions),
		len(i.set.Coding.Questions),
	)

	rules := []string{
		fmt.Sprintf("You will answer %d multiple-choice questions.", total),
		"The test is timed: 30 minutes. It submits itself at zero.",
		"Move between questions freely; answers can be changed any time.",
		"Unanswered questions score as incorrect.",
		"Scoring happens on this machine the moment you submit.",
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Before You Begin"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(counts))
	b.WriteString("\n\n")

	var list strings.Builder
	for _, r := range rules {
		list.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  • "+r) + "\n")
	}
	b.WriteString(centered(width, theme.Card.Render(list.String())))

	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("The clock starts when you press Enter.")))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
