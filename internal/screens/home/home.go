package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/screens/history"
	"github.com/abhisek/intervet/internal/screens/parse"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/components"
	"github.com/abhisek/intervet/internal/ui/layout"
	"github.com/abhisek/intervet/internal/ui/theme"
)

const logoArt = `
 ___ _  _ _____ ___ ___ _   _ ___ _____
|_ _| \| |_   _| __| _ \ | | | __|_   _|
 | || .\'| | | | _||   / \/ / | _|  | |
|___|_|\_| |_| |___|_|_\\__/  |___| |_|`

// HomeScreen is the entry screen: start an assessment, browse past
// attempts, or quit.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. eventRepo may be nil when the local
// store failed to open; history is disabled in that case.
func New(gateway api.Gateway, eventRepo store.EventRepo) *HomeScreen {
	homeFactory := func() screen.Screen {
		return New(gateway, eventRepo)
	}

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: parse.New(gateway, eventRepo, homeFactory),
				}
			}
		}},
		{Label: "ATTEMPT HISTORY", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	logo := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.TrimPrefix(logoArt, "\n"))

	tagline := theme.Subtitle.Render("Resume screening and skills assessment")

	sections := []string{
		logo,
		tagline,
		"",
		h.menu.View(),
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
