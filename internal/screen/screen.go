package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervet/internal/ui/layout"
)

// Screen is the interface every TUI screen implements. Screens are
// managed by the router as a stack; the active screen receives all
// messages and renders into the content area between header and
// footer.
type Screen interface {
	// Init returns the screen's initial command.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly new) screen
	// and a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen within the given content dimensions.
	View(width, height int) string

	// Title returns the screen title shown in the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens that supply
// their own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
