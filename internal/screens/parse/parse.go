package parse

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/screens/levels"
	"github.com/abhisek/intervet/internal/store"
	"github.com/abhisek/intervet/internal/ui/components"
	"github.com/abhisek/intervet/internal/ui/layout"
	"github.com/abhisek/intervet/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseUploading
	phaseRegistering
	phaseReady
)

// parsedMsg carries the backend's extraction result.
type parsedMsg struct {
	Profile *assessment.ParsedProfile
	Err     error
}

// registeredMsg carries the candidate registration result.
type registeredMsg struct {
	UserID    string
	Persisted bool
	Err       error
}

// ParseScreen uploads a resume PDF and shows the extracted profile.
type ParseScreen struct {
	gateway     api.Gateway
	eventRepo   store.EventRepo
	homeFactory func() screen.Screen

	phase   phase
	input   components.TextInput
	profile *assessment.ParsedProfile
	userID  string
	regNote string
	errMsg  string
}

var _ screen.Screen = (*ParseScreen)(nil)
var _ screen.KeyHintProvider = (*ParseScreen)(nil)

// New creates the resume upload screen.
func New(gateway api.Gateway, eventRepo store.EventRepo, homeFactory func() screen.Screen) *ParseScreen {
	return &ParseScreen{
		gateway:     gateway,
		eventRepo:   eventRepo,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Path to resume PDF...", 200),
	}
}

func (p *ParseScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *ParseScreen) Title() string {
	return "Resume"
}

func (p *ParseScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseReady:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "U", Description: "Upload another"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseUploading, phaseRegistering:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Upload"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (p *ParseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case parsedMsg:
		if msg.Err != nil {
			p.phase = phaseInput
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.profile = msg.Profile
		p.errMsg = ""
		p.phase = phaseRegistering
		return p, p.register()

	case registeredMsg:
		p.phase = phaseReady
		if msg.Err != nil {
			// Registration is best-effort; the flow continues with
			// the raw profile and the backend folds it in later.
			p.regNote = "not registered: " + msg.Err.Error()
			return p, nil
		}
		p.userID = msg.UserID
		if msg.Persisted {
			p.regNote = "registered as " + msg.UserID
		} else {
			p.regNote = "session id " + msg.UserID + " (backend has no database)"
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if p.phase == phaseUploading || p.phase == phaseRegistering {
				return p, nil
			}
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			switch p.phase {
			case phaseInput:
				return p, p.upload()
			case phaseReady:
				next := levels.New(p.gateway, p.eventRepo, p.homeFactory, p.profile, p.userID)
				return p, func() tea.Msg {
					return router.PushScreenMsg{Screen: next}
				}
			}
			return p, nil
		case "u", "U":
			if p.phase == phaseReady {
				p.phase = phaseInput
				p.profile = nil
				p.userID = ""
				p.regNote = ""
				p.input = components.NewTextInput("Path to resume PDF...", 200)
				return p, p.input.Init()
			}
		}
	}

	if p.phase == phaseInput {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

// upload reads the PDF from disk and posts it for extraction.
func (p *ParseScreen) upload() tea.Cmd {
	path := strings.TrimSpace(p.input.Value())
	if path == "" {
		p.errMsg = "enter a file path"
		return nil
	}

	p.phase = phaseUploading
	p.errMsg = ""

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return parsedMsg{Err: fmt.Errorf("read %s: %w", path, err)}
		}
		profile, err := p.gateway.ParseResume(context.Background(), filepath.Base(path), bytes.NewReader(data))
		if err != nil {
			return parsedMsg{Err: err}
		}
		return parsedMsg{Profile: profile}
	}
}

// register creates the candidate record from the parsed profile.
func (p *ParseScreen) register() tea.Cmd {
	profile := p.profile
	return func() tea.Msg {
		resp, err := p.gateway.RegisterCandidate(context.Background(), api.RegisterCandidateRequest{
			Name:          profile.Name,
			Email:         profile.Email,
			Phone:         profile.Phone,
			TenthPct:      profile.TenthPct,
			TwelfthPct:    profile.TwelfthPct,
			DegreePctCGPA: profile.DegreePctCGPA,
			Experience:    profile.Experience,
		})
		if err != nil {
			return registeredMsg{Err: err}
		}
		return registeredMsg{UserID: resp.UserID, Persisted: resp.Persisted}
	}
}

func (p *ParseScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Title.Width(width).Render("Upload Your Resume")
	b.WriteString(title)
	b.WriteString("\n\n")

	switch p.phase {
	case phaseUploading:
		b.WriteString(centered(width, theme.Hint.Render("Uploading and parsing resume...")))
	case phaseRegistering:
		b.WriteString(centered(width, theme.Hint.Render("Registering candidate...")))
	case phaseReady:
		b.WriteString(p.renderProfile(width))
	default:
		b.WriteString(centered(width, "Resume: "+p.input.View()))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("PDF only. Text is extracted server-side.")))
	}

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Incorrect.Render(p.errMsg)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}

func (p *ParseScreen) renderProfile(width int) string {
	prof := p.profile
	rows := []struct{ label, value string }{
		{"Name", prof.Name},
		{"Email", prof.Email},
		{"Phone", prof.Phone},
		{"10th %", prof.TenthPct},
		{"12th %", prof.TwelfthPct},
		{"Degree % / CGPA", prof.DegreePctCGPA},
		{"Experience", fmt.Sprintf("%d item(s)", len(prof.Experience))},
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	for _, r := range rows {
		v := r.value
		if v == "" {
			v = "—"
		}
		b.WriteString(labelStyle.Render(r.label) + valueStyle.Render(v) + "\n")
	}

	card := theme.Card.Render(b.String())

	note := ""
	if p.regNote != "" {
		note = "\n" + theme.Hint.Render(p.regNote)
	}

	return centered(width, card+note)
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
