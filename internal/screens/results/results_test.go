package results

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/store"
)

type mockGateway struct {
	reportCalls int
	reportErr   error
	markdown    string
}

func (m *mockGateway) ParseResume(context.Context, string, io.Reader) (*assessment.ParsedProfile, error) {
	return nil, nil
}
func (m *mockGateway) RegisterCandidate(context.Context, api.RegisterCandidateRequest) (*api.RegisterCandidateResponse, error) {
	return nil, nil
}
func (m *mockGateway) SaveLevels(context.Context, api.SaveLevelsRequest) (*api.SaveLevelsResponse, error) {
	return nil, nil
}
func (m *mockGateway) SelectQuestions(context.Context, api.SelectQuestionsRequest) (*assessment.QuestionSet, error) {
	return nil, nil
}
func (m *mockGateway) GenerateReport(context.Context, api.GenerateReportRequest) (*api.GenerateReportResponse, error) {
	m.reportCalls++
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return &api.GenerateReportResponse{ReportMarkdown: m.markdown}, nil
}

type mockEventRepo struct {
	reportEvents []store.ReportEventData
}

func (m *mockEventRepo) AppendAttemptEvent(context.Context, store.AttemptEventData) error { return nil }
func (m *mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (m *mockEventRepo) AppendReportEvent(_ context.Context, data store.ReportEventData) error {
	m.reportEvents = append(m.reportEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) ListAttempts(context.Context, int) ([]store.AttemptSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptAccuracy(context.Context, string) (float64, error) { return 0, nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func sampleReport() *assessment.Report {
	return &assessment.Report{
		Totals:   assessment.Totals{Overall: 18, TotalQuestions: 30, Aptitude: 6, Reasoning: 6, Coding: 6},
		Behavior: assessment.Behavior{Accuracy: 60, Consistency: "Moderately consistent"},
		Profile:  &assessment.ParsedProfile{Name: "Test Candidate"},
	}
}

func homeStub() screen.Screen { return nil }

func TestGuard_NoReport(t *testing.T) {
	gw := &mockGateway{}
	s := New(gw, nil, homeStub, nil, "", 0)

	if cmd := s.Init(); cmd != nil {
		t.Error("guard state must not fetch a narrative")
	}
	if gw.reportCalls != 0 {
		t.Errorf("report calls = %d, want 0", gw.reportCalls)
	}

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty guard view")
	}

	// The only edge is a reset back to the start.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected reset command")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Error("expected ResetScreenMsg")
	}
}

func TestNarrativeRecorded(t *testing.T) {
	gw := &mockGateway{markdown: "# Career Report\nGood work."}
	repo := &mockEventRepo{}
	s := New(gw, repo, homeStub, sampleReport(), "attempt-1", 900)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected narrative fetch on init")
	}
	msg := cmd()

	var scr screen.Screen
	scr, cmd = s.Update(msg)
	rs := scr.(*ResultsScreen)
	if rs.narrative != gw.markdown {
		t.Errorf("narrative = %q", rs.narrative)
	}

	if cmd == nil {
		t.Fatal("expected report event append")
	}
	cmd()
	if len(repo.reportEvents) != 1 {
		t.Fatalf("report events = %d, want 1", len(repo.reportEvents))
	}
	ev := repo.reportEvents[0]
	if ev.AttemptID != "attempt-1" || ev.AccuracyPct != 60 {
		t.Errorf("event = %+v", ev)
	}
}

func TestNarrativeErrorThenRetry(t *testing.T) {
	gw := &mockGateway{reportErr: errors.New("backend down")}
	s := New(gw, nil, homeStub, sampleReport(), "attempt-1", 900)

	msg := s.Init()()
	scr, _ := s.Update(msg)
	rs := scr.(*ResultsScreen)
	if rs.errMsg == "" {
		t.Fatal("expected error message")
	}

	// Manual retry after the backend recovers.
	gw.reportErr = nil
	gw.markdown = "recovered"
	_, cmd := rs.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retry command")
	}
	scr, _ = rs.Update(cmd())
	rs = scr.(*ResultsScreen)
	if rs.narrative != "recovered" {
		t.Errorf("narrative = %q, want recovered", rs.narrative)
	}
	if gw.reportCalls != 2 {
		t.Errorf("report calls = %d, want 2", gw.reportCalls)
	}
}

func TestScoreNeverDependsOnNetwork(t *testing.T) {
	gw := &mockGateway{reportErr: errors.New("backend down")}
	s := New(gw, nil, homeStub, sampleReport(), "attempt-1", 900)

	msg := s.Init()()
	scr, _ := s.Update(msg)
	rs := scr.(*ResultsScreen)

	view := rs.View(100, 40)
	if view == "" {
		t.Fatal("expected rendered view")
	}
	// Score card renders from the local report even with the
	// narrative unavailable.
	for _, want := range []string{"18 / 30", "60%", "Moderately consistent"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
