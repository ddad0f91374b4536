package test

import (
	"context"
	"fmt"
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/router"
	"github.com/abhisek/intervet/internal/screen"
	"github.com/abhisek/intervet/internal/store"
)

// mockGateway implements api.Gateway and counts calls; the test screen
// itself must never touch the network.
type mockGateway struct {
	calls int
}

func (m *mockGateway) ParseResume(context.Context, string, io.Reader) (*assessment.ParsedProfile, error) {
	m.calls++
	return nil, nil
}
func (m *mockGateway) RegisterCandidate(context.Context, api.RegisterCandidateRequest) (*api.RegisterCandidateResponse, error) {
	m.calls++
	return nil, nil
}
func (m *mockGateway) SaveLevels(context.Context, api.SaveLevelsRequest) (*api.SaveLevelsResponse, error) {
	m.calls++
	return nil, nil
}
func (m *mockGateway) SelectQuestions(context.Context, api.SelectQuestionsRequest) (*assessment.QuestionSet, error) {
	m.calls++
	return nil, nil
}
func (m *mockGateway) GenerateReport(context.Context, api.GenerateReportRequest) (*api.GenerateReportResponse, error) {
	m.calls++
	return nil, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attemptEvents []store.AttemptEventData
	answerEvents  []store.AnswerEventData
	reportEvents  []store.ReportEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendReportEvent(_ context.Context, data store.ReportEventData) error {
	m.reportEvents = append(m.reportEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) ListAttempts(_ context.Context, _ int) ([]store.AttemptSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func stubHome() screen.Screen {
	return nil
}

func testQuestions(n int) []assessment.FlatQuestion {
	out := make([]assessment.FlatQuestion, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, assessment.FlatQuestion{
			ID:     fmt.Sprintf("q-%d", i+1),
			Domain: assessment.DomainAptitude,
			Question: assessment.Question{
				Text:          fmt.Sprintf("Question %d?", i+1),
				Options:       []string{"alpha", "beta", "gamma", "delta"},
				CorrectAnswer: "alpha",
				Level:         assessment.LevelBeginner,
			},
		})
	}
	return out
}

func testScreen(n int) (*TestScreen, *mockGateway, *mockEventRepo) {
	gw := &mockGateway{}
	repo := &mockEventRepo{}
	choice := assessment.LevelChoice{
		Aptitude:  assessment.LevelBeginner,
		Reasoning: assessment.LevelBeginner,
		Coding:    assessment.LevelBeginner,
	}
	profile := &assessment.ParsedProfile{Name: "Test Candidate"}
	s := New(gw, repo, stubHome, profile, "user-1", choice, testQuestions(n))
	return s, gw, repo
}

// drain runs a command tree to completion, collecting produced
// messages. Batch commands are flattened.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	var msgs []tea.Msg
	msg := cmd()
	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, c := range m {
			msgs = append(msgs, drain(t, c)...)
		}
	default:
		if m != nil {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

func TestGuard_NoQuestions(t *testing.T) {
	s, gw, repo := testScreen(0)

	if cmd := s.Init(); cmd != nil {
		t.Error("guard state must not start the timer or record events")
	}

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty guard view")
	}

	// The only edge out is back to difficulty selection, which is two
	// frames down: the instructions screen pushed this one.
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	msgs := drain(t, cmd)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	for i, msg := range msgs {
		if _, ok := msg.(router.PopScreenMsg); !ok {
			t.Errorf("message %d: expected PopScreenMsg, got %T", i, msg)
		}
	}

	// Other keys do nothing.
	_, cmd = s.Update(keyPress('s'))
	if cmd != nil {
		t.Error("expected no command for submit key in guard state")
	}

	if gw.calls != 0 {
		t.Errorf("gateway calls = %d, want 0", gw.calls)
	}
	if len(repo.attemptEvents) != 0 {
		t.Errorf("attempt events = %d, want 0", len(repo.attemptEvents))
	}
}

// stubScreen stands in for the screens below the test screen on the
// navigation stack.
type stubScreen struct {
	title string
}

func (s stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s stubScreen) View(width, height int) string           { return s.title }
func (s stubScreen) Title() string                           { return s.title }

func TestGuard_EscReturnsToDifficultySelection(t *testing.T) {
	s, _, _ := testScreen(0)

	r := router.New(stubScreen{title: "Home"})
	r.Update(router.PushScreenMsg{Screen: stubScreen{title: "Difficulty"}})
	r.Update(router.PushScreenMsg{Screen: stubScreen{title: "Instructions"}})
	r.Update(router.PushScreenMsg{Screen: s})

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	for _, msg := range drain(t, cmd) {
		r.Update(msg)
	}

	if got := r.Active().Title(); got != "Difficulty" {
		t.Fatalf("active screen = %q, want Difficulty", got)
	}
}

func TestAnswerRecorded(t *testing.T) {
	s, _, _ := testScreen(3)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	ts := scr.(*TestScreen)

	sel, ok := ts.answers.Get("q-1")
	if !ok || sel != "beta" {
		t.Errorf("answer for q-1 = %q (%v), want %q", sel, ok, "beta")
	}
	if ts.answers.Answered() != 1 {
		t.Errorf("answered = %d, want 1", ts.answers.Answered())
	}
}

func TestAnswerOverwrite(t *testing.T) {
	s, _, _ := testScreen(1)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(keyPress('d'))
	ts := scr.(*TestScreen)

	sel, _ := ts.answers.Get("q-1")
	if sel != "delta" {
		t.Errorf("answer = %q, want %q (last write wins)", sel, "delta")
	}
	if ts.answers.Answered() != 1 {
		t.Errorf("answered = %d, want 1", ts.answers.Answered())
	}
}

func TestNavigationRestoresPick(t *testing.T) {
	s, _, _ := testScreen(3)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('c'))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	ts := scr.(*TestScreen)
	if ts.idx != 1 {
		t.Fatalf("idx = %d, want 1", ts.idx)
	}
	if ts.choiceList.Chosen != -1 {
		t.Error("expected fresh choice list on unanswered question")
	}

	scr, _ = ts.Update(specialKey(tea.KeyLeft))
	ts = scr.(*TestScreen)
	if ts.idx != 0 {
		t.Fatalf("idx = %d, want 0", ts.idx)
	}
	if got := ts.choiceList.ChosenOption(); got != "gamma" {
		t.Errorf("restored pick = %q, want %q", got, "gamma")
	}
}

func TestNavigationWraps(t *testing.T) {
	s, _, _ := testScreen(3)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	ts := scr.(*TestScreen)
	if ts.idx != 2 {
		t.Errorf("idx after left from first = %d, want 2", ts.idx)
	}
}

func TestSubmitConfirmFlow(t *testing.T) {
	s, _, _ := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	ts := scr.(*TestScreen)
	if !ts.confirming {
		t.Fatal("expected confirm dialog after submit key")
	}

	scr, _ = ts.Update(keyPress('n'))
	ts = scr.(*TestScreen)
	if ts.confirming {
		t.Error("expected confirm dialog dismissed by N")
	}
	if ts.finalized {
		t.Error("test must not finalize on N")
	}

	scr, _ = ts.Update(keyPress('s'))
	ts = scr.(*TestScreen)
	_, cmd := ts.Update(keyPress('y'))
	if !ts.finalized {
		t.Error("expected finalized after Y")
	}
	if cmd == nil {
		t.Fatal("expected a command after finalize")
	}
}

func TestFinalizeReplacesWithResults(t *testing.T) {
	s, _, repo := testScreen(2)

	s.Update(keyPress('a')) // correct
	s.Update(keyPress('s'))
	_, cmd := s.Update(keyPress('y'))

	msgs := drain(t, cmd)

	var sawReplace bool
	for _, m := range msgs {
		if _, ok := m.(router.ReplaceScreenMsg); ok {
			sawReplace = true
		}
	}
	if !sawReplace {
		t.Error("expected ReplaceScreenMsg to swap in the results screen")
	}

	// One end event plus one answer event per question.
	if len(repo.attemptEvents) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(repo.attemptEvents))
	}
	end := repo.attemptEvents[0]
	if end.Action != "end" {
		t.Errorf("action = %q, want end", end.Action)
	}
	if end.CorrectAnswers != 1 || end.QuestionsServed != 2 {
		t.Errorf("end event = %d/%d, want 1/2", end.CorrectAnswers, end.QuestionsServed)
	}
	if end.AccuracyPct != 50 {
		t.Errorf("accuracy = %d, want 50", end.AccuracyPct)
	}
	if len(repo.answerEvents) != 2 {
		t.Errorf("answer events = %d, want 2", len(repo.answerEvents))
	}
}

func TestFinalizeExactlyOnce(t *testing.T) {
	s, _, _ := testScreen(1)

	if cmd := s.finalize(); cmd == nil {
		t.Fatal("first finalize must produce a command")
	}
	if cmd := s.finalize(); cmd != nil {
		t.Error("second finalize must be a no-op")
	}
}

func TestTimerExpiryFinalizes(t *testing.T) {
	s, _, _ := testScreen(1)
	s.remaining = 1

	_, cmd := s.Update(tickMsg{})
	if !s.finalized {
		t.Error("expected finalize at zero")
	}
	if cmd == nil {
		t.Fatal("expected finalize command at zero")
	}

	// A straggler tick after finalize must not re-arm the loop.
	_, cmd = s.Update(tickMsg{})
	if cmd != nil {
		t.Error("expected no re-arm after finalize")
	}
}

func TestTimerAndSubmitRace(t *testing.T) {
	s, _, _ := testScreen(1)
	s.remaining = 1

	s.Update(tickMsg{})
	if !s.finalized {
		t.Fatal("expected finalize from timer")
	}

	// A submit landing after expiry must not finalize again.
	_, cmd := s.Update(keyPress('s'))
	if cmd != nil {
		t.Error("expected keys ignored after finalize")
	}
	if s.confirming {
		t.Error("confirm dialog must not open after finalize")
	}
}

func TestKeysIgnoredWhileConfirming(t *testing.T) {
	s, _, _ := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	scr, _ = scr.Update(keyPress('b'))
	ts := scr.(*TestScreen)

	if ts.answers.Answered() != 0 {
		t.Error("answer keys must not record while confirming")
	}
}

func TestStartEventRecorded(t *testing.T) {
	s, _, repo := testScreen(2)

	drain(t, s.Init())

	if len(repo.attemptEvents) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(repo.attemptEvents))
	}
	start := repo.attemptEvents[0]
	if start.Action != "start" {
		t.Errorf("action = %q, want start", start.Action)
	}
	if start.QuestionsServed != 2 {
		t.Errorf("questions served = %d, want 2", start.QuestionsServed)
	}
	if start.CandidateName != "Test Candidate" {
		t.Errorf("candidate name = %q", start.CandidateName)
	}
}
