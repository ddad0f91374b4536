package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/intervet/internal/store"
)

type mockEventRepo struct {
	attempts     []store.AttemptSummary
	accuracies   map[string]float64
	accuracyErr  error
	verifiedWith []string
}

func (m *mockEventRepo) AppendAttemptEvent(context.Context, store.AttemptEventData) error { return nil }
func (m *mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (m *mockEventRepo) AppendReportEvent(context.Context, store.ReportEventData) error { return nil }
func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) ListAttempts(context.Context, int) ([]store.AttemptSummary, error) {
	return m.attempts, nil
}

func (m *mockEventRepo) AttemptAccuracy(_ context.Context, attemptID string) (float64, error) {
	m.verifiedWith = append(m.verifiedWith, attemptID)
	if m.accuracyErr != nil {
		return 0, m.accuracyErr
	}
	return m.accuracies[attemptID], nil
}

func summaries() []store.AttemptSummary {
	return []store.AttemptSummary{
		{AttemptID: "attempt-2", CandidateName: "Asha Rao", Finished: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), QuestionsServed: 30, CorrectAnswers: 24, AccuracyPct: 80},
		{AttemptID: "attempt-1", CandidateName: "Ravi Kumar", Finished: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), QuestionsServed: 30, CorrectAnswers: 15, AccuracyPct: 50},
	}
}

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loaded(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	h := New(repo)
	msg := h.Init()()
	scr, _ := h.Update(msg)
	return scr.(*HistoryScreen)
}

func TestVerifySelectedAttempt(t *testing.T) {
	repo := &mockEventRepo{
		attempts:   summaries(),
		accuracies: map[string]float64{"attempt-2": 0.8},
	}
	h := loaded(t, repo)

	scr, cmd := h.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	scr, _ = scr.Update(cmd())

	if len(repo.verifiedWith) != 1 || repo.verifiedWith[0] != "attempt-2" {
		t.Fatalf("verified attempts = %v, want [attempt-2]", repo.verifiedWith)
	}

	view := scr.View(120, 24)
	if !strings.Contains(view, "80% of recorded answers correct") {
		t.Errorf("detail line missing from view:\n%s", view)
	}
}

func TestVerifyFollowsSelection(t *testing.T) {
	repo := &mockEventRepo{
		attempts:   summaries(),
		accuracies: map[string]float64{"attempt-1": 0.5},
	}
	h := loaded(t, repo)

	s, _ := h.Update(keyPress(tea.KeyDown))
	s, cmd := s.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	s, _ = s.Update(cmd())

	if len(repo.verifiedWith) != 1 || repo.verifiedWith[0] != "attempt-1" {
		t.Fatalf("verified attempts = %v, want [attempt-1]", repo.verifiedWith)
	}
	if !strings.Contains(s.View(120, 24), "50% of recorded answers correct") {
		t.Error("detail line missing after moving the selection")
	}
}

func TestVerifyErrorShown(t *testing.T) {
	repo := &mockEventRepo{
		attempts:    summaries(),
		accuracyErr: errors.New("db locked"),
	}
	h := loaded(t, repo)

	s, cmd := h.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	s, _ = s.Update(cmd())

	if !strings.Contains(s.View(120, 24), "Answer log unavailable") {
		t.Error("expected the error detail in the view")
	}
}

func TestVerifyNoAttempts(t *testing.T) {
	repo := &mockEventRepo{}
	h := loaded(t, repo)

	if _, cmd := h.Update(keyPress(tea.KeyEnter)); cmd != nil {
		t.Error("expected no command when the list is empty")
	}
}
