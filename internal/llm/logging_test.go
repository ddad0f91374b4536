package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/intervet/internal/store"
)

type recordingRepo struct {
	llmEvents []store.LLMRequestEventData
	appendErr error
}

func (r *recordingRepo) AppendAttemptEvent(context.Context, store.AttemptEventData) error { return nil }
func (r *recordingRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error { return nil }
func (r *recordingRepo) AppendReportEvent(context.Context, store.ReportEventData) error { return nil }

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.llmEvents = append(r.llmEvents, data)
	return r.appendErr
}

func (r *recordingRepo) ListAttempts(context.Context, int) ([]store.AttemptSummary, error) {
	return nil, nil
}

func (r *recordingRepo) AttemptAccuracy(context.Context, string) (float64, error) {
	return 0, nil
}

func TestLogging_RecordsEvent(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"name":"Asha Rao"}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 7},
		},
	)
	repo := &recordingRepo{}
	p := WithLogging(mock, "groq", repo)

	ctx := WithPurpose(context.Background(), "resume-extraction")
	resp, err := p.Generate(ctx, Request{
		System:   "extract fields",
		Messages: []Message{{Role: RoleUser, Content: "resume text"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"name":"Asha Rao"}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	ev := repo.llmEvents[0]
	if ev.Provider != "groq" {
		t.Errorf("provider = %q, want groq", ev.Provider)
	}
	if ev.Purpose != "resume-extraction" {
		t.Errorf("purpose = %q, want resume-extraction", ev.Purpose)
	}
	if !ev.Success {
		t.Error("event not marked successful")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("boom")},
	)
	repo := &recordingRepo{}
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	ev := repo.llmEvents[0]
	if ev.Success {
		t.Error("failed call marked successful")
	}
	if ev.ErrorMessage != "boom" {
		t.Errorf("error message = %q, want boom", ev.ErrorMessage)
	}
}

func TestLogging_NilRepoIsPassthrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithLogging(mock, "groq", nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestLogging_AppendErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	repo := &recordingRepo{appendErr: errors.New("db locked")}
	p := WithLogging(mock, "groq", repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
