package store

import (
	"context"
	"time"
)

// AttemptEventData captures one attempt lifecycle event.
type AttemptEventData struct {
	AttemptID       string
	Action          string // "start" or "end"
	CandidateID     string
	CandidateName   string
	AptitudeLevel   string
	ReasoningLevel  string
	CodingLevel     string
	QuestionsServed int
	CorrectAnswers  int
	AccuracyPct     int
	Consistency     string
	DurationSecs    int
}

// AnswerEventData captures one scored answer.
type AnswerEventData struct {
	AttemptID       string
	QuestionID      string
	Domain          string
	Difficulty      string
	QuestionText    string
	CorrectAnswer   string
	CandidateAnswer string
	Correct         bool
}

// ReportEventData captures a generated narrative report.
type ReportEventData struct {
	AttemptID   string
	AccuracyPct int
	Consistency string
	Narrative   string
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AttemptSummary is one completed attempt as listed by the history
// command.
type AttemptSummary struct {
	AttemptID       string
	CandidateName   string
	Finished        time.Time
	QuestionsServed int
	CorrectAnswers  int
	AccuracyPct     int
	Consistency     string
	DurationSecs    int
}

// EventRepo provides append and query access to the history log.
type EventRepo interface {
	// AppendAttemptEvent records an attempt start or end.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendAnswerEvent records a scored answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendReportEvent records a generated narrative.
	AppendReportEvent(ctx context.Context, data ReportEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListAttempts returns completed attempts, most recent first,
	// capped at limit (0 = all).
	ListAttempts(ctx context.Context, limit int) ([]AttemptSummary, error)

	// AttemptAccuracy returns the fraction of recorded answers that
	// were correct for one attempt, 0 when none exist.
	AttemptAccuracy(ctx context.Context, attemptID string) (float64, error)
}
