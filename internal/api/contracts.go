// Package api is the HTTP gateway to the assessment backend. Each
// call has an explicit request/response contract; bodies are never
// untyped maps.
package api

import "github.com/abhisek/intervet/internal/assessment"

// RegisterCandidateRequest creates or updates a candidate from the
// parsed profile. The backend matches on email when present.
type RegisterCandidateRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	TenthPct      string   `json:"tenth_percentage"`
	TwelfthPct    string   `json:"twelfth_percentage"`
	DegreePctCGPA string   `json:"degree_percentage_or_cgpa"`
	Experience    []string `json:"experience"`
}

// RegisterCandidateResponse carries the backend's candidate id.
// Persisted is false when the backend has no database configured and
// returned a placeholder id.
type RegisterCandidateResponse struct {
	UserID    string `json:"user_id"`
	Persisted bool   `json:"persisted"`
}

// SaveLevelsRequest persists the candidate's chosen difficulty levels.
type SaveLevelsRequest struct {
	UserID         string           `json:"user_id"`
	AptitudeLevel  assessment.Level `json:"aptitude_level"`
	ReasoningLevel assessment.Level `json:"reasoning_level"`
	CodingLevel    assessment.Level `json:"coding_level"`
}

// SaveLevelsResponse acknowledges level persistence.
type SaveLevelsResponse struct {
	Saved bool `json:"saved"`
}

// DomainCounts is the per-domain requested question count.
type DomainCounts struct {
	Aptitude  int `json:"aptitude"`
	Reasoning int `json:"reasoning"`
	Coding    int `json:"coding"`
}

// DefaultCounts is the standard 30-question test.
func DefaultCounts() DomainCounts {
	return DomainCounts{Aptitude: 10, Reasoning: 10, Coding: 10}
}

// SelectQuestionsRequest asks the backend to assemble the test. Either
// UserID or Resume must be set; the backend folds resume strength into
// the final levels.
type SelectQuestionsRequest struct {
	UserID         string                    `json:"user_id,omitempty"`
	AptitudeLevel  assessment.Level          `json:"aptitude_level"`
	ReasoningLevel assessment.Level          `json:"reasoning_level"`
	CodingLevel    assessment.Level          `json:"coding_level"`
	Counts         *DomainCounts             `json:"counts,omitempty"`
	Resume         *assessment.ParsedProfile `json:"resume,omitempty"`
}

// GenerateReportRequest carries the locally computed report for
// narrative synthesis. The backend does not re-score.
type GenerateReportRequest struct {
	Answers  []assessment.AnswerResult `json:"answers"`
	Totals   assessment.Totals         `json:"totals"`
	Behavior assessment.Behavior       `json:"behavior"`
	Profile  *assessment.ParsedProfile `json:"profile,omitempty"`
	Model    string                    `json:"model,omitempty"`
}

// GenerateReportResponse is the narrative markdown.
type GenerateReportResponse struct {
	ReportMarkdown string `json:"report_markdown"`
}

// HealthResponse reports backend liveness and database state.
type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}
