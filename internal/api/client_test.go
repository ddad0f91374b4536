package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/intervet/internal/assessment"
)

func TestParseResume(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/parse", r.URL.Path)

		file, header, err := r.FormFile("pdf")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "resume.pdf", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-fake", string(content))

		json.NewEncoder(w).Encode(assessment.ParsedProfile{
			Name:       "Asha Rao",
			Email:      "asha@example.com",
			Experience: []string{"Backend Intern @ Acme"},
			TenthPct:   "92%",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	profile, err := c.ParseResume(context.Background(), "resume.pdf", strings.NewReader("%PDF-fake"))
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", profile.Name)
	assert.Equal(t, []string{"Backend Intern @ Acme"}, profile.Experience)
}

func TestRegisterCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)

		var req RegisterCandidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Asha Rao", req.Name)

		json.NewEncoder(w).Encode(RegisterCandidateResponse{UserID: "u-123", Persisted: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	resp, err := c.RegisterCandidate(context.Background(), RegisterCandidateRequest{Name: "Asha Rao"})
	require.NoError(t, err)
	assert.Equal(t, "u-123", resp.UserID)
	assert.True(t, resp.Persisted)
}

func TestSaveLevels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/responses", r.URL.Path)

		var req SaveLevelsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, assessment.LevelIntermediate, req.AptitudeLevel)

		json.NewEncoder(w).Encode(SaveLevelsResponse{Saved: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	resp, err := c.SaveLevels(context.Background(), SaveLevelsRequest{
		UserID:         "u-123",
		AptitudeLevel:  assessment.LevelIntermediate,
		ReasoningLevel: assessment.LevelBeginner,
		CodingLevel:    assessment.LevelAdvance,
	})
	require.NoError(t, err)
	assert.True(t, resp.Saved)
}

func TestSelectQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/select_questions", r.URL.Path)

		var req SelectQuestionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Counts)
		assert.Equal(t, 10, req.Counts.Aptitude)

		json.NewEncoder(w).Encode(assessment.QuestionSet{
			Aptitude: assessment.QuestionGroup{
				FinalLevel: assessment.LevelBeginner,
				Questions: []assessment.Question{{
					Text:          "2 + 2?",
					Options:       []string{"3", "4", "5", "6"},
					CorrectAnswer: "4",
				}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	counts := DefaultCounts()
	set, err := c.SelectQuestions(context.Background(), SelectQuestionsRequest{
		UserID:         "u-123",
		AptitudeLevel:  assessment.LevelBeginner,
		ReasoningLevel: assessment.LevelBeginner,
		CodingLevel:    assessment.LevelBeginner,
		Counts:         &counts,
	})
	require.NoError(t, err)
	assert.Equal(t, assessment.LevelBeginner, set.Aptitude.FinalLevel)
	require.Len(t, set.Aptitude.Questions, 1)
	assert.Equal(t, "4", set.Aptitude.Questions[0].CorrectAnswer)
}

func TestGenerateReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate_report", r.URL.Path)

		var req GenerateReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 60, req.Behavior.Accuracy)

		json.NewEncoder(w).Encode(GenerateReportResponse{ReportMarkdown: "## Performance Analysis\nSolid."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	resp, err := c.GenerateReport(context.Background(), GenerateReportRequest{
		Behavior: assessment.Behavior{Accuracy: 60, Consistency: assessment.ModeratelyConsistent},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ReportMarkdown, "Performance Analysis")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok", DB: "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestErrorBodySurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "name is required")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.RegisterCandidate(context.Background(), RegisterCandidateRequest{})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "name is required", statusErr.Message)
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Health(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.NotEmpty(t, statusErr.Message)
}
