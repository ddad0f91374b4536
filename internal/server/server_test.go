package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/bank"
	"github.com/abhisek/intervet/internal/llm"
)

func testBank() *bank.Bank {
	leveled := func(prefix string, beginner, intermediate, advance int) []assessment.Question {
		var qs []assessment.Question
		add := func(n int, level assessment.Level) {
			for i := 0; i < n; i++ {
				qs = append(qs, assessment.Question{
					Text:          prefix + " question",
					Options:       []string{"A", "B", "C", "D"},
					CorrectAnswer: "A",
					Level:         level,
				})
			}
		}
		add(beginner, assessment.LevelBeginner)
		add(intermediate, assessment.LevelIntermediate)
		add(advance, assessment.LevelAdvance)
		return qs
	}
	return &bank.Bank{
		Aptitude:  leveled("aptitude", 15, 15, 15),
		Reasoning: leveled("reasoning", 15, 15, 15),
		Coding:    leveled("coding", 15, 15, 15),
	}
}

func testClient(t *testing.T, provider llm.Provider) *api.Client {
	t.Helper()
	srv := httptest.NewServer(New(testBank(), provider).Router())
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, nil)
}

func strongProfile() assessment.ParsedProfile {
	return assessment.ParsedProfile{
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		Experience:    []string{"a", "b", "c"},
		TenthPct:      "96%",
		TwelfthPct:    "96%",
		DegreePctCGPA: "9.2/10",
	}
}

func TestHealthEndpoint(t *testing.T) {
	c := testClient(t, nil)
	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestRegisterAndSaveLevels(t *testing.T) {
	c := testClient(t, nil)
	ctx := context.Background()

	reg, err := c.RegisterCandidate(ctx, api.RegisterCandidateRequest{
		Name:  "Asha Rao",
		Email: "asha@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, reg.UserID)
	assert.True(t, reg.Persisted)

	// Same email re-registers as the same candidate.
	reg2, err := c.RegisterCandidate(ctx, api.RegisterCandidateRequest{
		Name:  "Asha R.",
		Email: "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, reg2.UserID)

	saved, err := c.SaveLevels(ctx, api.SaveLevelsRequest{
		UserID:         reg.UserID,
		AptitudeLevel:  assessment.LevelBeginner,
		ReasoningLevel: assessment.LevelIntermediate,
		CodingLevel:    assessment.LevelAdvance,
	})
	require.NoError(t, err)
	assert.True(t, saved.Saved)
}

func TestRegisterRequiresName(t *testing.T) {
	c := testClient(t, nil)
	_, err := c.RegisterCandidate(context.Background(), api.RegisterCandidateRequest{Email: "x@example.com"})

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.StatusCode)
	assert.Equal(t, "name is required", statusErr.Message)
}

func TestSaveLevelsUnknownUser(t *testing.T) {
	c := testClient(t, nil)
	_, err := c.SaveLevels(context.Background(), api.SaveLevelsRequest{
		UserID:         "nope",
		AptitudeLevel:  assessment.LevelBeginner,
		ReasoningLevel: assessment.LevelBeginner,
		CodingLevel:    assessment.LevelBeginner,
	})

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)
}

func TestSelectQuestionsWithDirectResume(t *testing.T) {
	c := testClient(t, nil)
	profile := strongProfile()

	counts := api.DomainCounts{Aptitude: 5, Reasoning: 5, Coding: 5}
	set, err := c.SelectQuestions(context.Background(), api.SelectQuestionsRequest{
		AptitudeLevel:  assessment.LevelIntermediate,
		ReasoningLevel: assessment.LevelBeginner,
		CodingLevel:    assessment.LevelAdvance,
		Counts:         &counts,
		Resume:         &profile,
	})
	require.NoError(t, err)

	// A strong resume pushes intermediate requests to advance; a
	// beginner request is never raised.
	assert.Equal(t, assessment.LevelAdvance, set.Aptitude.FinalLevel)
	assert.Equal(t, assessment.LevelBeginner, set.Reasoning.FinalLevel)
	assert.Equal(t, assessment.LevelAdvance, set.Coding.FinalLevel)

	assert.Len(t, set.Aptitude.Questions, 5)
	assert.Len(t, set.Reasoning.Questions, 5)
	assert.Len(t, set.Coding.Questions, 5)
	for _, q := range set.Aptitude.Questions {
		assert.Equal(t, assessment.LevelAdvance, q.Level)
	}
}

func TestSelectQuestionsViaRegisteredUser(t *testing.T) {
	c := testClient(t, nil)
	ctx := context.Background()

	p := strongProfile()
	reg, err := c.RegisterCandidate(ctx, api.RegisterCandidateRequest{
		Name:          p.Name,
		Email:         p.Email,
		Experience:    p.Experience,
		TenthPct:      p.TenthPct,
		TwelfthPct:    p.TwelfthPct,
		DegreePctCGPA: p.DegreePctCGPA,
	})
	require.NoError(t, err)

	set, err := c.SelectQuestions(ctx, api.SelectQuestionsRequest{
		UserID:         reg.UserID,
		AptitudeLevel:  assessment.LevelBeginner,
		ReasoningLevel: assessment.LevelBeginner,
		CodingLevel:    assessment.LevelBeginner,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, set.Total())
}

func TestSelectQuestionsRequiresUserOrResume(t *testing.T) {
	c := testClient(t, nil)
	_, err := c.SelectQuestions(context.Background(), api.SelectQuestionsRequest{
		AptitudeLevel:  assessment.LevelBeginner,
		ReasoningLevel: assessment.LevelBeginner,
		CodingLevel:    assessment.LevelBeginner,
	})

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.StatusCode)
	assert.Equal(t, "Provide user_id or resume data", statusErr.Message)
}

func TestGenerateReportLocalFallback(t *testing.T) {
	c := testClient(t, nil)

	resp, err := c.GenerateReport(context.Background(), api.GenerateReportRequest{
		Totals:   assessment.Totals{Overall: 18, TotalQuestions: 30, Aptitude: 7, Reasoning: 6, Coding: 5},
		Behavior: assessment.Behavior{Accuracy: 60, Consistency: assessment.ModeratelyConsistent},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ReportMarkdown, "Performance Analysis")
	assert.Contains(t, resp.ReportMarkdown, "18 / 30 (60%)")
}

func TestGenerateReportUsesLLM(t *testing.T) {
	narrative, _ := json.Marshal("## Performance Analysis\nStrong aptitude showing.")
	mock := llm.NewMockProvider(llm.MockResponse{Content: narrative})
	c := testClient(t, mock)

	resp, err := c.GenerateReport(context.Background(), api.GenerateReportRequest{
		Totals:   assessment.Totals{Overall: 25, TotalQuestions: 30},
		Behavior: assessment.Behavior{Accuracy: 83, Consistency: assessment.HighlyConsistent},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ReportMarkdown, "Strong aptitude showing")
	require.Equal(t, 1, mock.CallCount())

	// The prompt carries the scored results, not a re-computation.
	sent := mock.Calls[0].Messages[0].Content
	assert.True(t, strings.Contains(sent, `"accuracy":83`))
}

func TestGenerateReportLLMErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call errors
	c := testClient(t, mock)

	resp, err := c.GenerateReport(context.Background(), api.GenerateReportRequest{
		Totals:   assessment.Totals{Overall: 3, TotalQuestions: 30},
		Behavior: assessment.Behavior{Accuracy: 10, Consistency: assessment.HighlyConsistent},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ReportMarkdown, "Career & Skill Development Report")
}
