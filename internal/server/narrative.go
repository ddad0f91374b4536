package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/llm"
)

const narratorSystemPrompt = `You are a precise assessment analyst. Create a Career & Skill Development Report based solely on the provided data.
Rules:
- Use the candidate's results and academic profile only; do not invent data.
- Professional tone, clear headings, bullet points where helpful.
- Sections: Performance Analysis; Skill Gap Analysis; Personalized 6-Week Improvement Plan; Career Guidance; Internship Recommendations; Final Summary.
- Keep recommendations realistic for the current level. Do not include code fences.
- If the score is below 30%, be direct about the failed assessment and its gaps. Do not sugarcoat poor performance.`

// Narrator turns a scored report into narrative markdown.
type Narrator struct {
	provider llm.Provider
}

// NewNarrator creates a Narrator. A nil provider means the local
// template is always used.
func NewNarrator(provider llm.Provider) *Narrator {
	return &Narrator{provider: provider}
}

// Narrate generates the report markdown. LLM failures degrade to a
// locally built template so report generation never errors.
func (n *Narrator) Narrate(ctx context.Context, req api.GenerateReportRequest) string {
	if n.provider == nil {
		return localNarrative(req)
	}

	md, err := n.narrateLLM(ctx, req)
	if err != nil || strings.TrimSpace(md) == "" {
		return localNarrative(req)
	}
	return strings.TrimSpace(md)
}

func (n *Narrator) narrateLLM(ctx context.Context, req api.GenerateReportRequest) (string, error) {
	ctx = llm.WithPurpose(ctx, "report-narrative")

	payload, err := json.Marshal(map[string]any{
		"test_results": map[string]any{
			"answers":  req.Answers,
			"totals":   req.Totals,
			"behavior": req.Behavior,
		},
		"academic_profile": req.Profile,
	})
	if err != nil {
		return "", fmt.Errorf("marshal report payload: %w", err)
	}

	resp, err := n.provider.Generate(ctx, llm.Request{
		System: narratorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(payload)},
		},
		MaxTokens:   4096,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}

	// Free-text response: Content carries the raw markdown. It may
	// arrive JSON-quoted depending on the provider.
	var quoted string
	if json.Unmarshal(resp.Content, &quoted) == nil {
		return quoted, nil
	}
	return string(resp.Content), nil
}

// localNarrative is the deterministic fallback report.
func localNarrative(req api.GenerateReportRequest) string {
	t := req.Totals
	b := req.Behavior

	var md strings.Builder
	md.WriteString("# Career & Skill Development Report\n\n")
	md.WriteString("## Performance Analysis\n")
	fmt.Fprintf(&md, "- Total Score: %d / %d (%d%%)\n", t.Overall, t.TotalQuestions, b.Accuracy)
	fmt.Fprintf(&md, "- Aptitude: %d\n", t.Aptitude)
	fmt.Fprintf(&md, "- Reasoning: %d\n", t.Reasoning)
	fmt.Fprintf(&md, "- Coding: %d\n", t.Coding)
	fmt.Fprintf(&md, "- Consistency: %s\n\n", b.Consistency)
	md.WriteString("## Skill Gap Analysis\n")
	md.WriteString("- Review the questions scored incorrect and focus practice there.\n\n")
	md.WriteString("## Personalized 6-Week Improvement Plan\n")
	md.WriteString("- Weeks 1-2: Quantitative basics and reasoning drills.\n")
	md.WriteString("- Weeks 3-4: Coding fundamentals and problem sets (arrays, strings, hashing).\n")
	md.WriteString("- Weeks 5-6: Mixed timed mocks; keep an error log and review it.\n\n")
	md.WriteString("## Career Guidance\n")
	md.WriteString("- Target roles aligned with the strongest section; close core gaps first.\n\n")
	md.WriteString("## Internship Recommendations\n")
	md.WriteString("- Frontend, full-stack, QA or data-analyst internships depending on section strengths.\n\n")
	md.WriteString("## Final Summary\n")
	md.WriteString("- Keep a steady daily routine; expect visible improvement within 6-8 weeks.\n")
	return md.String()
}
