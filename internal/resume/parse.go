package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/intervet/internal/assessment"
	"github.com/abhisek/intervet/internal/llm"
)

const systemPrompt = `You extract candidate details from resume text. Return only the requested JSON fields, populated from the resume. Use empty strings or empty arrays for data the resume does not contain.

For tenth_percentage, look for labels like "10th", "SSLC" or "SSC". For twelfth_percentage, look for "12th", "2 PU", "PUC" or "HSC". For degree_percentage_or_cgpa, use the degree-level grade (CGPA like "8.4/10" or a percentage). Each experience entry is one line: the role title, followed by " @ " and the company when known.`

// profileSchema constrains the LLM output to the minimal profile shape.
var profileSchema = &llm.Schema{
	Name:        "resume-profile",
	Description: "Structured candidate fields extracted from resume text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"email": map[string]any{"type": "string"},
			"phone": map[string]any{"type": "string"},
			"experience": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"tenth_percentage":          map[string]any{"type": "string"},
			"twelfth_percentage":        map[string]any{"type": "string"},
			"degree_percentage_or_cgpa": map[string]any{"type": "string"},
		},
		"required":             []any{"name", "email", "phone", "experience", "tenth_percentage", "twelfth_percentage", "degree_percentage_or_cgpa"},
		"additionalProperties": false,
	},
}

// Parser extracts structured profiles from resume text.
type Parser struct {
	provider llm.Provider
}

// NewParser creates a Parser backed by the given LLM provider. A nil
// provider means regex-only parsing.
func NewParser(provider llm.Provider) *Parser {
	return &Parser{provider: provider}
}

// Parse extracts the candidate profile from resume text. LLM failures
// degrade to the regex fallback rather than erroring, so the caller
// always gets a profile.
func (p *Parser) Parse(ctx context.Context, text string) *assessment.ParsedProfile {
	if p.provider == nil {
		return FallbackParse(text)
	}

	profile, err := p.parseLLM(ctx, text)
	if err != nil {
		return FallbackParse(text)
	}

	// The LLM sometimes misses school marks buried in tables; patch
	// the gaps from the regex pass.
	if profile.TenthPct == "" || profile.TwelfthPct == "" {
		fb := FallbackParse(text)
		if profile.TenthPct == "" {
			profile.TenthPct = fb.TenthPct
		}
		if profile.TwelfthPct == "" {
			profile.TwelfthPct = fb.TwelfthPct
		}
	}
	if profile.Experience == nil {
		profile.Experience = []string{}
	}
	return profile
}

func (p *Parser) parseLLM(ctx context.Context, text string) (*assessment.ParsedProfile, error) {
	ctx = llm.WithPurpose(ctx, "resume-parse")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    profileSchema,
		MaxTokens: 2048,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM extraction failed: %w", err)
	}

	var profile assessment.ParsedProfile
	if err := json.Unmarshal(resp.Content, &profile); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}
	return &profile, nil
}
