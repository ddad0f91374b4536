package resume

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/intervet/internal/llm"
)

const sampleResume = `Asha Rao
asha.rao@example.com | +91 9876543210

Education
10th (SSLC): 92%
12th (PUC): 88.5%
B.E. Computer Science, CGPA 8.4 / 10

Experience
Backend Intern, Acme Systems
`

func TestFallbackParse(t *testing.T) {
	p := FallbackParse(sampleResume)

	if p.Name != "Asha Rao" {
		t.Errorf("name = %q, want Asha Rao", p.Name)
	}
	if p.Email != "asha.rao@example.com" {
		t.Errorf("email = %q", p.Email)
	}
	if p.Phone == "" {
		t.Error("expected phone extracted")
	}
	if p.TenthPct != "92%" {
		t.Errorf("tenth = %q, want 92%%", p.TenthPct)
	}
	if p.TwelfthPct != "88.5%" {
		t.Errorf("twelfth = %q, want 88.5%%", p.TwelfthPct)
	}
	if p.DegreePctCGPA != "8.4/10" {
		t.Errorf("cgpa = %q, want 8.4/10", p.DegreePctCGPA)
	}
}

func TestFallbackParseEmptyText(t *testing.T) {
	p := FallbackParse("")
	if p == nil {
		t.Fatal("expected non-nil profile")
	}
	if p.Name != "" || p.Email != "" {
		t.Errorf("expected empty fields, got %+v", p)
	}
	if p.Experience == nil {
		t.Error("experience should be an empty slice, not nil")
	}
}

func TestParseUsesLLM(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"name":                      "Asha Rao",
		"email":                     "asha.rao@example.com",
		"phone":                     "+91 9876543210",
		"experience":                []string{"Backend Intern @ Acme Systems"},
		"tenth_percentage":          "92%",
		"twelfth_percentage":        "88.5%",
		"degree_percentage_or_cgpa": "8.4/10",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	profile := NewParser(mock).Parse(context.Background(), sampleResume)

	if profile.Name != "Asha Rao" {
		t.Errorf("name = %q", profile.Name)
	}
	if len(profile.Experience) != 1 || profile.Experience[0] != "Backend Intern @ Acme Systems" {
		t.Errorf("experience = %v", profile.Experience)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM calls = %d, want 1", mock.CallCount())
	}
}

func TestParseFallsBackOnLLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("provider down")})

	profile := NewParser(mock).Parse(context.Background(), sampleResume)

	// Degrades to regex extraction instead of failing.
	if profile.Email != "asha.rao@example.com" {
		t.Errorf("email = %q, want regex-extracted address", profile.Email)
	}
}

func TestParsePatchesMissingMarksFromRegex(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"name":                      "Asha Rao",
		"email":                     "asha.rao@example.com",
		"phone":                     "",
		"experience":                []string{},
		"tenth_percentage":          "",
		"twelfth_percentage":        "",
		"degree_percentage_or_cgpa": "8.4/10",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})

	profile := NewParser(mock).Parse(context.Background(), sampleResume)

	if profile.TenthPct != "92%" {
		t.Errorf("tenth = %q, want patched 92%%", profile.TenthPct)
	}
	if profile.TwelfthPct != "88.5%" {
		t.Errorf("twelfth = %q, want patched 88.5%%", profile.TwelfthPct)
	}
}

func TestParseNilProvider(t *testing.T) {
	profile := NewParser(nil).Parse(context.Background(), sampleResume)
	if profile.Name != "Asha Rao" {
		t.Errorf("name = %q", profile.Name)
	}
}
