package bank

import (
	"testing"

	"github.com/abhisek/intervet/internal/assessment"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"92%", 92, true},
		{" 88.5 % ", 88.5, true},
		{"77", 77, true},
		{"", 0, false},
		{"N/A", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePercent(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParsePercent(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseCGPA(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"8.40 / 10.0", 8.4, true},
		{"8.4/10", 8.4, true},
		{"9.1", 9.1, true},
		{"", 0, false},
		{"first class", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCGPA(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCGPA(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestComputeStrength(t *testing.T) {
	tests := []struct {
		name    string
		profile *assessment.ParsedProfile
		want    Strength
	}{
		{
			// 4 + 4 + 3 + 4 = 15
			"top marks and experience",
			&assessment.ParsedProfile{
				DegreePctCGPA: "9.5/10",
				TwelfthPct:    "96%",
				TenthPct:      "97%",
				Experience:    []string{"a", "b", "c"},
			},
			StrengthExtremelyStrong,
		},
		{
			// 3 + 3 + 2 + 2 = 10
			"good marks, one internship",
			&assessment.ParsedProfile{
				DegreePctCGPA: "8.2/10",
				TwelfthPct:    "91%",
				TenthPct:      "88%",
				Experience:    []string{"intern"},
			},
			StrengthStrong,
		},
		{
			// 2 + 2 + 1 + 1 = 6
			"middling marks, no experience",
			&assessment.ParsedProfile{
				DegreePctCGPA: "7.1/10",
				TwelfthPct:    "82%",
				TenthPct:      "70%",
			},
			StrengthAverage,
		},
		{
			// Only the no-experience point: 1
			"empty profile",
			&assessment.ParsedProfile{},
			StrengthWeak,
		},
		{
			"nil profile",
			nil,
			StrengthWeak,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStrength(tt.profile); got != tt.want {
				t.Errorf("strength = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFinalLevel(t *testing.T) {
	tests := []struct {
		strength  Strength
		requested assessment.Level
		want      assessment.Level
	}{
		{StrengthWeak, assessment.LevelBeginner, assessment.LevelBeginner},
		{StrengthWeak, assessment.LevelIntermediate, assessment.LevelBeginner},
		{StrengthWeak, assessment.LevelAdvance, assessment.LevelIntermediate},
		{StrengthAverage, assessment.LevelBeginner, assessment.LevelBeginner},
		{StrengthAverage, assessment.LevelIntermediate, assessment.LevelIntermediate},
		{StrengthAverage, assessment.LevelAdvance, assessment.LevelAdvance},
		{StrengthStrong, assessment.LevelBeginner, assessment.LevelBeginner},
		{StrengthStrong, assessment.LevelIntermediate, assessment.LevelAdvance},
		{StrengthStrong, assessment.LevelAdvance, assessment.LevelAdvance},
		{StrengthExtremelyStrong, assessment.LevelIntermediate, assessment.LevelAdvance},
	}
	for _, tt := range tests {
		got := FinalLevel(tt.strength, tt.requested)
		if got != tt.want {
			t.Errorf("FinalLevel(%s, %s) = %s, want %s", tt.strength, tt.requested, got, tt.want)
		}
	}
}
