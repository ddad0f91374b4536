package bank

import (
	"strconv"
	"strings"

	"github.com/abhisek/intervet/internal/assessment"
)

// Strength grades the resume's academic and experience signals.
type Strength string

const (
	StrengthWeak            Strength = "WEAK"
	StrengthAverage         Strength = "AVERAGE"
	StrengthStrong          Strength = "STRONG"
	StrengthExtremelyStrong Strength = "EXTREMELY_STRONG"
)

// ParsePercent parses a free-text percentage ("92%", "88.5") into a
// float. Returns false when the field is empty or unparseable.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCGPA parses a free-text CGPA like "8.40 / 10.0" or "8.4/10",
// taking the part before the slash.
func ParseCGPA(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	main := strings.TrimSpace(strings.SplitN(s, "/", 2)[0])
	v, err := strconv.ParseFloat(main, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ComputeStrength scores the profile's CGPA, 12th and 10th marks, and
// experience count into a strength grade. Missing fields contribute
// nothing rather than penalizing.
func ComputeStrength(p *assessment.ParsedProfile) Strength {
	if p == nil {
		return StrengthWeak
	}

	score := 0
	if cgpa, ok := ParseCGPA(p.DegreePctCGPA); ok {
		switch {
		case cgpa >= 9.0:
			score += 4
		case cgpa >= 8.0:
			score += 3
		case cgpa >= 7.0:
			score += 2
		default:
			score++
		}
	}
	if twelfth, ok := ParsePercent(p.TwelfthPct); ok {
		switch {
		case twelfth >= 95:
			score += 4
		case twelfth >= 90:
			score += 3
		case twelfth >= 80:
			score += 2
		default:
			score++
		}
	}
	if tenth, ok := ParsePercent(p.TenthPct); ok {
		switch {
		case tenth >= 95:
			score += 3
		case tenth >= 85:
			score += 2
		default:
			score++
		}
	}
	switch n := len(p.Experience); {
	case n >= 3:
		score += 4
	case n == 2:
		score += 3
	case n == 1:
		score += 2
	default:
		score++
	}

	switch {
	case score >= 12:
		return StrengthExtremelyStrong
	case score >= 9:
		return StrengthStrong
	case score >= 6:
		return StrengthAverage
	default:
		return StrengthWeak
	}
}

// FinalLevel adjusts the candidate's requested level by resume
// strength: strong resumes are pushed up from intermediate, weak
// resumes are pulled down. Beginner requests are never raised.
func FinalLevel(strength Strength, requested assessment.Level) assessment.Level {
	switch strength {
	case StrengthWeak:
		switch requested {
		case assessment.LevelBeginner, assessment.LevelIntermediate:
			return assessment.LevelBeginner
		case assessment.LevelAdvance:
			return assessment.LevelIntermediate
		}
	case StrengthAverage:
		return requested
	case StrengthStrong, StrengthExtremelyStrong:
		switch requested {
		case assessment.LevelBeginner:
			return assessment.LevelBeginner
		case assessment.LevelIntermediate, assessment.LevelAdvance:
			return assessment.LevelAdvance
		}
	}
	return requested
}
