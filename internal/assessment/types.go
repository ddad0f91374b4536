// Package assessment holds the core data model and pure logic of the
// skills test: domains, difficulty levels, parsed resume profiles,
// question sets, the answer sheet, and report scoring.
package assessment

// Domain is one of the three assessment categories.
type Domain string

const (
	DomainAptitude  Domain = "aptitude"
	DomainReasoning Domain = "reasoning"
	DomainCoding    Domain = "coding"
)

// Domains lists all domains in display order.
var Domains = []Domain{DomainAptitude, DomainReasoning, DomainCoding}

// Level is a difficulty level. The backend spells the top level
// "advance", not "advanced".
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvance      Level = "advance"
)

// Levels lists all levels in ascending difficulty.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvance}

// LevelChoice is the candidate's per-domain difficulty selection.
type LevelChoice struct {
	Aptitude  Level `json:"aptitude_level"`
	Reasoning Level `json:"reasoning_level"`
	Coding    Level `json:"coding_level"`
}

// For returns the chosen level for a domain.
func (c LevelChoice) For(d Domain) Level {
	switch d {
	case DomainAptitude:
		return c.Aptitude
	case DomainReasoning:
		return c.Reasoning
	case DomainCoding:
		return c.Coding
	}
	return ""
}

// ParsedProfile is the structured result of resume parsing. All
// fields are free-text strings as extracted; the profile is created
// once and read-only afterwards.
type ParsedProfile struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Experience    []string `json:"experience"`
	TenthPct      string   `json:"tenth_percentage"`
	TwelfthPct    string   `json:"twelfth_percentage"`
	DegreePctCGPA string   `json:"degree_percentage_or_cgpa"`
}

// Question is one multiple-choice question. Owned by its
// QuestionGroup; never mutated client-side.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Level         Level    `json:"level,omitempty"`
}

// QuestionGroup is the served question list for one domain, tagged
// with the level the backend actually selected (which may differ from
// the candidate's request after resume-strength adjustment).
type QuestionGroup struct {
	FinalLevel Level      `json:"final_level"`
	Questions  []Question `json:"questions"`
}

// QuestionSet is the full served test: one group per domain.
type QuestionSet struct {
	Aptitude  QuestionGroup `json:"aptitude"`
	Reasoning QuestionGroup `json:"reasoning"`
	Coding    QuestionGroup `json:"coding"`
}

// Group returns the group for a domain.
func (s *QuestionSet) Group(d Domain) QuestionGroup {
	switch d {
	case DomainAptitude:
		return s.Aptitude
	case DomainReasoning:
		return s.Reasoning
	case DomainCoding:
		return s.Coding
	}
	return QuestionGroup{}
}

// Total returns the total question count across all domains.
func (s *QuestionSet) Total() int {
	return len(s.Aptitude.Questions) + len(s.Reasoning.Questions) + len(s.Coding.Questions)
}
