package assessment

import (
	"fmt"
	"testing"
)

func makeQuestions(n int, prefix string) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Text:          fmt.Sprintf("%s question %d", prefix, i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Level:         LevelBeginner,
		}
	}
	return qs
}

func makeSet(apt, rea, cod int) *QuestionSet {
	return &QuestionSet{
		Aptitude:  QuestionGroup{FinalLevel: LevelBeginner, Questions: makeQuestions(apt, "aptitude")},
		Reasoning: QuestionGroup{FinalLevel: LevelBeginner, Questions: makeQuestions(rea, "reasoning")},
		Coding:    QuestionGroup{FinalLevel: LevelBeginner, Questions: makeQuestions(cod, "coding")},
	}
}

func TestFlattenFullSet(t *testing.T) {
	flat := Flatten(makeSet(10, 10, 10))
	if len(flat) != 30 {
		t.Fatalf("len = %d, want 30", len(flat))
	}
	for i, fq := range flat {
		want := fmt.Sprintf("q-%d", i+1)
		if fq.ID != want {
			t.Errorf("flat[%d].ID = %q, want %q", i, fq.ID, want)
		}
		switch {
		case i < 10 && fq.Domain != DomainAptitude:
			t.Errorf("flat[%d].Domain = %q, want aptitude", i, fq.Domain)
		case i >= 10 && i < 20 && fq.Domain != DomainReasoning:
			t.Errorf("flat[%d].Domain = %q, want reasoning", i, fq.Domain)
		case i >= 20 && fq.Domain != DomainCoding:
			t.Errorf("flat[%d].Domain = %q, want coding", i, fq.Domain)
		}
	}
}

func TestFlattenShortDomainCompacts(t *testing.T) {
	// A short aptitude group must not leave a gap: reasoning starts at
	// q-4, and no id is assigned twice.
	flat := Flatten(makeSet(3, 10, 10))
	if len(flat) != 23 {
		t.Fatalf("len = %d, want 23", len(flat))
	}
	seen := make(map[string]bool)
	for i, fq := range flat {
		if seen[fq.ID] {
			t.Errorf("duplicate id %q", fq.ID)
		}
		seen[fq.ID] = true
		want := fmt.Sprintf("q-%d", i+1)
		if fq.ID != want {
			t.Errorf("flat[%d].ID = %q, want %q", i, fq.ID, want)
		}
	}
	if flat[3].Domain != DomainReasoning {
		t.Errorf("flat[3].Domain = %q, want reasoning", flat[3].Domain)
	}
}

func TestFlattenEmptySet(t *testing.T) {
	if flat := Flatten(makeSet(0, 0, 0)); len(flat) != 0 {
		t.Errorf("len = %d, want 0", len(flat))
	}
	if flat := Flatten(nil); flat != nil {
		t.Errorf("Flatten(nil) = %v, want nil", flat)
	}
}
