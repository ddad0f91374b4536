package bank

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/intervet/internal/assessment"
)

const leveledBank = `=== Beginner ===
1. What is 2 + 2?
A) 3
B) 4
C) 5
D) 6
Answer: B

2. Capital of France:
A) London
B) Berlin
C) Paris
D) Madrid
Answer: C

=== Intermediate ===
3. A train travels 60 km in 40 minutes. Speed in km/h?
A) 80
B) 90
C) 100
D) 120
Answer: B

=== Advanced ===
4. Solve for x: 2^x = 1024
A) 8
B) 9
C) 10
D) 11
Answer: c
`

func TestParseBankLeveled(t *testing.T) {
	qs := ParseBank(leveledBank)
	if len(qs) != 4 {
		t.Fatalf("len = %d, want 4", len(qs))
	}

	if qs[0].Text != "What is 2 + 2?" {
		t.Errorf("text = %q", qs[0].Text)
	}
	if qs[0].CorrectAnswer != "4" {
		t.Errorf("correct = %q, want 4", qs[0].CorrectAnswer)
	}
	if qs[0].Level != assessment.LevelBeginner {
		t.Errorf("level = %q, want beginner", qs[0].Level)
	}

	// Trailing colon stripped from the question line.
	if qs[1].Text != "Capital of France" {
		t.Errorf("text = %q", qs[1].Text)
	}
	if qs[1].CorrectAnswer != "Paris" {
		t.Errorf("correct = %q, want Paris", qs[1].CorrectAnswer)
	}

	if qs[2].Level != assessment.LevelIntermediate {
		t.Errorf("level = %q, want intermediate", qs[2].Level)
	}

	// Lowercase answer key accepted.
	if qs[3].Level != assessment.LevelAdvance {
		t.Errorf("level = %q, want advance", qs[3].Level)
	}
	if qs[3].CorrectAnswer != "10" {
		t.Errorf("correct = %q, want 10", qs[3].CorrectAnswer)
	}
}

func TestParseBankInlineOptions(t *testing.T) {
	qs := ParseBank(`Q7. Largest planet? A) Earth B) Jupiter C) Mars D) Venus
Answer: B
`)
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	if qs[0].Text != "Largest planet?" {
		t.Errorf("text = %q", qs[0].Text)
	}
	if len(qs[0].Options) != 4 {
		t.Fatalf("options = %v", qs[0].Options)
	}
	if qs[0].CorrectAnswer != "Jupiter" {
		t.Errorf("correct = %q, want Jupiter", qs[0].CorrectAnswer)
	}
}

func TestParseBankPositionalLevels(t *testing.T) {
	// No section headers: difficulty assigned by position.
	var b strings.Builder
	for i := 1; i <= 80; i++ {
		fmt.Fprintf(&b, "%d. Question number %d?\nA) one\nB) two\nC) three\nD) four\nAnswer: A\n\n", i, i)
	}

	qs := ParseBank(b.String())
	if len(qs) != 80 {
		t.Fatalf("len = %d, want 80", len(qs))
	}
	if qs[0].Level != assessment.LevelBeginner || qs[39].Level != assessment.LevelBeginner {
		t.Errorf("questions 1-40 should be beginner, got %q, %q", qs[0].Level, qs[39].Level)
	}
	if qs[40].Level != assessment.LevelIntermediate || qs[69].Level != assessment.LevelIntermediate {
		t.Errorf("questions 41-70 should be intermediate, got %q, %q", qs[40].Level, qs[69].Level)
	}
	if qs[70].Level != assessment.LevelAdvance || qs[79].Level != assessment.LevelAdvance {
		t.Errorf("questions 71+ should be advance, got %q, %q", qs[70].Level, qs[79].Level)
	}
}

func TestParseBankSkipsMalformed(t *testing.T) {
	// A trailing block with no Answer line is dropped, not an error.
	qs := ParseBank(`1. Valid question?
A) yes
B) no
C) maybe
D) never
Answer: A

2. Orphan question with no answer
A) yes
B) no
`)
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	if qs[0].Text != "Valid question?" {
		t.Errorf("text = %q", qs[0].Text)
	}
	if qs[0].CorrectAnswer != "yes" {
		t.Errorf("correct = %q, want yes", qs[0].CorrectAnswer)
	}
}

func TestParseBankAnswerKeyOutOfRange(t *testing.T) {
	// Answer D with only two options: correct answer stays empty.
	qs := ParseBank(`1. Two options only?
A) yes
B) no
Answer: D
`)
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	if qs[0].CorrectAnswer != "" {
		t.Errorf("correct = %q, want empty", qs[0].CorrectAnswer)
	}
}

func TestParseBankEmpty(t *testing.T) {
	if qs := ParseBank(""); len(qs) != 0 {
		t.Errorf("len = %d, want 0", len(qs))
	}
}
