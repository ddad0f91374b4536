package assessment

import "testing"

// block builds a correctness pattern: n questions, the first correct
// of them answered right and the rest wrong.
func block(n, correct int) []bool {
	out := make([]bool, n)
	for i := 0; i < correct; i++ {
		out[i] = true
	}
	return out
}

func repeat(pattern []bool, times int) []bool {
	var out []bool
	for i := 0; i < times; i++ {
		out = append(out, pattern...)
	}
	return out
}

func concat(blocks ...[]bool) []bool {
	var out []bool
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

// scoredReport builds a single-domain test of len(pattern) questions
// and answers each per the pattern: correct answer "A" when true,
// wrong answer "B" when false.
func scoredReport(t *testing.T, pattern []bool) *Report {
	t.Helper()
	set := makeSet(len(pattern), 0, 0)
	flat := Flatten(set)
	sheet := NewAnswerSheet()
	for i, correct := range pattern {
		if correct {
			sheet.Record(flat[i].ID, "A")
		} else {
			sheet.Record(flat[i].ID, "B")
		}
	}
	return BuildReport(flat, sheet, nil)
}

func TestReportThreeOfFive(t *testing.T) {
	report := scoredReport(t, []bool{true, true, true, false, false})

	if report.Totals.Overall != 3 {
		t.Errorf("overall = %d, want 3", report.Totals.Overall)
	}
	if report.Totals.TotalQuestions != 5 {
		t.Errorf("totalQuestions = %d, want 5", report.Totals.TotalQuestions)
	}
	if report.Behavior.Accuracy != 60 {
		t.Errorf("accuracy = %d, want 60", report.Behavior.Accuracy)
	}
}

func TestReportExactMatchScoring(t *testing.T) {
	questions := []FlatQuestion{{
		ID:     "q-1",
		Domain: DomainAptitude,
		Question: Question{
			Text:          "Capital of France?",
			Options:       []string{"Paris", "London", "Berlin", "Madrid"},
			CorrectAnswer: "Paris",
		},
	}}

	tests := []struct {
		name     string
		selected string
		want     bool
	}{
		{"exact", "Paris", true},
		{"trailing space", "Paris ", false},
		{"lowercase", "paris", false},
		{"unanswered", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := NewAnswerSheet()
			if tt.selected != "" {
				sheet.Record("q-1", tt.selected)
			}
			report := BuildReport(questions, sheet, nil)
			if report.Answers[0].IsCorrect != tt.want {
				t.Errorf("isCorrect = %v, want %v", report.Answers[0].IsCorrect, tt.want)
			}
		})
	}
}

func TestReportEmptyInput(t *testing.T) {
	report := BuildReport(nil, NewAnswerSheet(), nil)

	if report.Behavior.Accuracy != 0 {
		t.Errorf("accuracy = %d, want 0", report.Behavior.Accuracy)
	}
	if report.Behavior.Consistency != HighlyConsistent {
		t.Errorf("consistency = %q, want %q", report.Behavior.Consistency, HighlyConsistent)
	}
	if report.Totals.TotalQuestions != 0 {
		t.Errorf("totalQuestions = %d, want 0", report.Totals.TotalQuestions)
	}
}

func TestReportNoAnswers(t *testing.T) {
	// Timer expiry with nothing answered: full question set, empty sheet.
	flat := Flatten(makeSet(10, 10, 10))
	report := BuildReport(flat, NewAnswerSheet(), nil)

	if report.Behavior.Accuracy != 0 {
		t.Errorf("accuracy = %d, want 0", report.Behavior.Accuracy)
	}
	if report.Behavior.Consistency != HighlyConsistent {
		t.Errorf("consistency = %q, want %q", report.Behavior.Consistency, HighlyConsistent)
	}
	for i, a := range report.Answers {
		if a.IsCorrect {
			t.Errorf("answers[%d] scored correct with no selection", i)
		}
		if a.Selected != "" {
			t.Errorf("answers[%d].Selected = %q, want empty", i, a.Selected)
		}
	}
}

func TestReportPerDomainTotals(t *testing.T) {
	set := makeSet(2, 3, 4)
	flat := Flatten(set)
	sheet := NewAnswerSheet()
	// 1 aptitude, 2 reasoning, 3 coding correct.
	sheet.Record("q-1", "A")
	sheet.Record("q-3", "A")
	sheet.Record("q-4", "A")
	sheet.Record("q-6", "A")
	sheet.Record("q-7", "A")
	sheet.Record("q-8", "A")

	report := BuildReport(flat, sheet, nil)
	if report.Totals.Aptitude != 1 {
		t.Errorf("aptitude = %d, want 1", report.Totals.Aptitude)
	}
	if report.Totals.Reasoning != 2 {
		t.Errorf("reasoning = %d, want 2", report.Totals.Reasoning)
	}
	if report.Totals.Coding != 3 {
		t.Errorf("coding = %d, want 3", report.Totals.Coding)
	}
	if report.Totals.Overall != 6 {
		t.Errorf("overall = %d, want 6", report.Totals.Overall)
	}
}

func TestAccuracyBounds(t *testing.T) {
	for correct := 0; correct <= 30; correct++ {
		report := scoredReport(t, block(30, correct))
		acc := report.Behavior.Accuracy
		if acc < 0 || acc > 100 {
			t.Errorf("correct=%d: accuracy %d out of [0,100]", correct, acc)
		}
	}
}

func TestConsistencyLabels(t *testing.T) {
	tests := []struct {
		name    string
		pattern []bool
		want    string
	}{
		{"all correct", repeat(block(5, 5), 6), HighlyConsistent},
		{"all wrong", repeat(block(5, 0), 6), HighlyConsistent},
		{"uniform windows", repeat(block(5, 3), 6), HighlyConsistent},
		{"alternating extremes", repeat(concat(block(5, 5), block(5, 0)), 3), Inconsistent},
		// Window means 0, 0.2, 0.4, 0.6: variance is exactly 0.05,
		// and the comparison is strict, so this is moderate.
		{"boundary variance", concat(block(5, 0), block(5, 1), block(5, 2), block(5, 3)), ModeratelyConsistent},
		{"single partial window", block(3, 1), HighlyConsistent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := scoredReport(t, tt.pattern)
			if report.Behavior.Consistency != tt.want {
				t.Errorf("consistency = %q, want %q", report.Behavior.Consistency, tt.want)
			}
		})
	}
}

func TestReportCarriesProfile(t *testing.T) {
	profile := &ParsedProfile{Name: "Asha Rao", Email: "asha@example.com"}
	report := BuildReport(nil, NewAnswerSheet(), profile)
	if report.Profile != profile {
		t.Error("expected profile carried by reference")
	}
}
