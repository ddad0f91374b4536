package assessment

import (
	"math"
	"math/big"
)

// Consistency labels, from most to least even distribution of correct
// answers across the test.
const (
	HighlyConsistent     = "Highly consistent"
	ModeratelyConsistent = "Moderately consistent"
	Inconsistent         = "Inconsistent"
)

// consistencyWindow is the number of consecutive questions per
// accuracy window.
const consistencyWindow = 5

// Consistency thresholds on the variance of window means. Strict
// less-than on both.
var (
	consistencyHighBound     = big.NewRat(1, 20) // 0.05
	consistencyModerateBound = big.NewRat(3, 25) // 0.12
)

// AnswerResult is one scored question in the report, in served order.
type AnswerResult struct {
	Index      int    `json:"index"`
	Domain     Domain `json:"domain"`
	Difficulty Level  `json:"difficulty,omitempty"`
	Question   string `json:"question"`
	Selected   string `json:"selected,omitempty"`
	Correct    string `json:"correct"`
	IsCorrect  bool   `json:"isCorrect"`
}

// Totals aggregates correct counts overall and per domain.
type Totals struct {
	Overall        int `json:"overall"`
	Aptitude       int `json:"aptitude"`
	Reasoning      int `json:"reasoning"`
	Coding         int `json:"coding"`
	TotalQuestions int `json:"totalQuestions"`
}

// Behavior holds the derived accuracy and consistency signals.
type Behavior struct {
	Accuracy    int    `json:"accuracy"`
	Consistency string `json:"consistency"`
}

// Report is the scored test result, built exactly once per attempt
// from the question sequence and the answer sheet. Immutable
// afterwards.
type Report struct {
	Answers  []AnswerResult `json:"answers"`
	Totals   Totals         `json:"totals"`
	Behavior Behavior       `json:"behavior"`
	Profile  *ParsedProfile `json:"profile,omitempty"`
}

// BuildReport scores the answer sheet against the question sequence.
// Correctness is exact string equality against the correct answer; no
// case or whitespace normalization. Pure: it never fails, producing
// degenerate output (accuracy 0) on empty input.
func BuildReport(questions []FlatQuestion, answers *AnswerSheet, profile *ParsedProfile) *Report {
	report := &Report{
		Answers: make([]AnswerResult, 0, len(questions)),
		Totals:  Totals{TotalQuestions: len(questions)},
		Profile: profile,
	}

	correctness := make([]int, 0, len(questions))
	for i, fq := range questions {
		var selected string
		if answers != nil {
			selected, _ = answers.Get(fq.ID)
		}
		isCorrect := selected != "" && selected == fq.Question.CorrectAnswer

		report.Answers = append(report.Answers, AnswerResult{
			Index:      i + 1,
			Domain:     fq.Domain,
			Difficulty: fq.Question.Level,
			Question:   fq.Question.Text,
			Selected:   selected,
			Correct:    fq.Question.CorrectAnswer,
			IsCorrect:  isCorrect,
		})

		if isCorrect {
			report.Totals.Overall++
			switch fq.Domain {
			case DomainAptitude:
				report.Totals.Aptitude++
			case DomainReasoning:
				report.Totals.Reasoning++
			case DomainCoding:
				report.Totals.Coding++
			}
			correctness = append(correctness, 1)
		} else {
			correctness = append(correctness, 0)
		}
	}

	report.Behavior = Behavior{
		Accuracy:    accuracyPercent(report.Totals.Overall, report.Totals.TotalQuestions),
		Consistency: consistencyLabel(correctness),
	}
	return report
}

// accuracyPercent is round(100 * correct / total), 0 when total is 0.
func accuracyPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// consistencyLabel partitions the correctness sequence into windows of
// five, then labels by the variance of the window means. Fewer than
// five questions yields a single partial window, whose variance is
// zero, so short tests always read as highly consistent.
//
// The thresholds are strict less-than comparisons on exact boundaries
// (a window-mean variance of exactly 0.05 is moderately consistent,
// not highly). Float arithmetic lands 0.049999... for some sequences
// whose true variance is exactly 1/20, which would flip the label, so
// the variance is computed in rational arithmetic.
func consistencyLabel(correctness []int) string {
	var means []*big.Rat
	for start := 0; start < len(correctness); start += consistencyWindow {
		end := min(start+consistencyWindow, len(correctness))
		sum := 0
		for _, c := range correctness[start:end] {
			sum += c
		}
		means = append(means, big.NewRat(int64(sum), int64(end-start)))
	}

	if len(means) == 0 {
		return HighlyConsistent
	}

	mean := new(big.Rat)
	for _, m := range means {
		mean.Add(mean, m)
	}
	mean.Quo(mean, new(big.Rat).SetInt64(int64(len(means))))

	variance := new(big.Rat)
	for _, m := range means {
		d := new(big.Rat).Sub(m, mean)
		variance.Add(variance, d.Mul(d, d))
	}
	variance.Quo(variance, new(big.Rat).SetInt64(int64(len(means))))

	switch {
	case variance.Cmp(consistencyHighBound) < 0:
		return HighlyConsistent
	case variance.Cmp(consistencyModerateBound) < 0:
		return ModeratelyConsistent
	default:
		return Inconsistent
	}
}
