package bank

import (
	"regexp"
	"strings"

	"github.com/abhisek/intervet/internal/assessment"
)

// Bank files are plain text. Questions are blocks terminated by an
// "Answer: X" line; difficulty comes from section header lines naming
// the level. Files without level headers are split positionally:
// questions 1-40 beginner, 41-70 intermediate, everything after
// advance.
var (
	answerRe    = regexp.MustCompile(`Answer:\s*([A-Da-d])`)
	numPrefixRe = regexp.MustCompile(`^(Q?\d+\.\s*)`)
	inlineOptRe = regexp.MustCompile(`(?s)A\)\s*(.*?)\s+B\)\s*(.*?)\s+C\)\s*(.*?)\s+D\)\s*(.*)`)
)

// ParseBank parses one bank file's content into leveled questions.
// Unparseable blocks are skipped, not errors; a malformed bank simply
// yields fewer questions.
func ParseBank(content string) []assessment.Question {
	var out []assessment.Question
	var cur []string
	level := assessment.LevelBeginner
	sawHeader := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Section headers switch the difficulty for following blocks.
		if lvl, ok := headerLevel(line); ok {
			level = lvl
			sawHeader = true
			continue
		}

		cur = append(cur, line)
		if strings.HasPrefix(strings.TrimSpace(line), "Answer:") {
			if q, ok := parseBlock(cur, level); ok {
				out = append(out, q)
			}
			cur = nil
		}
	}
	if len(cur) > 0 {
		if q, ok := parseBlock(cur, level); ok {
			out = append(out, q)
		}
	}

	if !sawHeader {
		assignPositionalLevels(out)
	}
	return out
}

// headerLevel reports whether a line is a difficulty section header.
// Headers are short lines naming a level ("== Beginner ==",
// "INTERMEDIATE SECTION"); a line that also carries question content
// is not a header.
func headerLevel(line string) (assessment.Level, bool) {
	low := strings.ToLower(strings.TrimSpace(line))
	if len(low) > 40 {
		return "", false
	}
	switch {
	case strings.Contains(low, "beginner"):
		return assessment.LevelBeginner, true
	case strings.Contains(low, "intermediate"):
		return assessment.LevelIntermediate, true
	case strings.Contains(low, "advanced"), strings.Contains(low, "advance"):
		return assessment.LevelAdvance, true
	}
	return "", false
}

// parseBlock parses one question block ending in its Answer line.
func parseBlock(lines []string, level assessment.Level) (assessment.Question, bool) {
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return assessment.Question{}, false
	}

	m := answerRe.FindStringSubmatch(text)
	if m == nil {
		return assessment.Question{}, false
	}
	ansKey := strings.ToUpper(m[1])

	head := strings.TrimSpace(answerRe.Split(text, 2)[0])
	head = numPrefixRe.ReplaceAllString(head, "")

	question := head
	var options []string
	if om := inlineOptRe.FindStringSubmatchIndex(head); om != nil {
		question = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(head[:om[0]]), ":"))
		sm := inlineOptRe.FindStringSubmatch(head)
		for _, opt := range sm[1:] {
			options = append(options, strings.TrimSpace(opt))
		}
	} else {
		// Multi-line options: "A. ..." / "A) ..." on separate lines.
		headLines := strings.SplitN(head, "\n", 2)
		question = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(headLines[0]), ":"))
		for _, key := range []string{"A", "B", "C", "D"} {
			re := regexp.MustCompile(`(?m)^` + key + `[\).\]]\s*(.*)$`)
			if mm := re.FindStringSubmatch(head); mm != nil {
				options = append(options, strings.TrimSpace(mm[1]))
			}
		}
	}

	correct := ""
	if idx := int(ansKey[0] - 'A'); idx >= 0 && idx < len(options) {
		correct = options[idx]
	}

	return assessment.Question{
		Text:          question,
		Options:       options,
		CorrectAnswer: correct,
		Level:         level,
	}, true
}

// assignPositionalLevels sets difficulty by bank position for files
// without section headers.
func assignPositionalLevels(questions []assessment.Question) {
	for i := range questions {
		switch {
		case i < 40:
			questions[i].Level = assessment.LevelBeginner
		case i < 70:
			questions[i].Level = assessment.LevelIntermediate
		default:
			questions[i].Level = assessment.LevelAdvance
		}
	}
}
