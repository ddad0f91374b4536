package resume

import (
	"regexp"
	"strings"

	"github.com/abhisek/intervet/internal/assessment"
)

// Lightweight regex extraction used when the LLM is unavailable or
// fails. Always succeeds with a (possibly sparse) profile.
var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[\s-]?)?\d{10}`)
	cgpaRe  = regexp.MustCompile(`\d(?:\.\d+)?\s*/\s*10(?:\.0)?`)

	// Marks stated next to their school-stage label. Indian resumes
	// label 10th as SSLC/SSC and 12th as PU/PUC/HSC.
	tenthRe   = regexp.MustCompile(`(?i)(?:10th|SSLC|SSC)[:\s]+(\d{1,2}(?:\.\d+)?%)`)
	twelfthRe = regexp.MustCompile(`(?i)(?:12th|2\s*PU|2PU|PUC|HSC)[:\s]+(\d{1,2}(?:\.\d+)?%)`)
	percentRe = regexp.MustCompile(`\d{1,2}(?:\.\d+)?%`)
)

// FallbackParse extracts what it can from resume text with regexes.
func FallbackParse(text string) *assessment.ParsedProfile {
	p := &assessment.ParsedProfile{Experience: []string{}}

	p.Email = emailRe.FindString(text)
	p.Phone = phoneRe.FindString(text)

	if m := tenthRe.FindStringSubmatch(text); m != nil {
		p.TenthPct = m[1]
	}
	if m := twelfthRe.FindStringSubmatch(text); m != nil {
		p.TwelfthPct = m[1]
	}
	// No labeled marks: take bare percentages in order of appearance.
	if p.TenthPct == "" || p.TwelfthPct == "" {
		percents := percentRe.FindAllString(text, 2)
		if p.TenthPct == "" && len(percents) > 0 {
			p.TenthPct = percents[0]
		}
		if p.TwelfthPct == "" && len(percents) > 1 {
			p.TwelfthPct = percents[1]
		}
	}

	if cgpa := cgpaRe.FindString(text); cgpa != "" {
		p.DegreePctCGPA = strings.ReplaceAll(cgpa, " ", "")
	}

	// Crude name guess: first line that looks like a full name.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(strings.Fields(line)) >= 2 && len(line) <= 80 {
			p.Name = line
			break
		}
	}

	return p
}
