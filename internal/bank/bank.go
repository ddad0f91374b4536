// Package bank loads and serves the local multiple-choice question
// banks used by the embedded assessment server. Banks are plain-text
// files, one per domain, parsed into leveled questions.
package bank

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/intervet/internal/assessment"
)

// Bank holds the parsed questions for all three domains.
type Bank struct {
	Aptitude  []assessment.Question
	Reasoning []assessment.Question
	Coding    []assessment.Question
}

// Questions returns the pool for a domain.
func (b *Bank) Questions(d assessment.Domain) []assessment.Question {
	switch d {
	case assessment.DomainAptitude:
		return b.Aptitude
	case assessment.DomainReasoning:
		return b.Reasoning
	case assessment.DomainCoding:
		return b.Coding
	}
	return nil
}

// LoadDir reads the per-domain bank files from dir. The coding bank
// falls back to general.txt when coding.txt is absent. Missing files
// yield empty pools; a directory with no parseable questions at all is
// an error.
func LoadDir(dir string) (*Bank, error) {
	b := &Bank{}

	var err error
	if b.Aptitude, err = loadFile(filepath.Join(dir, "aptitude.txt")); err != nil {
		return nil, err
	}
	if b.Reasoning, err = loadFile(filepath.Join(dir, "reasoning.txt")); err != nil {
		return nil, err
	}
	if b.Coding, err = loadFile(filepath.Join(dir, "coding.txt")); err != nil {
		return nil, err
	}
	if len(b.Coding) == 0 {
		if b.Coding, err = loadFile(filepath.Join(dir, "general.txt")); err != nil {
			return nil, err
		}
	}

	if len(b.Aptitude) == 0 && len(b.Reasoning) == 0 && len(b.Coding) == 0 {
		return nil, fmt.Errorf("no questions found in %s", dir)
	}
	return b, nil
}

func loadFile(path string) ([]assessment.Question, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	return ParseBank(string(content)), nil
}
