package assessment

import "fmt"

// FlatQuestion is one question tagged with its domain and a stable
// display id, derived from the three domain-grouped question sets.
type FlatQuestion struct {
	ID       string
	Domain   Domain
	Question Question
}

// Flatten turns a QuestionSet into one ordered sequence, concatenated
// in fixed domain order (aptitude, reasoning, coding). Ids are compact
// and sequential: q-1..q-N across the whole sequence. A fixed
// per-domain offset scheme (0/10/20) would collide when a domain
// serves fewer than its nominal count, so ids follow actual positions
// instead.
func Flatten(set *QuestionSet) []FlatQuestion {
	if set == nil {
		return nil
	}

	out := make([]FlatQuestion, 0, set.Total())
	for _, d := range Domains {
		group := set.Group(d)
		for _, q := range group.Questions {
			out = append(out, FlatQuestion{
				ID:       fmt.Sprintf("q-%d", len(out)+1),
				Domain:   d,
				Question: q,
			})
		}
	}
	return out
}
