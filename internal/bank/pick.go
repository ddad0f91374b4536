package bank

import (
	"math/rand/v2"

	"github.com/abhisek/intervet/internal/assessment"
)

// PickByLevel selects count questions of the given level from the
// pool, in random order. When the level has too few questions, the
// shortfall is filled from the rest of the pool without repeats; the
// result may still be short when the whole pool is smaller than count.
func PickByLevel(rng *rand.Rand, pool []assessment.Question, level assessment.Level, count int) []assessment.Question {
	if count <= 0 {
		return nil
	}

	var matched, rest []assessment.Question
	for _, q := range pool {
		if q.Level == level {
			matched = append(matched, q)
		} else {
			rest = append(rest, q)
		}
	}

	shuffle(rng, matched)
	if len(matched) >= count {
		return matched[:count]
	}

	shuffle(rng, rest)
	need := count - len(matched)
	if need > len(rest) {
		need = len(rest)
	}
	return append(matched, rest[:need]...)
}

func shuffle(rng *rand.Rand, qs []assessment.Question) {
	rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
