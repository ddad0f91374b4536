package bank

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/intervet/internal/assessment"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func leveledPool(beginner, intermediate, advance int) []assessment.Question {
	var pool []assessment.Question
	add := func(n int, level assessment.Level) {
		for i := 0; i < n; i++ {
			pool = append(pool, assessment.Question{
				Text:  string(level) + " question",
				Level: level,
			})
		}
	}
	add(beginner, assessment.LevelBeginner)
	add(intermediate, assessment.LevelIntermediate)
	add(advance, assessment.LevelAdvance)
	return pool
}

func TestPickByLevelExactLevel(t *testing.T) {
	pool := leveledPool(20, 20, 20)
	picked := PickByLevel(testRNG(), pool, assessment.LevelIntermediate, 10)

	if len(picked) != 10 {
		t.Fatalf("len = %d, want 10", len(picked))
	}
	for i, q := range picked {
		if q.Level != assessment.LevelIntermediate {
			t.Errorf("picked[%d].Level = %q, want intermediate", i, q.Level)
		}
	}
}

func TestPickByLevelRefillsFromOtherLevels(t *testing.T) {
	pool := leveledPool(20, 3, 20)
	picked := PickByLevel(testRNG(), pool, assessment.LevelIntermediate, 10)

	if len(picked) != 10 {
		t.Fatalf("len = %d, want 10", len(picked))
	}
	intermediate := 0
	for _, q := range picked {
		if q.Level == assessment.LevelIntermediate {
			intermediate++
		}
	}
	if intermediate != 3 {
		t.Errorf("intermediate picks = %d, want all 3 available", intermediate)
	}
}

func TestPickByLevelPoolSmallerThanCount(t *testing.T) {
	pool := leveledPool(2, 1, 0)
	picked := PickByLevel(testRNG(), pool, assessment.LevelBeginner, 10)

	if len(picked) != 3 {
		t.Fatalf("len = %d, want 3 (whole pool)", len(picked))
	}
}

func TestPickByLevelZeroCount(t *testing.T) {
	pool := leveledPool(5, 0, 0)
	if picked := PickByLevel(testRNG(), pool, assessment.LevelBeginner, 0); picked != nil {
		t.Errorf("picked = %v, want nil", picked)
	}
}
