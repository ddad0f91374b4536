package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervet/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetQuestionID(data.QuestionID).
		SetDomain(data.Domain).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCandidateAnswer(data.CandidateAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// AttemptAccuracy returns the fraction of correct answers recorded for
// an attempt, 0 when none exist.
func (r *eventRepo) AttemptAccuracy(ctx context.Context, attemptID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.AttemptID(attemptID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query attempt accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
