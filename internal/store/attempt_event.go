package store

import (
	"context"
	"fmt"

	"github.com/abhisek/intervet/ent"
	"github.com/abhisek/intervet/ent/attemptevent"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetAction(data.Action).
		SetCandidateID(data.CandidateID).
		SetCandidateName(data.CandidateName).
		SetAptitudeLevel(data.AptitudeLevel).
		SetReasoningLevel(data.ReasoningLevel).
		SetCodingLevel(data.CodingLevel).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetAccuracyPct(data.AccuracyPct).
		SetConsistency(data.Consistency).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListAttempts(ctx context.Context, limit int) ([]AttemptSummary, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.Action("end")).
		Order(ent.Desc(attemptevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	summaries := make([]AttemptSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, AttemptSummary{
			AttemptID:       e.AttemptID,
			CandidateName:   e.CandidateName,
			Finished:        e.Timestamp,
			QuestionsServed: e.QuestionsServed,
			CorrectAnswers:  e.CorrectAnswers,
			AccuracyPct:     e.AccuracyPct,
			Consistency:     e.Consistency,
			DurationSecs:    e.DurationSecs,
		})
	}
	return summaries, nil
}
