package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReportEvent(ctx context.Context, data ReportEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReportEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetAccuracyPct(data.AccuracyPct).
		SetConsistency(data.Consistency).
		SetNarrative(data.Narrative).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save report event: %w", err)
	}
	return nil
}
