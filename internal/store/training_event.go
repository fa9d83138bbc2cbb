package store

import (
	"context"
	"fmt"

	"github.com/soumikb/aquasense/ent"
	"github.com/soumikb/aquasense/ent/trainingevent"
)

func (r *eventRepo) AppendTraining(ctx context.Context, data TrainingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TrainingEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetRowsTotal(data.RowsTotal).
		SetRowsUsed(data.RowsUsed).
		SetSafeCount(data.SafeCount).
		SetUnsafeCount(data.UnsafeCount).
		SetAccuracy(data.Accuracy).
		SetTestSize(data.TestSize).
		SetArtifactPath(data.ArtifactPath).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save training event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestTraining(ctx context.Context) (*TrainingRecord, error) {
	e, err := r.client.TrainingEvent.Query().
		Order(ent.Desc(trainingevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest training: %w", err)
	}

	return &TrainingRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		TrainingEventData: TrainingEventData{
			RunID:        e.RunID,
			RowsTotal:    e.RowsTotal,
			RowsUsed:     e.RowsUsed,
			SafeCount:    e.SafeCount,
			UnsafeCount:  e.UnsafeCount,
			Accuracy:     e.Accuracy,
			TestSize:     e.TestSize,
			ArtifactPath: e.ArtifactPath,
			DurationMs:   e.DurationMs,
		},
	}, nil
}
