package store

import (
	"context"
	"fmt"

	"github.com/soumikb/aquasense/ent"
	"github.com/soumikb/aquasense/ent/analysisevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetPh(data.PH).
		SetTurbidity(data.Turbidity).
		SetConductivity(data.Conductivity).
		SetDissolvedOxygen(data.DissolvedOxygen).
		SetTds(data.TDS).
		SetRuleSafe(data.RuleSafe).
		SetDecision(data.Decision).
		SetModelRunID(data.ModelRunID)

	if len(data.Violations) > 0 {
		builder = builder.SetViolations(data.Violations)
	}
	if data.Probability != nil {
		builder = builder.SetProbability(*data.Probability)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisRecord, error) {
	q := r.client.AnalysisEvent.Query().
		Order(ent.Desc(analysisevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(analysisevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(analysisevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(analysisevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(analysisevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	records := make([]AnalysisRecord, len(events))
	for i, e := range events {
		records[i] = AnalysisRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnalysisEventData: AnalysisEventData{
				PH:              e.Ph,
				Turbidity:       e.Turbidity,
				Conductivity:    e.Conductivity,
				DissolvedOxygen: e.DissolvedOxygen,
				TDS:             e.Tds,
				RuleSafe:        e.RuleSafe,
				Violations:      e.Violations,
				Probability:     e.Probability,
				Decision:        e.Decision,
				ModelRunID:      e.ModelRunID,
			},
		}
	}
	return records, nil
}
