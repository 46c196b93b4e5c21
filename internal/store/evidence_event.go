package store

import (
	"context"
	"fmt"
	"time"

	"github.com/AKASH-tech234/paceline/ent"
	"github.com/AKASH-tech234/paceline/ent/evidenceevent"
)

func (r *eventRepo) AppendEvidenceEvent(ctx context.Context, data EvidenceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EvidenceEvent.Create().
		SetSequence(seqNum).
		SetEvidenceID(data.EvidenceID).
		SetSubjectID(data.SubjectID).
		SetPatternName(data.PatternName).
		SetCategory(data.Category).
		SetPatternID(data.PatternID).
		SetArtifactID(data.ArtifactID).
		SetRawConfidence(data.RawConfidence).
		SetConfidence(data.Confidence).
		SetTier(data.Tier).
		SetStateBefore(data.StateBefore).
		SetStateAfter(data.StateAfter).
		SetWeightedEvidence(data.WeightedEvidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evidence event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryEvidence(ctx context.Context, subjectID string, opts QueryOpts) ([]EvidenceEvent, error) {
	q := r.client.EvidenceEvent.Query()
	if subjectID != "" {
		q = q.Where(evidenceevent.SubjectID(subjectID))
	}

	if opts.After > 0 {
		q = q.Where(evidenceevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(evidenceevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(evidenceevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(evidenceevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.Order(ent.Asc(evidenceevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evidence events: %w", err)
	}

	events := make([]EvidenceEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, EvidenceEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			EvidenceEventData: EvidenceEventData{
				EvidenceID:       row.EvidenceID,
				SubjectID:        row.SubjectID,
				PatternName:      row.PatternName,
				Category:         row.Category,
				PatternID:        row.PatternID,
				ArtifactID:       row.ArtifactID,
				RawConfidence:    row.RawConfidence,
				Confidence:       row.Confidence,
				Tier:             row.Tier,
				StateBefore:      row.StateBefore,
				StateAfter:       row.StateAfter,
				WeightedEvidence: row.WeightedEvidence,
			},
		})
	}
	return events, nil
}

func (r *eventRepo) LatestEvidenceTime(ctx context.Context, subjectID, patternName string) (time.Time, error) {
	row, err := r.client.EvidenceEvent.Query().
		Where(
			evidenceevent.SubjectID(subjectID),
			evidenceevent.PatternName(patternName),
		).
		Order(ent.Desc(evidenceevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest evidence: %w", err)
	}
	return row.Timestamp, nil
}
