package engine

import (
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/pattern"
	"github.com/AKASH-tech234/paceline/internal/store"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
)

const snapshotVersion = 1

// SnapshotData exports the current tracked state for persistence.
func (s *Service) SnapshotData() *store.SnapshotData {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := &store.SnapshotData{
		Version:  snapshotVersion,
		Patterns: make(map[string]*store.PatternRecordData, len(s.records)),
		Policy:   make(map[string]*store.SubjectPolicyData, len(s.subjects)),
	}

	for key, rec := range s.records {
		data.Patterns[key] = recordToData(rec)
	}
	for id, sp := range s.subjects {
		data.Policy[id] = &store.SubjectPolicyData{
			SubjectID:             id,
			Difficulty:            sp.difficulty,
			CyclesSinceLastChange: sp.cyclesSinceLastChange,
			ConsecutiveEligible:   sp.consecutiveEligible,
		}
	}

	return data
}

func (s *Service) loadSnapshot(data *store.SnapshotData) {
	for key, rd := range data.Patterns {
		if rd == nil {
			continue
		}
		s.records[key] = dataToRecord(rd)
	}
	for id, pd := range data.Policy {
		if pd == nil {
			continue
		}
		s.subjects[id] = &subjectPolicy{
			difficulty:            pd.Difficulty,
			cyclesSinceLastChange: pd.CyclesSinceLastChange,
			consecutiveEligible:   pd.ConsecutiveEligible,
		}
	}
}

func recordToData(rec *pattern.Record) *store.PatternRecordData {
	rd := &store.PatternRecordData{
		SubjectID:       rec.SubjectID,
		PatternName:     rec.PatternName,
		State:           string(rec.State),
		TransitionCount: rec.TransitionCount,
	}
	if !rec.StateEnteredAt.IsZero() {
		rd.StateEnteredAt = formatTime(rec.StateEnteredAt)
	}
	if !rec.LastOccurrence.IsZero() {
		rd.LastOccurrence = formatTime(rec.LastOccurrence)
	}
	if rec.ConfirmedAt != nil {
		rd.ConfirmedAt = formatTime(*rec.ConfirmedAt)
	}
	for _, ev := range rec.Evidence {
		rd.Evidence = append(rd.Evidence, store.EvidenceData{
			ID:            ev.ID,
			Timestamp:     ev.Timestamp,
			RawConfidence: ev.RawConfidence,
			Confidence:    ev.Confidence,
			Tier:          string(ev.Tier),
			Category:      string(ev.Category),
			PatternID:     ev.PatternID,
			ArtifactID:    ev.ArtifactID,
		})
	}
	return rd
}

func dataToRecord(rd *store.PatternRecordData) *pattern.Record {
	rec := pattern.NewRecord(rd.SubjectID, rd.PatternName)

	state := pattern.State(rd.State)
	if state.Valid() {
		rec.State = state
	}
	rec.TransitionCount = rd.TransitionCount

	if t, ok := parseTime(rd.StateEnteredAt); ok {
		rec.StateEnteredAt = t
	}
	if t, ok := parseTime(rd.LastOccurrence); ok {
		rec.LastOccurrence = t
	}
	if t, ok := parseTime(rd.ConfirmedAt); ok {
		rec.ConfirmedAt = &t
	}

	for _, ed := range rd.Evidence {
		rec.Evidence = append(rec.Evidence, pattern.Evidence{
			ID:            ed.ID,
			Timestamp:     ed.Timestamp,
			RawConfidence: ed.RawConfidence,
			Confidence:    ed.Confidence,
			Tier:          calibration.Tier(ed.Tier),
			Category:      taxonomy.Category(ed.Category),
			PatternID:     ed.PatternID,
			ArtifactID:    ed.ArtifactID,
		})
	}

	return rec
}

func formatTime(t time.Time) *string {
	s := t.Format(time.RFC3339)
	return &s
}

func parseTime(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
