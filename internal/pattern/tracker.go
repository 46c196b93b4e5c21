package pattern

import (
	"fmt"
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
)

// AddEvidence appends one qualifying evidence item to the record, recomputes
// derived metrics against the evidence timestamp, and advances the state
// machine at most one level. Returns the transition if the state changed.
//
// Low-tier evidence is rejected unconditionally: the record is returned
// byte-for-byte unchanged. This is the tracker's hard safety gate and holds
// independently of every other rule.
//
// The caller owns the record; at most one goroutine may mutate a given
// record at a time.
func AddEvidence(rec *Record, ev Evidence, cfg Config) *StateTransition {
	if !ev.Tier.Valid() {
		panic(fmt.Sprintf("pattern: invalid confidence tier %q", ev.Tier))
	}
	if !rec.State.Valid() {
		panic(fmt.Sprintf("pattern: invalid record state %q", rec.State))
	}

	if ev.Tier == calibration.TierLow {
		return nil
	}

	rec.Evidence = append(rec.Evidence, ev)
	if cfg.MaxEvidence > 0 && len(rec.Evidence) > cfg.MaxEvidence {
		rec.Evidence = rec.Evidence[len(rec.Evidence)-cfg.MaxEvidence:]
	}
	rec.LastOccurrence = ev.Timestamp

	recomputeMetrics(rec, ev.Timestamp, cfg)

	next := candidateState(rec, ev.Tier, ev.Timestamp, cfg)
	if next == rec.State {
		return nil
	}
	return transition(rec, next, "evidence", ev.Timestamp)
}

// candidateState evaluates the promotion rules after a qualifying evidence
// addition. Promotion moves one level per evidence item; STABLE is sticky
// under further evidence.
func candidateState(rec *Record, trigger calibration.Tier, now time.Time, cfg Config) State {
	weighted := rec.Metrics.WeightedEvidence

	switch rec.State {
	case StateNone:
		if weighted >= cfg.SuspectThreshold {
			return StateSuspected
		}
		return StateNone

	case StateSuspected:
		// Medium-tier evidence can raise suspicion but never confirm,
		// no matter how much of it accumulates.
		if trigger != calibration.TierHigh {
			return StateSuspected
		}
		if weighted >= cfg.ConfirmThreshold && recentHighCount(rec, now, cfg) >= cfg.MinHighForConfirm {
			return StateConfirmed
		}
		return StateSuspected

	case StateConfirmed:
		if trigger != calibration.TierHigh {
			return StateConfirmed
		}
		if weighted >= cfg.StableThreshold && recentHighCount(rec, now, cfg) >= cfg.MinHighForStable {
			return StateStable
		}
		return StateConfirmed

	case StateStable:
		return StateStable

	default:
		panic(fmt.Sprintf("pattern: invalid record state %q", rec.State))
	}
}

// ApplyDecay recomputes the record's metrics against now and demotes the
// state while the weighted evidence sits below the demotion threshold for
// the current level, then applies the inactivity rule. Idempotent for a
// fixed now.
func ApplyDecay(rec *Record, now time.Time, cfg Config) []StateTransition {
	if !rec.State.Valid() {
		panic(fmt.Sprintf("pattern: invalid record state %q", rec.State))
	}

	recomputeMetrics(rec, now, cfg)

	var transitions []StateTransition

	for {
		next, demoted := demoteOnce(rec.State, rec.Metrics.WeightedEvidence, cfg)
		if !demoted {
			break
		}
		transitions = append(transitions, *transition(rec, next, "decay", now))
	}

	// Inactivity rule: a confirmed or stable pattern with no occurrence
	// inside the recency window drops back to suspected.
	if rec.State == StateConfirmed || rec.State == StateStable {
		if !rec.LastOccurrence.IsZero() && ageDays(rec.LastOccurrence, now) > cfg.RecentWindowDays {
			transitions = append(transitions, *transition(rec, StateSuspected, "inactivity", now))
		}
	}

	return transitions
}

// demoteOnce returns the next state down if weighted evidence has fallen
// below the current level's demotion threshold.
func demoteOnce(s State, weighted float64, cfg Config) (State, bool) {
	switch s {
	case StateStable:
		if weighted < cfg.StableDemoteBelow {
			return StateConfirmed, true
		}
	case StateConfirmed:
		if weighted < cfg.ConfirmedDemoteBelow {
			return StateSuspected, true
		}
	case StateSuspected:
		if weighted < cfg.SuspectedDemoteBelow {
			return StateNone, true
		}
	case StateNone:
		// Floor.
	default:
		panic(fmt.Sprintf("pattern: invalid record state %q", s))
	}
	return s, false
}

// transition applies a state change and returns its description.
func transition(rec *Record, to State, trigger string, at time.Time) *StateTransition {
	t := &StateTransition{
		SubjectID:   rec.SubjectID,
		PatternName: rec.PatternName,
		From:        rec.State,
		To:          to,
		Trigger:     trigger,
		At:          at,
	}
	rec.State = to
	rec.StateEnteredAt = at
	rec.TransitionCount++
	if to == StateConfirmed && rec.ConfirmedAt == nil {
		confirmedAt := at
		rec.ConfirmedAt = &confirmedAt
	}
	return t
}
