package pattern

import (
	"math"
	"time"

	"github.com/AKASH-tech234/paceline/internal/calibration"
)

const hoursPerDay = 24.0

// ageDays returns the age of ts relative to now, in fractional days.
// Future timestamps count as age zero.
func ageDays(ts, now time.Time) float64 {
	age := now.Sub(ts).Hours() / hoursPerDay
	if age < 0 {
		return 0
	}
	return age
}

// decayWeight computes one evidence item's contribution at the given age:
// exponential half-life decay with a capped recency boost.
func decayWeight(age float64, cfg Config) float64 {
	w := math.Exp2(-age / cfg.HalfLifeDays)
	if age <= cfg.RecencyBoostDays {
		w *= cfg.RecencyBoostFactor
		if w > 1.0 {
			w = 1.0
		}
	}
	return w
}

// recencyStep maps an evidence age onto the recency score contribution.
func recencyStep(age float64) float64 {
	switch {
	case age <= 3:
		return 1.0
	case age <= 7:
		return 0.5
	case age <= 14:
		return 0.25
	default:
		return 0
	}
}

// recomputeMetrics rebuilds the record's derived metrics against now.
func recomputeMetrics(rec *Record, now time.Time, cfg Config) {
	m := Metrics{EvidenceCount: len(rec.Evidence)}

	var confWeightSum, recencySum float64
	for _, ev := range rec.Evidence {
		age := ageDays(ev.Timestamp, now)
		w := decayWeight(age, cfg)
		m.WeightedEvidence += w
		confWeightSum += ev.Confidence * w
		recencySum += recencyStep(age)
	}

	if m.WeightedEvidence > 0 {
		m.MeanConfidence = confWeightSum / m.WeightedEvidence
	}
	if len(rec.Evidence) > 0 {
		m.RecencyScore = recencySum / float64(len(rec.Evidence))
	}

	rec.Metrics = m
}

// recentHighCount counts high-tier evidence inside the recency window.
func recentHighCount(rec *Record, now time.Time, cfg Config) int {
	count := 0
	for _, ev := range rec.Evidence {
		if ev.Tier == calibration.TierHigh && ageDays(ev.Timestamp, now) <= cfg.RecentWindowDays {
			count++
		}
	}
	return count
}
