package calibration

// candidateThresholds are the cut points evaluated by RecommendThresholds.
var candidateThresholds = []float64{0.50, 0.55, 0.60, 0.65, 0.70, 0.75, 0.80, 0.85, 0.90}

// ThresholdCandidate reports accuracy and coverage for one cut point.
type ThresholdCandidate struct {
	Threshold float64
	// Accuracy is the fraction of predictions at or above Threshold that
	// were correct.
	Accuracy float64
	// Coverage is the fraction of all predictions at or above Threshold.
	Coverage float64
	Count    int
}

// ThresholdSet is the result of an offline threshold recommendation run.
type ThresholdSet struct {
	// InsufficientData is set when the eval set is too small to trust;
	// the remaining fields are zero in that case.
	InsufficientData bool
	SampleCount      int
	// High and Medium are the recommended tier thresholds. A zero value
	// with Found false means no candidate met the accuracy floor.
	High        float64
	HighFound   bool
	Medium      float64
	MediumFound bool
	Candidates  []ThresholdCandidate
}

// RecommendThresholds evaluates each candidate cut point against a labeled
// eval set and returns the highest threshold per tier that meets the
// configured accuracy floor. Deterministic for fixed inputs; an undersized
// eval set yields an explicit insufficient-data result rather than an error.
func RecommendThresholds(labels []bool, confidences []float64, cfg Config) ThresholdSet {
	n := len(labels)
	if n != len(confidences) || n < cfg.MinSamples {
		return ThresholdSet{InsufficientData: true, SampleCount: n}
	}

	set := ThresholdSet{
		SampleCount: n,
		Candidates:  make([]ThresholdCandidate, 0, len(candidateThresholds)),
	}

	for _, th := range candidateThresholds {
		count, correct := 0, 0
		for i, conf := range confidences {
			if conf >= th {
				count++
				if labels[i] {
					correct++
				}
			}
		}

		cand := ThresholdCandidate{Threshold: th, Count: count}
		if count > 0 {
			cand.Accuracy = float64(correct) / float64(count)
			cand.Coverage = float64(count) / float64(n)
		}
		set.Candidates = append(set.Candidates, cand)

		// Candidates ascend, so the last one to qualify is the highest.
		if count > 0 && cand.Accuracy >= cfg.MinHighAccuracy {
			set.High = th
			set.HighFound = true
		}
		if count > 0 && cand.Accuracy >= cfg.MinMediumAccuracy {
			set.Medium = th
			set.MediumFound = true
		}
	}

	return set
}
