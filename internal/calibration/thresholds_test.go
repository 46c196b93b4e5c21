package calibration

import "testing"

// evalSet builds a labeled set where predictions at or above highAcc
// confidence are mostly correct and low-confidence ones are coin flips.
func evalSet() ([]bool, []float64) {
	var labels []bool
	var confs []float64

	// 20 predictions at 0.85: 18 correct (90% accuracy).
	for i := 0; i < 20; i++ {
		confs = append(confs, 0.85)
		labels = append(labels, i < 18)
	}
	// 20 predictions at 0.70: 15 correct (75% accuracy).
	for i := 0; i < 20; i++ {
		confs = append(confs, 0.70)
		labels = append(labels, i < 15)
	}
	// 20 predictions at 0.55: 10 correct (50% accuracy).
	for i := 0; i < 20; i++ {
		confs = append(confs, 0.55)
		labels = append(labels, i < 10)
	}
	return labels, confs
}

func TestRecommendThresholds_InsufficientData(t *testing.T) {
	labels := []bool{true, false, true}
	confs := []float64{0.9, 0.8, 0.7}

	set := RecommendThresholds(labels, confs, DefaultConfig())
	if !set.InsufficientData {
		t.Error("expected insufficient data for 3 samples")
	}
	if set.SampleCount != 3 {
		t.Errorf("SampleCount = %d, want 3", set.SampleCount)
	}
}

func TestRecommendThresholds_MismatchedLengths(t *testing.T) {
	set := RecommendThresholds(make([]bool, 50), make([]float64, 49), DefaultConfig())
	if !set.InsufficientData {
		t.Error("expected insufficient data for mismatched inputs")
	}
}

func TestRecommendThresholds_PicksHighestQualifying(t *testing.T) {
	labels, confs := evalSet()
	set := RecommendThresholds(labels, confs, DefaultConfig())

	if set.InsufficientData {
		t.Fatal("unexpected insufficient data")
	}

	// Only the 0.85 slice reaches 90% accuracy; thresholds of 0.75-0.85
	// all select exactly that slice, so 0.85 is the highest qualifier.
	// 0.90 selects nothing and cannot qualify.
	if !set.HighFound || !almostEqual(set.High, 0.85) {
		t.Errorf("High = %v (found=%v), want 0.85", set.High, set.HighFound)
	}

	// The medium floor (0.70) is also met at 0.85, which is the highest
	// candidate with any qualifying population.
	if !set.MediumFound || !almostEqual(set.Medium, 0.85) {
		t.Errorf("Medium = %v (found=%v), want 0.85", set.Medium, set.MediumFound)
	}
}

func TestRecommendThresholds_NoQualifier(t *testing.T) {
	// Everything is a coin flip; neither floor is reachable.
	labels := make([]bool, 40)
	confs := make([]float64, 40)
	for i := range labels {
		labels[i] = i%2 == 0
		confs[i] = 0.95
	}

	set := RecommendThresholds(labels, confs, DefaultConfig())
	if set.HighFound {
		t.Errorf("HighFound = true with 50%% accuracy, want false")
	}
	if set.MediumFound {
		t.Errorf("MediumFound = true with 50%% accuracy, want false")
	}
}

func TestRecommendThresholds_Deterministic(t *testing.T) {
	labels, confs := evalSet()
	a := RecommendThresholds(labels, confs, DefaultConfig())
	b := RecommendThresholds(labels, confs, DefaultConfig())

	if a.High != b.High || a.Medium != b.Medium || len(a.Candidates) != len(b.Candidates) {
		t.Error("RecommendThresholds is not deterministic for fixed inputs")
	}
}

func TestRecommendThresholds_CoverageAndAccuracy(t *testing.T) {
	labels, confs := evalSet()
	set := RecommendThresholds(labels, confs, DefaultConfig())

	for _, cand := range set.Candidates {
		if cand.Threshold == 0.50 {
			if !almostEqual(cand.Coverage, 1.0) {
				t.Errorf("coverage at 0.50 = %v, want 1.0", cand.Coverage)
			}
			// 43 of 60 correct overall.
			if !almostEqual(cand.Accuracy, 43.0/60.0) {
				t.Errorf("accuracy at 0.50 = %v, want %v", cand.Accuracy, 43.0/60.0)
			}
		}
		if cand.Threshold == 0.80 {
			if cand.Count != 20 {
				t.Errorf("count at 0.80 = %d, want 20", cand.Count)
			}
			if !almostEqual(cand.Accuracy, 0.90) {
				t.Errorf("accuracy at 0.80 = %v, want 0.90", cand.Accuracy)
			}
		}
	}
}
