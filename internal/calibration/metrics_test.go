package calibration

import "testing"

func TestComputeCalibrationError_PerfectlyCalibrated(t *testing.T) {
	// 10 predictions at 0.8, 8 correct: bin gap = 0.
	labels := []bool{true, true, true, true, true, true, true, true, false, false}
	confs := make([]float64, 10)
	for i := range confs {
		confs[i] = 0.8
	}

	report := ComputeCalibrationError(labels, confs, 10)
	if !almostEqual(report.ECE, 0) {
		t.Errorf("ECE = %v, want 0", report.ECE)
	}
	if !almostEqual(report.MCE, 0) {
		t.Errorf("MCE = %v, want 0", report.MCE)
	}
}

func TestComputeCalibrationError_Overconfident(t *testing.T) {
	// All predictions at 0.95, half correct: gap = 0.45 in one bin.
	labels := []bool{true, false, true, false}
	confs := []float64{0.95, 0.95, 0.95, 0.95}

	report := ComputeCalibrationError(labels, confs, 10)
	if !almostEqual(report.ECE, 0.45) {
		t.Errorf("ECE = %v, want 0.45", report.ECE)
	}
	if !almostEqual(report.MCE, 0.45) {
		t.Errorf("MCE = %v, want 0.45", report.MCE)
	}
}

func TestComputeCalibrationError_WeightedAcrossBins(t *testing.T) {
	// Bin [0.6,0.7): 3 predictions at 0.65, all correct -> gap 0.35.
	// Bin [0.9,1.0]: 1 prediction at 0.95, correct -> gap 0.05.
	labels := []bool{true, true, true, true}
	confs := []float64{0.65, 0.65, 0.65, 0.95}

	report := ComputeCalibrationError(labels, confs, 10)

	wantECE := 0.75*0.35 + 0.25*0.05
	if !almostEqual(report.ECE, wantECE) {
		t.Errorf("ECE = %v, want %v", report.ECE, wantECE)
	}
	if !almostEqual(report.MCE, 0.35) {
		t.Errorf("MCE = %v, want 0.35", report.MCE)
	}
}

func TestComputeCalibrationError_TopBinIncludesOne(t *testing.T) {
	labels := []bool{true}
	confs := []float64{1.0}

	report := ComputeCalibrationError(labels, confs, 10)
	top := report.Bins[len(report.Bins)-1]
	if top.Count != 1 {
		t.Errorf("top bin count = %d, want 1", top.Count)
	}
}

func TestComputeCalibrationErrorEdges_UnequalWidths(t *testing.T) {
	// Three bins [0,0.5), [0.5,0.9), [0.9,1.0]. The wide middle bin holds
	// two predictions at 0.6 and 0.8, one correct: mean conf 0.7,
	// accuracy 0.5, gap 0.2. The top bin holds one correct 0.95: gap 0.05.
	labels := []bool{true, false, true}
	confs := []float64{0.6, 0.8, 0.95}
	edges := []float64{0, 0.5, 0.9, 1.0}

	report := ComputeCalibrationErrorEdges(labels, confs, edges)

	if len(report.Bins) != 3 {
		t.Fatalf("bins = %d, want 3", len(report.Bins))
	}
	mid := report.Bins[1]
	if mid.Count != 2 || !almostEqual(mid.MeanConfidence, 0.7) {
		t.Errorf("middle bin: count=%d mean=%v, want 2 and 0.7", mid.Count, mid.MeanConfidence)
	}
	wantECE := (2.0/3.0)*0.2 + (1.0/3.0)*0.05
	if !almostEqual(report.ECE, wantECE) {
		t.Errorf("ECE = %v, want %v", report.ECE, wantECE)
	}
	if !almostEqual(report.MCE, 0.2) {
		t.Errorf("MCE = %v, want 0.2", report.MCE)
	}
}

func TestComputeCalibrationErrorEdges_ClampsToRange(t *testing.T) {
	labels := []bool{true, false}
	confs := []float64{-0.3, 1.4}
	edges := []float64{0, 0.5, 1.0}

	report := ComputeCalibrationErrorEdges(labels, confs, edges)
	if report.Bins[0].Count != 1 || report.Bins[1].Count != 1 {
		t.Errorf("bin counts = %d/%d, want 1/1",
			report.Bins[0].Count, report.Bins[1].Count)
	}
}

func TestComputeCalibrationErrorEdges_TooFewEdges(t *testing.T) {
	report := ComputeCalibrationErrorEdges([]bool{true}, []float64{0.5}, []float64{0.5})
	if report.ECE != 0 || report.Bins != nil {
		t.Errorf("single edge: got %+v, want zero report", report)
	}
}

func TestComputeCalibrationError_EmptyOrMismatched(t *testing.T) {
	if r := ComputeCalibrationError(nil, nil, 10); r.ECE != 0 || r.MCE != 0 {
		t.Errorf("empty input: ECE=%v MCE=%v, want zeros", r.ECE, r.MCE)
	}
	if r := ComputeCalibrationError([]bool{true}, []float64{0.5, 0.6}, 10); r.ECE != 0 {
		t.Errorf("mismatched input: ECE=%v, want 0", r.ECE)
	}
}
