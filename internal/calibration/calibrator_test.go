package calibration

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalibrate_NoModel_PassThrough(t *testing.T) {
	c := NewCalibrator(nil, DefaultConfig())

	got, tier := c.Calibrate(0.72)
	if !almostEqual(got, 0.72) {
		t.Errorf("calibrated = %v, want 0.72", got)
	}
	if tier != TierMedium {
		t.Errorf("tier = %s, want medium", tier)
	}
}

func TestCalibrate_ClampsOutOfRangeInput(t *testing.T) {
	c := NewCalibrator(nil, DefaultConfig())

	tests := []struct {
		raw  float64
		want float64
	}{
		{-0.5, 0.0},
		{1.5, 0.90}, // clamped to 1.0, then capped
	}

	for _, tt := range tests {
		got, _ := c.Calibrate(tt.raw)
		if !almostEqual(got, tt.want) {
			t.Errorf("Calibrate(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// pathologicalModel maps everything to 1.0.
func pathologicalModel() *Model {
	return &Model{
		Version:    "test",
		Raw:        []float64{0.0, 1.0},
		Calibrated: []float64{1.0, 1.0},
	}
}

func TestCalibrate_CapEnforcedAgainstModel(t *testing.T) {
	c := NewCalibrator(pathologicalModel(), DefaultConfig())

	for _, raw := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		got, _ := c.Calibrate(raw)
		if got > 0.90 {
			t.Errorf("Calibrate(%v) = %v, exceeds cap 0.90", raw, got)
		}
	}
}

func TestCalibrate_ModelInterpolation(t *testing.T) {
	model := &Model{
		Version:    "test",
		Raw:        []float64{0.0, 0.5, 1.0},
		Calibrated: []float64{0.1, 0.4, 0.8},
	}
	c := NewCalibrator(model, DefaultConfig())

	tests := []struct {
		raw  float64
		want float64
	}{
		{0.0, 0.1},
		{0.25, 0.25}, // midway between 0.1 and 0.4
		{0.5, 0.4},
		{0.75, 0.6}, // midway between 0.4 and 0.8
		{1.0, 0.8},
	}

	for _, tt := range tests {
		got, _ := c.Calibrate(tt.raw)
		if !almostEqual(got, tt.want) {
			t.Errorf("Calibrate(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestTierFor_Defaults(t *testing.T) {
	c := NewCalibrator(nil, DefaultConfig())

	tests := []struct {
		conf float64
		want Tier
	}{
		{0.90, TierHigh},
		{0.80, TierHigh},
		{0.79, TierMedium},
		{0.65, TierMedium},
		{0.64, TierLow},
		{0.0, TierLow},
	}

	for _, tt := range tests {
		if got := c.TierFor(tt.conf); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.conf, got, tt.want)
		}
	}
}

func TestModel_Apply_ClampsToKnotRange(t *testing.T) {
	m := &Model{
		Raw:        []float64{0.2, 0.8},
		Calibrated: []float64{0.3, 0.7},
	}

	if got := m.Apply(0.0); !almostEqual(got, 0.3) {
		t.Errorf("Apply(0.0) = %v, want 0.3", got)
	}
	if got := m.Apply(1.0); !almostEqual(got, 0.7) {
		t.Errorf("Apply(1.0) = %v, want 0.7", got)
	}
}

func TestModel_Apply_Monotonic(t *testing.T) {
	m := &Model{
		Raw:        []float64{0.0, 0.3, 0.6, 1.0},
		Calibrated: []float64{0.05, 0.2, 0.55, 0.9},
	}

	prev := -1.0
	for raw := 0.0; raw <= 1.0; raw += 0.01 {
		got := m.Apply(raw)
		if got < prev {
			t.Fatalf("Apply(%v) = %v, below previous %v", raw, got, prev)
		}
		prev = got
	}
}
