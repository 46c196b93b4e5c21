package calibration

import (
	"errors"
	"testing"
)

const validArtifact = `{
	"version": "2026-08-01",
	"sample_count": 1240,
	"pre_ece": 0.14,
	"post_ece": 0.04,
	"raw": [0.0, 0.5, 1.0],
	"calibrated": [0.05, 0.45, 0.88],
	"max_confidence": 0.92,
	"high_threshold": 0.82
}`

func TestParseArtifact_Valid(t *testing.T) {
	model, cfg, err := ParseArtifact([]byte(validArtifact))
	if err != nil {
		t.Fatalf("ParseArtifact: %v", err)
	}
	if model.Version != "2026-08-01" {
		t.Errorf("version = %q, want 2026-08-01", model.Version)
	}
	if model.SampleCount != 1240 {
		t.Errorf("sample count = %d, want 1240", model.SampleCount)
	}
	if !almostEqual(cfg.MaxConfidence, 0.92) {
		t.Errorf("MaxConfidence = %v, want 0.92", cfg.MaxConfidence)
	}
	if !almostEqual(cfg.HighThreshold, 0.82) {
		t.Errorf("HighThreshold = %v, want 0.82", cfg.HighThreshold)
	}
	// Unset threshold keeps the default.
	if !almostEqual(cfg.MediumThreshold, 0.65) {
		t.Errorf("MediumThreshold = %v, want default 0.65", cfg.MediumThreshold)
	}
}

func TestParseArtifact_InvalidJSON(t *testing.T) {
	_, _, err := ParseArtifact([]byte("{not json"))
	var artErr *ErrInvalidArtifact
	if !errors.As(err, &artErr) {
		t.Fatalf("error = %v, want ErrInvalidArtifact", err)
	}
}

func TestParseArtifact_MissingRequiredField(t *testing.T) {
	_, _, err := ParseArtifact([]byte(`{"version": "v1", "sample_count": 10, "raw": [0, 1]}`))
	var artErr *ErrInvalidArtifact
	if !errors.As(err, &artErr) {
		t.Fatalf("error = %v, want ErrInvalidArtifact for missing calibrated", err)
	}
}

func TestParseArtifact_MismatchedKnots(t *testing.T) {
	_, _, err := ParseArtifact([]byte(`{
		"version": "v1", "sample_count": 10,
		"raw": [0.0, 0.5, 1.0], "calibrated": [0.1, 0.9]
	}`))
	var artErr *ErrInvalidArtifact
	if !errors.As(err, &artErr) {
		t.Fatalf("error = %v, want ErrInvalidArtifact for mismatched knots", err)
	}
}

func TestParseArtifact_NonMonotonic(t *testing.T) {
	_, _, err := ParseArtifact([]byte(`{
		"version": "v1", "sample_count": 10,
		"raw": [0.0, 0.5, 1.0], "calibrated": [0.5, 0.3, 0.9]
	}`))
	var artErr *ErrInvalidArtifact
	if !errors.As(err, &artErr) {
		t.Fatalf("error = %v, want ErrInvalidArtifact for non-monotonic curve", err)
	}
}

func TestParseArtifact_NonAscendingRaw(t *testing.T) {
	_, _, err := ParseArtifact([]byte(`{
		"version": "v1", "sample_count": 10,
		"raw": [0.0, 0.5, 0.5], "calibrated": [0.1, 0.3, 0.9]
	}`))
	var artErr *ErrInvalidArtifact
	if !errors.As(err, &artErr) {
		t.Fatalf("error = %v, want ErrInvalidArtifact for non-ascending raw knots", err)
	}
}
