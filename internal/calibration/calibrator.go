package calibration

import (
	"fmt"
	"os"
)

// Calibrator maps raw model confidence onto calibrated probabilities and
// tiers. It is a pure function of the loaded model and config: no state is
// mutated after construction, so it is safe for unlimited concurrent callers.
type Calibrator struct {
	model *Model
	cfg   Config
}

// NewCalibrator creates a calibrator. A nil model is valid and degrades to
// identity pass-through with tier thresholds still applied; this is logged
// once so degraded operation is visible.
func NewCalibrator(model *Model, cfg Config) *Calibrator {
	if model == nil {
		fmt.Fprintln(os.Stderr, "warning: no calibration model loaded, using raw confidence pass-through")
	}
	return &Calibrator{model: model, cfg: cfg}
}

// Calibrate maps a raw confidence to a calibrated confidence and tier.
// Out-of-range inputs are clamped to [0,1]. The configured cap is enforced
// unconditionally, even against a model that outputs higher values.
func (c *Calibrator) Calibrate(raw float64) (float64, Tier) {
	raw = clamp(raw, 0, 1)

	calibrated := raw
	if c.model != nil {
		calibrated = clamp(c.model.Apply(raw), 0, 1)
	}
	if calibrated > c.cfg.MaxConfidence {
		calibrated = c.cfg.MaxConfidence
	}

	return calibrated, c.TierFor(calibrated)
}

// TierFor buckets a calibrated confidence into a tier.
func (c *Calibrator) TierFor(calibrated float64) Tier {
	switch {
	case calibrated >= c.cfg.HighThreshold:
		return TierHigh
	case calibrated >= c.cfg.MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// Model returns the loaded model, or nil when running in pass-through mode.
func (c *Calibrator) Model() *Model {
	return c.model
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
