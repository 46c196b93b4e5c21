package calibration

// Tier buckets a calibrated confidence score for downstream gating.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// AllTiers returns all tiers in order from highest to lowest.
func AllTiers() []Tier {
	return []Tier{TierHigh, TierMedium, TierLow}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierHigh, TierMedium, TierLow:
		return true
	}
	return false
}

// Config holds calibrator thresholds.
type Config struct {
	// MaxConfidence is the hard cap applied after the model, always.
	MaxConfidence float64
	// HighThreshold is the minimum calibrated confidence for TierHigh.
	HighThreshold float64
	// MediumThreshold is the minimum calibrated confidence for TierMedium.
	MediumThreshold float64
	// MinHighAccuracy is the accuracy a candidate threshold must reach to
	// be recommended for the high tier.
	MinHighAccuracy float64
	// MinMediumAccuracy is the accuracy floor for the medium tier.
	MinMediumAccuracy float64
	// BinCount is the number of equal-width bins for ECE/MCE.
	BinCount int
	// MinSamples is the smallest eval set RecommendThresholds accepts.
	MinSamples int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxConfidence:     0.90,
		HighThreshold:     0.80,
		MediumThreshold:   0.65,
		MinHighAccuracy:   0.85,
		MinMediumAccuracy: 0.70,
		BinCount:          10,
		MinSamples:        20,
	}
}
