package calibration

import "sort"

// Model is a fitted monotonic mapping from raw to calibrated confidence.
// It is produced offline by a batch fitting job and is immutable once
// loaded; Apply is safe for concurrent readers.
type Model struct {
	// Version identifies the fitting run that produced this model.
	Version string
	// Raw holds the knot positions on the raw-confidence axis, ascending.
	Raw []float64
	// Calibrated holds the mapped value at each knot, non-decreasing.
	Calibrated []float64
	// SampleCount is the number of labeled examples the fit used.
	SampleCount int
	// PreECE and PostECE are the calibration error before and after
	// fitting, as reported by the fitting job.
	PreECE  float64
	PostECE float64
}

// Apply maps a raw confidence through the fitted curve using piecewise
// linear interpolation between knots. Inputs outside the knot range clamp
// to the boundary values.
func (m *Model) Apply(raw float64) float64 {
	n := len(m.Raw)
	if n == 0 {
		return raw
	}
	if raw <= m.Raw[0] {
		return m.Calibrated[0]
	}
	if raw >= m.Raw[n-1] {
		return m.Calibrated[n-1]
	}

	// First knot strictly above raw.
	i := sort.SearchFloat64s(m.Raw, raw)
	if m.Raw[i] == raw {
		return m.Calibrated[i]
	}

	lo, hi := i-1, i
	span := m.Raw[hi] - m.Raw[lo]
	if span == 0 {
		return m.Calibrated[lo]
	}
	frac := (raw - m.Raw[lo]) / span
	return m.Calibrated[lo] + frac*(m.Calibrated[hi]-m.Calibrated[lo])
}
