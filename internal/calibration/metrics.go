package calibration

import "math"

// BinStats describes one confidence bin of an ECE/MCE computation.
type BinStats struct {
	Lower          float64
	Upper          float64
	Count          int
	MeanConfidence float64
	Accuracy       float64
}

// CalibrationReport holds the binned calibration error for one eval set.
type CalibrationReport struct {
	ECE  float64
	MCE  float64
	Bins []BinStats
}

// ComputeCalibrationError bins predictions into binCount equal-width
// confidence bins and reports Expected Calibration Error (count-weighted
// mean of |accuracy - confidence| per bin) and Maximum Calibration Error
// (the largest such gap). labels[i] reports whether prediction i was
// correct. Mismatched or empty inputs produce a zero report.
func ComputeCalibrationError(labels []bool, confidences []float64, binCount int) CalibrationReport {
	if binCount <= 0 {
		binCount = DefaultConfig().BinCount
	}
	edges := make([]float64, binCount+1)
	for i := range edges {
		edges[i] = float64(i) / float64(binCount)
	}
	return ComputeCalibrationErrorEdges(labels, confidences, edges)
}

// ComputeCalibrationErrorEdges is ComputeCalibrationError over caller-supplied
// bin edges. Edges must be strictly ascending; predictions land in the bin
// [edges[b], edges[b+1]), with the top bin closed on the right. Fewer than
// two edges, or mismatched inputs, produce a zero report.
func ComputeCalibrationErrorEdges(labels []bool, confidences []float64, edges []float64) CalibrationReport {
	if len(edges) < 2 {
		return CalibrationReport{}
	}
	if len(labels) == 0 || len(labels) != len(confidences) {
		return CalibrationReport{}
	}

	binCount := len(edges) - 1

	type acc struct {
		count   int
		confSum float64
		correct int
	}
	bins := make([]acc, binCount)

	for i, conf := range confidences {
		conf = clamp(conf, edges[0], edges[binCount])
		b := binCount - 1
		for j := 0; j < binCount-1; j++ {
			if conf < edges[j+1] {
				b = j
				break
			}
		}
		bins[b].count++
		bins[b].confSum += conf
		if labels[i] {
			bins[b].correct++
		}
	}

	report := CalibrationReport{Bins: make([]BinStats, 0, binCount)}
	total := float64(len(labels))

	for b, a := range bins {
		stats := BinStats{
			Lower: edges[b],
			Upper: edges[b+1],
			Count: a.count,
		}
		if a.count > 0 {
			stats.MeanConfidence = a.confSum / float64(a.count)
			stats.Accuracy = float64(a.correct) / float64(a.count)
			gap := math.Abs(stats.Accuracy - stats.MeanConfidence)
			report.ECE += (float64(a.count) / total) * gap
			if gap > report.MCE {
				report.MCE = gap
			}
		}
		report.Bins = append(report.Bins, stats)
	}

	return report
}
