package dataset

import "github.com/soumikb/aquasense/internal/water"

// Label is the binary supervised target. Labels are regenerated from the
// current thresholds on every training run, never stored: a rule change
// deliberately relabels history.
type Label int

const (
	Unsafe Label = 0
	Safe   Label = 1
)

// LabelSample derives the ground-truth label for one sample from the
// threshold rule set — the same Evaluate that gates live predictions.
func LabelSample(s Sample, t water.Thresholds) Label {
	if water.Evaluate(s.Measurement, t).Safe {
		return Safe
	}
	return Unsafe
}

// LabelAll labels every preprocessed sample.
func LabelAll(samples []Sample, t water.Thresholds) []Label {
	labels := make([]Label, len(samples))
	for i, s := range samples {
		labels[i] = LabelSample(s, t)
	}
	return labels
}
