package ml

import (
	"fmt"
	"strings"
)

// ClassMetrics are the held-out evaluation numbers for one class.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is the classification report produced after training: per-class
// precision/recall/F1 on the held-out split plus overall accuracy.
type Report struct {
	Unsafe   ClassMetrics
	Safe     ClassMetrics
	Accuracy float64
	TestSize int
}

// BuildReport computes the report from held-out truth and predictions.
func BuildReport(yTrue, yPred []int) (*Report, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("build report: %d truths vs %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, fmt.Errorf("build report: empty held-out split")
	}

	r := &Report{TestSize: len(yTrue)}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	r.Accuracy = float64(correct) / float64(len(yTrue))

	r.Unsafe = classMetrics(yTrue, yPred, 0)
	r.Safe = classMetrics(yTrue, yPred, 1)
	return r, nil
}

func classMetrics(yTrue, yPred []int, class int) ClassMetrics {
	var tp, fp, fn, support int
	for i := range yTrue {
		if yTrue[i] == class {
			support++
		}
		switch {
		case yPred[i] == class && yTrue[i] == class:
			tp++
		case yPred[i] == class && yTrue[i] != class:
			fp++
		case yPred[i] != class && yTrue[i] == class:
			fn++
		}
	}

	m := ClassMetrics{Support: support}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// Format renders the report as an aligned table for the CLI.
func (r *Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s  %9s  %9s  %9s  %8s\n", "", "precision", "recall", "f1-score", "support")
	b.WriteString(strings.Repeat("─", 52) + "\n")
	writeClassRow(&b, "unsafe", r.Unsafe)
	writeClassRow(&b, "safe", r.Safe)
	b.WriteString(strings.Repeat("─", 52) + "\n")
	fmt.Fprintf(&b, "%-10s  %9s  %9s  %9.2f  %8d\n", "accuracy", "", "", r.Accuracy, r.TestSize)
	return b.String()
}

func writeClassRow(b *strings.Builder, name string, m ClassMetrics) {
	fmt.Fprintf(b, "%-10s  %9.2f  %9.2f  %9.2f  %8d\n", name, m.Precision, m.Recall, m.F1, m.Support)
}
