package ml

import (
	"math"
	"strings"
	"testing"
)

func TestBuildReport_HandComputed(t *testing.T) {
	yTrue := []int{1, 1, 1, 0, 0, 0}
	yPred := []int{1, 1, 0, 0, 0, 1}

	r, err := BuildReport(yTrue, yPred)
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	// Safe: tp=2 fp=1 fn=1 → precision 2/3, recall 2/3.
	if math.Abs(r.Safe.Precision-2.0/3.0) > 1e-12 {
		t.Errorf("safe precision = %v, want 2/3", r.Safe.Precision)
	}
	if math.Abs(r.Safe.Recall-2.0/3.0) > 1e-12 {
		t.Errorf("safe recall = %v, want 2/3", r.Safe.Recall)
	}
	if r.Safe.Support != 3 || r.Unsafe.Support != 3 {
		t.Errorf("supports = %d/%d, want 3/3", r.Safe.Support, r.Unsafe.Support)
	}
	if math.Abs(r.Accuracy-4.0/6.0) > 1e-12 {
		t.Errorf("accuracy = %v, want 4/6", r.Accuracy)
	}
}

func TestBuildReport_PerfectPrediction(t *testing.T) {
	y := []int{0, 1, 0, 1}
	r, err := BuildReport(y, y)
	if err != nil {
		t.Fatal(err)
	}
	if r.Accuracy != 1 || r.Safe.F1 != 1 || r.Unsafe.F1 != 1 {
		t.Errorf("perfect prediction scored accuracy=%v safeF1=%v unsafeF1=%v", r.Accuracy, r.Safe.F1, r.Unsafe.F1)
	}
}

func TestBuildReport_AbsentClassIsZeroNotNaN(t *testing.T) {
	r, err := BuildReport([]int{0, 0}, []int{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if r.Safe.Precision != 0 || r.Safe.Recall != 0 || r.Safe.F1 != 0 {
		t.Errorf("absent class metrics = %+v, want zeros", r.Safe)
	}
}

func TestBuildReport_Mismatch(t *testing.T) {
	if _, err := BuildReport([]int{1}, []int{1, 0}); err == nil {
		t.Errorf("length mismatch accepted, want error")
	}
}

func TestReportFormat_ContainsClassRows(t *testing.T) {
	r, _ := BuildReport([]int{0, 1}, []int{0, 1})
	out := r.Format()
	for _, want := range []string{"precision", "unsafe", "safe", "accuracy"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatted report missing %q:\n%s", want, out)
		}
	}
}
