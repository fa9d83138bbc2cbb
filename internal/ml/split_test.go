package ml

import (
	"reflect"
	"testing"
)

func TestSplitIndices_SizesAndDisjoint(t *testing.T) {
	train, test := SplitIndices(100, 0.2, 42)
	if len(train) != 80 || len(test) != 20 {
		t.Fatalf("got %d/%d, want 80/20", len(train), len(test))
	}

	seen := map[int]bool{}
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = true
	}
	if len(seen) != 100 {
		t.Errorf("got %d distinct indices, want 100", len(seen))
	}
}

func TestSplitIndices_SeedReproducible(t *testing.T) {
	train1, test1 := SplitIndices(50, 0.2, 7)
	train2, test2 := SplitIndices(50, 0.2, 7)
	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Errorf("same seed produced different splits")
	}

	train3, _ := SplitIndices(50, 0.2, 8)
	if reflect.DeepEqual(train1, train3) {
		t.Errorf("different seeds produced identical splits")
	}
}

func TestSplitIndices_TinyDataset(t *testing.T) {
	train, test := SplitIndices(3, 0.2, 1)
	if len(test) != 1 {
		t.Errorf("got test size %d, want at least 1", len(test))
	}
	if len(train) != 2 {
		t.Errorf("got train size %d, want 2", len(train))
	}
}
