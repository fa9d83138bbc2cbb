package ml

import "sort"

// treeNode is one node of a regression tree fitted to boosting gradients.
// Leaf values are Newton steps: sum(gradient) / (sum(hessian) + lambda).
type treeNode struct {
	Leaf      bool      `json:"leaf"`
	Value     float64   `json:"value,omitempty"`
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *treeNode `json:"left,omitempty"`
	Right     *treeNode `json:"right,omitempty"`
}

// regLambda is the L2 regularization term on leaf weights.
const regLambda = 1.0

type treeFitter struct {
	x        [][]float64
	grad     []float64
	hess     []float64
	maxDepth int
	minLeaf  int
}

func fitTree(x [][]float64, grad, hess []float64, maxDepth, minLeaf int) *treeNode {
	f := &treeFitter{x: x, grad: grad, hess: hess, maxDepth: maxDepth, minLeaf: minLeaf}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	return f.build(idx, 0)
}

func (f *treeFitter) build(idx []int, depth int) *treeNode {
	if depth >= f.maxDepth || len(idx) < 2*f.minLeaf {
		return f.leaf(idx)
	}

	feature, threshold, gain := f.bestSplit(idx)
	if gain <= 0 {
		return f.leaf(idx)
	}

	var left, right []int
	for _, i := range idx {
		if f.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < f.minLeaf || len(right) < f.minLeaf {
		return f.leaf(idx)
	}

	return &treeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      f.build(left, depth+1),
		Right:     f.build(right, depth+1),
	}
}

func (f *treeFitter) leaf(idx []int) *treeNode {
	var g, h float64
	for _, i := range idx {
		g += f.grad[i]
		h += f.hess[i]
	}
	return &treeNode{Leaf: true, Value: g / (h + regLambda)}
}

// bestSplit scans every feature for the threshold maximizing the gain
//
//	GL²/(HL+λ) + GR²/(HR+λ) − G²/(H+λ)
//
// over the node's gradient/hessian sums. Candidate thresholds are midpoints
// between consecutive distinct sorted values. Ties keep the first candidate,
// which makes fitting deterministic for a fixed dataset.
func (f *treeFitter) bestSplit(idx []int) (feature int, threshold, gain float64) {
	var gTot, hTot float64
	for _, i := range idx {
		gTot += f.grad[i]
		hTot += f.hess[i]
	}
	parentScore := gTot * gTot / (hTot + regLambda)

	feature = -1
	dims := len(f.x[idx[0]])
	sorted := make([]int, len(idx))

	for j := 0; j < dims; j++ {
		copy(sorted, idx)
		sortByFeature(sorted, f.x, j)

		var gl, hl float64
		for k := 0; k < len(sorted)-1; k++ {
			i := sorted[k]
			gl += f.grad[i]
			hl += f.hess[i]

			v, next := f.x[i][j], f.x[sorted[k+1]][j]
			if v == next {
				continue
			}
			if k+1 < f.minLeaf || len(sorted)-(k+1) < f.minLeaf {
				continue
			}

			gr := gTot - gl
			hr := hTot - hl
			g := gl*gl/(hl+regLambda) + gr*gr/(hr+regLambda) - parentScore
			if g > gain {
				gain = g
				feature = j
				threshold = (v + next) / 2
			}
		}
	}

	return feature, threshold, gain
}

func (n *treeNode) predict(x []float64) float64 {
	for !n.Leaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

func sortByFeature(idx []int, x [][]float64, j int) {
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]][j] < x[idx[b]][j] })
}
