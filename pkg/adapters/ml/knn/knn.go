// Package knn implements k-nearest-neighbor regression over a fixed set
// of training points.
package knn

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Weighting schemes for aggregating neighbor targets.
const (
	WeightsUniform  = "uniform"
	WeightsDistance = "distance"
)

// Params is the serialized form of a fitted regressor.
type Params struct {
	K       int         `json:"k"`
	Weights string      `json:"weights"`
	Points  [][]float64 `json:"points"`
	Targets []float64   `json:"targets"`
}

// Regressor predicts by averaging the targets of the k nearest training
// points under Euclidean distance. Immutable after construction.
type Regressor struct {
	k       int
	weights string
	points  [][]float64
	targets []float64
	dims    int
}

// New builds a regressor from fitted parameters.
func New(p Params) (*Regressor, error) {
	if p.K < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", p.K)
	}
	if p.Weights == "" {
		p.Weights = WeightsUniform
	}
	if p.Weights != WeightsUniform && p.Weights != WeightsDistance {
		return nil, fmt.Errorf("unsupported weighting: %s", p.Weights)
	}
	if len(p.Points) == 0 {
		return nil, fmt.Errorf("training points are empty")
	}
	if len(p.Points) != len(p.Targets) {
		return nil, fmt.Errorf("have %d points but %d targets", len(p.Points), len(p.Targets))
	}
	if p.K > len(p.Points) {
		return nil, fmt.Errorf("k=%d exceeds %d training points", p.K, len(p.Points))
	}
	dims := len(p.Points[0])
	if dims == 0 {
		return nil, fmt.Errorf("training points have no features")
	}
	for i, pt := range p.Points {
		if len(pt) != dims {
			return nil, fmt.Errorf("point %d has %d features, expected %d", i, len(pt), dims)
		}
	}
	return &Regressor{
		k:       p.K,
		weights: p.Weights,
		points:  p.Points,
		targets: p.Targets,
		dims:    dims,
	}, nil
}

// Predict returns one predicted value per input row.
func (r *Regressor) Predict(X mat.Matrix) ([]float64, error) {
	rows, cols := X.Dims()
	if cols != r.dims {
		return nil, fmt.Errorf("input has %d features, model expects %d", cols, r.dims)
	}

	out := make([]float64, rows)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row[j] = X.At(i, j)
		}
		out[i] = r.predictRow(row)
	}
	return out, nil
}

type neighbor struct {
	dist   float64
	target float64
}

func (r *Regressor) predictRow(x []float64) float64 {
	neighbors := make([]neighbor, len(r.points))
	for i, pt := range r.points {
		neighbors[i] = neighbor{
			dist:   floats.Distance(x, pt, 2),
			target: r.targets[i],
		}
	}
	sort.Slice(neighbors, func(a, b int) bool {
		return neighbors[a].dist < neighbors[b].dist
	})
	nearest := neighbors[:r.k]

	if r.weights == WeightsUniform {
		sum := 0.0
		for _, n := range nearest {
			sum += n.target
		}
		return sum / float64(r.k)
	}

	// Distance weighting. An exact match makes the 1/d weights degenerate,
	// so zero-distance neighbors take over when present.
	exactSum, exactCount := 0.0, 0
	for _, n := range nearest {
		if n.dist == 0 {
			exactSum += n.target
			exactCount++
		}
	}
	if exactCount > 0 {
		return exactSum / float64(exactCount)
	}

	weightedSum, weightTotal := 0.0, 0.0
	for _, n := range nearest {
		w := 1 / n.dist
		weightedSum += w * n.target
		weightTotal += w
	}
	return weightedSum / weightTotal
}

// K returns the neighbor count the regressor was fitted with.
func (r *Regressor) K() int {
	return r.k
}
