// Package scaling implements feature normalization matching the transform
// used during model training.
package scaling

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Params is the serialized form of a fitted standard scaler.
type Params struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// StandardScaler standardizes each column as (x - mean) / scale using the
// per-column statistics captured at training time. Immutable after
// construction.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// New builds a scaler from fitted parameters.
func New(p Params) (*StandardScaler, error) {
	if len(p.Mean) == 0 {
		return nil, fmt.Errorf("mean vector is empty")
	}
	if len(p.Mean) != len(p.Scale) {
		return nil, fmt.Errorf("mean has %d entries but scale has %d", len(p.Mean), len(p.Scale))
	}
	for i, s := range p.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scale entry %d is zero", i)
		}
	}
	return &StandardScaler{mean: p.Mean, scale: p.Scale}, nil
}

// Transform returns a new matrix with every column standardized.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	rows, cols := X.Dims()
	if cols != len(s.mean) {
		return nil, fmt.Errorf("input has %d features, scaler expects %d", cols, len(s.mean))
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (X.At(i, j)-s.mean[j])/s.scale[j])
		}
	}
	return out, nil
}
