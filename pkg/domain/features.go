package domain

import "gonum.org/v1/gonum/mat"

// NumFeatures is the number of mix-design inputs the model expects.
const NumFeatures = 8

// FeatureNames lists the mix-design features in the order the model was
// trained on. Every matrix row handed to a scaler or model follows this
// order.
var FeatureNames = []string{
	"cement",
	"slag",
	"flyash",
	"water",
	"superplasticizer",
	"coarseagg",
	"fineagg",
	"age",
}

// FeatureVector holds the eight mix-design inputs for a single prediction.
type FeatureVector struct {
	Cement           float64
	Slag             float64
	FlyAsh           float64
	Water            float64
	Superplasticizer float64
	CoarseAgg        float64
	FineAgg          float64
	Age              float64
}

// Row returns the features as a slice in training order.
func (f FeatureVector) Row() []float64 {
	return []float64{
		f.Cement,
		f.Slag,
		f.FlyAsh,
		f.Water,
		f.Superplasticizer,
		f.CoarseAgg,
		f.FineAgg,
		f.Age,
	}
}

// Matrix returns the features as a single-row matrix suitable for the
// scaler and model ports.
func (f FeatureVector) Matrix() *mat.Dense {
	return mat.NewDense(1, NumFeatures, f.Row())
}
