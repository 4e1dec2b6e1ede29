// Package ports defines the interfaces between the application layer and
// its adapters. Implementations live under pkg/adapters.
package ports

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/crestlabs/crest/pkg/domain"
)

// Model is a trained regression model. Predict returns one output per
// input row. Implementations are immutable after construction and safe
// for concurrent use.
type Model interface {
	Predict(X mat.Matrix) ([]float64, error)
}

// Scaler applies the same normalization used during model training.
// Implementations are immutable after construction and safe for
// concurrent use.
type Scaler interface {
	Transform(X mat.Matrix) (*mat.Dense, error)
}

// ArtifactStore loads the three serialized artifacts the service consumes.
// Every method either returns a fully usable object or an error; there is
// no partially loaded state.
type ArtifactStore interface {
	Model() (Model, error)
	Scaler() (Scaler, error)
	EvalDataset() (*domain.EvalDataset, error)
}

// MetricsCollector records operational metrics.
type MetricsCollector interface {
	RecordPrediction(model, status string, duration time.Duration)
	RecordUnsupportedModel(route string)
	SetEvalMetrics(model string, snapshot domain.MetricsSnapshot)
}
