package evaluation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/crestlabs/crest/pkg/domain"
)

// stubModel returns fixed predictions regardless of input.
type stubModel struct {
	preds []float64
	err   error
}

func (m *stubModel) Predict(X mat.Matrix) ([]float64, error) {
	return m.preds, m.err
}

func dataset(targets []float64) *domain.EvalDataset {
	features := mat.NewDense(len(targets), domain.NumFeatures, nil)
	return &domain.EvalDataset{Features: features, Targets: targets}
}

func TestEvaluate_PerfectModel(t *testing.T) {
	targets := []float64{10, 20, 30, 40}
	model := &stubModel{preds: targets}

	snapshot, err := Evaluate(model, dataset(targets))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, snapshot.MAE, 1e-12)
	assert.InDelta(t, 0.0, snapshot.RMSE, 1e-12)
	assert.InDelta(t, 1.0, snapshot.R2, 1e-12)
	assert.InDelta(t, 1.0, snapshot.Correlation, 1e-12)
}

func TestEvaluate_KnownErrors(t *testing.T) {
	// Predictions offset by +/-1 from targets 1..4: MAE=1, RMSE=1,
	// R2 = 1 - 4/5, correlation = 3/5.
	model := &stubModel{preds: []float64{2, 1, 4, 3}}

	snapshot, err := Evaluate(model, dataset([]float64{1, 2, 3, 4}))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, snapshot.MAE, 1e-12)
	assert.InDelta(t, 1.0, snapshot.RMSE, 1e-12)
	assert.InDelta(t, 0.2, snapshot.R2, 1e-12)
	assert.InDelta(t, 0.6, snapshot.Correlation, 1e-12)
}

func TestEvaluate_EmptyDataset(t *testing.T) {
	model := &stubModel{preds: nil}
	_, err := Evaluate(model, &domain.EvalDataset{})
	assert.Error(t, err)
}

func TestEvaluate_PredictionFailure(t *testing.T) {
	model := &stubModel{err: fmt.Errorf("boom")}
	_, err := Evaluate(model, dataset([]float64{1, 2}))
	assert.ErrorContains(t, err, "boom")
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	model := &stubModel{preds: []float64{1}}
	_, err := Evaluate(model, dataset([]float64{1, 2}))
	assert.Error(t, err)
}

func TestEvaluate_ConstantVectorsRejected(t *testing.T) {
	// Constant predictions leave the Pearson correlation undefined;
	// this must fail at startup rather than serve NaN.
	model := &stubModel{preds: []float64{5, 5, 5}}
	_, err := Evaluate(model, dataset([]float64{1, 2, 3}))
	assert.ErrorContains(t, err, "non-finite")
}

func TestEvaluate_NilModel(t *testing.T) {
	_, err := Evaluate(nil, dataset([]float64{1}))
	assert.Error(t, err)
}
