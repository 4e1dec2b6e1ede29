package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

const (
	validModelJSON = `{
		"type": "knn",
		"k": 1,
		"weights": "uniform",
		"points": [[0, 0, 0, 0, 0, 0, 0, 0], [1, 1, 1, 1, 1, 1, 1, 1]],
		"targets": [10.0, 50.0]
	}`
	validScalerJSON = `{
		"mean":  [100, 50, 20, 160, 5, 1000, 700, 30],
		"scale": [50, 25, 10, 20, 2, 100, 80, 20]
	}`
	validFeaturesJSON = `[
		[0, 0, 0, 0, 0, 0, 0, 0],
		[1, 1, 1, 1, 1, 1, 1, 1]
	]`
	validTargetsJSON = `[12.5, 47.5]`
)

// writeArtifacts lays out a full artifact directory, then applies
// overrides (empty value removes the file).
func writeArtifacts(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"knn_model.json": validModelJSON,
		"scaler.json":    validScalerJSON,
		"x_test.json":    validFeaturesJSON,
		"y_test.json":    validTargetsJSON,
	}
	for name, content := range overrides {
		if content == "" {
			delete(files, name)
		} else {
			files[name] = content
		}
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func TestStore_LoadsAllArtifacts(t *testing.T) {
	store := NewStore(writeArtifacts(t, nil), zap.NewNop())

	model, err := store.Model()
	require.NoError(t, err)
	preds, err := model.Predict(mat.NewDense(1, 8, []float64{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.9}))
	require.NoError(t, err)
	assert.Equal(t, 50.0, preds[0])

	scaler, err := store.Scaler()
	require.NoError(t, err)
	scaled, err := scaler.Transform(mat.NewDense(1, 8, []float64{150, 75, 30, 180, 7, 1100, 780, 50}))
	require.NoError(t, err)
	for j := 0; j < 8; j++ {
		assert.InDelta(t, 1.0, scaled.At(0, j), 1e-12)
	}

	dataset, err := store.EvalDataset()
	require.NoError(t, err)
	assert.Equal(t, 2, dataset.Len())
	assert.Equal(t, []float64{12.5, 47.5}, dataset.Targets)
}

func TestStore_MissingFiles(t *testing.T) {
	for _, name := range []string{"knn_model.json", "scaler.json", "x_test.json", "y_test.json"} {
		t.Run(name, func(t *testing.T) {
			store := NewStore(writeArtifacts(t, map[string]string{name: ""}), zap.NewNop())
			_, modelErr := store.Model()
			_, scalerErr := store.Scaler()
			_, datasetErr := store.EvalDataset()
			assert.Error(t, firstError(modelErr, scalerErr, datasetErr))
		})
	}
}

func TestStore_CorruptModel(t *testing.T) {
	store := NewStore(writeArtifacts(t, map[string]string{"knn_model.json": `{not json`}), zap.NewNop())
	_, err := store.Model()
	assert.Error(t, err)
}

func TestStore_ModelWithoutType(t *testing.T) {
	store := NewStore(writeArtifacts(t, map[string]string{"knn_model.json": `{"k": 1}`}), zap.NewNop())
	_, err := store.Model()
	assert.ErrorContains(t, err, "missing a type")
}

func TestStore_CorruptScaler(t *testing.T) {
	store := NewStore(writeArtifacts(t, map[string]string{"scaler.json": `{"mean": [0], "scale": [0]}`}), zap.NewNop())
	_, err := store.Scaler()
	assert.Error(t, err)
}

func TestStore_RaggedEvalRow(t *testing.T) {
	store := NewStore(writeArtifacts(t, map[string]string{
		"x_test.json": `[[1, 2, 3]]`,
	}), zap.NewNop())
	_, err := store.EvalDataset()
	assert.Error(t, err)
}

func TestStore_TargetCountMismatch(t *testing.T) {
	store := NewStore(writeArtifacts(t, map[string]string{
		"y_test.json": `[1.0]`,
	}), zap.NewNop())
	_, err := store.EvalDataset()
	assert.Error(t, err)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
