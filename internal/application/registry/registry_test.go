package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/crestlabs/crest/pkg/domain"
)

type stubModel struct{}

func (stubModel) Predict(X mat.Matrix) ([]float64, error) { return nil, nil }

type stubScaler struct{}

func (stubScaler) Transform(X mat.Matrix) (*mat.Dense, error) { return nil, nil }

func validEntry(name string) Entry {
	return Entry{
		Name:        name,
		Model:       stubModel{},
		Scaler:      stubScaler{},
		Snapshot:    domain.MetricsSnapshot{MAE: 1, RMSE: 2, R2: 0.9, Correlation: 0.95},
		Description: "a test model",
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	require.NoError(t, r.Register(validEntry("KNN")))

	entry, ok := r.Lookup("KNN")
	require.True(t, ok)
	assert.Equal(t, "KNN", entry.Name)
	assert.Equal(t, 0.9, entry.Snapshot.R2)

	_, ok = r.Lookup("XGBoost")
	assert.False(t, ok)
}

func TestRegister_RejectsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"empty name", func(e *Entry) { e.Name = "" }},
		{"nil model", func(e *Entry) { e.Model = nil }},
		{"nil scaler", func(e *Entry) { e.Scaler = nil }},
		{"empty description", func(e *Entry) { e.Description = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(zap.NewNop())
			e := validEntry("KNN")
			tt.mutate(&e)
			assert.Error(t, r.Register(e))
		})
	}
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	require.NoError(t, r.Register(validEntry("KNN")))
	assert.Error(t, r.Register(validEntry("KNN")))
}

func TestNamesAndLen(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	require.NoError(t, r.Register(validEntry("linear")))
	require.NoError(t, r.Register(validEntry("KNN")))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"KNN", "linear"}, r.Names())
}
