package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureVector_RowOrder(t *testing.T) {
	f := FeatureVector{
		Cement:           1,
		Slag:             2,
		FlyAsh:           3,
		Water:            4,
		Superplasticizer: 5,
		CoarseAgg:        6,
		FineAgg:          7,
		Age:              8,
	}

	row := f.Row()
	require.Len(t, row, NumFeatures)
	require.Len(t, FeatureNames, NumFeatures)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, row)
}

func TestFeatureVector_Matrix(t *testing.T) {
	m := FeatureVector{Cement: 540, Age: 28}.Matrix()
	rows, cols := m.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, NumFeatures, cols)
	assert.Equal(t, 540.0, m.At(0, 0))
	assert.Equal(t, 28.0, m.At(0, 7))
}

func TestEvalDataset_Validate(t *testing.T) {
	var empty *EvalDataset
	assert.Error(t, empty.Validate())
	assert.Equal(t, 0, empty.Len())
}
