package ml

import (
	"encoding/json"
	"fmt"

	"github.com/crestlabs/crest/pkg/adapters/ml/knn"
	"github.com/crestlabs/crest/pkg/ports"
)

// Known model artifact types.
const (
	ModelTypeKNN = "knn"
)

// NewModel creates a model from a serialized artifact based on its type.
func NewModel(modelType string, params json.RawMessage) (ports.Model, error) {
	switch modelType {
	case ModelTypeKNN:
		var p knn.Params
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("failed to decode knn parameters: %w", err)
		}
		return knn.New(p)
	default:
		return nil, fmt.Errorf("unsupported model type: %s", modelType)
	}
}
