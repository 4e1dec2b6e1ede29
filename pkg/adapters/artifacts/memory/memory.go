package memory

import (
	"fmt"

	"github.com/crestlabs/crest/pkg/domain"
	"github.com/crestlabs/crest/pkg/ports"
)

// InMemoryArtifactStore implements ArtifactStore over pre-built objects
// This is for testing purposes only
type InMemoryArtifactStore struct {
	model   ports.Model
	scaler  ports.Scaler
	dataset *domain.EvalDataset
}

// NewInMemoryArtifactStore creates an artifact store around existing objects
func NewInMemoryArtifactStore(model ports.Model, scaler ports.Scaler, dataset *domain.EvalDataset) *InMemoryArtifactStore {
	return &InMemoryArtifactStore{
		model:   model,
		scaler:  scaler,
		dataset: dataset,
	}
}

// Model returns the wrapped model (ports.ArtifactStore interface)
func (s *InMemoryArtifactStore) Model() (ports.Model, error) {
	if s.model == nil {
		return nil, fmt.Errorf("no model artifact configured")
	}
	return s.model, nil
}

// Scaler returns the wrapped scaler (ports.ArtifactStore interface)
func (s *InMemoryArtifactStore) Scaler() (ports.Scaler, error) {
	if s.scaler == nil {
		return nil, fmt.Errorf("no scaler artifact configured")
	}
	return s.scaler, nil
}

// EvalDataset returns the wrapped dataset (ports.ArtifactStore interface)
func (s *InMemoryArtifactStore) EvalDataset() (*domain.EvalDataset, error) {
	if s.dataset == nil {
		return nil, fmt.Errorf("no evaluation dataset configured")
	}
	return s.dataset, nil
}
