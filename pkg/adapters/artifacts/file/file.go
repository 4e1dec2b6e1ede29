package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/crestlabs/crest/pkg/adapters/ml"
	"github.com/crestlabs/crest/pkg/adapters/ml/scaling"
	"github.com/crestlabs/crest/pkg/domain"
	"github.com/crestlabs/crest/pkg/ports"
)

// Artifact file names within the configured directory.
const (
	modelFile        = "knn_model.json"
	scalerFile       = "scaler.json"
	evalFeaturesFile = "x_test.json"
	evalTargetsFile  = "y_test.json"
)

// Store implements ArtifactStore over JSON files in a directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates a file-backed artifact store.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Model loads and constructs the model artifact (ports.ArtifactStore interface)
func (s *Store) Model() (ports.Model, error) {
	data, err := s.read(modelFile)
	if err != nil {
		return nil, err
	}

	// The envelope carries the model type; the factory decodes the rest.
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model artifact: %w", err)
	}
	if envelope.Type == "" {
		return nil, fmt.Errorf("model artifact is missing a type")
	}

	model, err := ml.NewModel(envelope.Type, data)
	if err != nil {
		return nil, fmt.Errorf("failed to build model from artifact: %w", err)
	}

	s.logger.Info("loaded model artifact",
		zap.String("type", envelope.Type),
		zap.String("file", modelFile))

	return model, nil
}

// Scaler loads and constructs the scaler artifact (ports.ArtifactStore interface)
func (s *Store) Scaler() (ports.Scaler, error) {
	data, err := s.read(scalerFile)
	if err != nil {
		return nil, err
	}

	var params scaling.Params
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scaler artifact: %w", err)
	}

	scaler, err := scaling.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to build scaler from artifact: %w", err)
	}

	s.logger.Info("loaded scaler artifact", zap.String("file", scalerFile))

	return scaler, nil
}

// EvalDataset loads the held-out test set (ports.ArtifactStore interface)
func (s *Store) EvalDataset() (*domain.EvalDataset, error) {
	featureData, err := s.read(evalFeaturesFile)
	if err != nil {
		return nil, err
	}
	targetData, err := s.read(evalTargetsFile)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	if err := json.Unmarshal(featureData, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation features: %w", err)
	}
	var targets []float64
	if err := json.Unmarshal(targetData, &targets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evaluation targets: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("evaluation features are empty")
	}

	features := mat.NewDense(len(rows), domain.NumFeatures, nil)
	for i, row := range rows {
		if len(row) != domain.NumFeatures {
			return nil, fmt.Errorf("evaluation row %d has %d features, expected %d",
				i, len(row), domain.NumFeatures)
		}
		features.SetRow(i, row)
	}

	dataset := &domain.EvalDataset{
		Features: features,
		Targets:  targets,
	}
	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid evaluation dataset: %w", err)
	}

	s.logger.Info("loaded evaluation dataset", zap.Int("rows", dataset.Len()))

	return dataset, nil
}

func (s *Store) read(name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return data, nil
}
