package evaluation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/crestlabs/crest/pkg/domain"
	"github.com/crestlabs/crest/pkg/ports"
)

// Evaluate runs the model over the held-out dataset and derives the
// metrics snapshot. It runs exactly once at startup; any failure here is
// fatal so that a broken model never starts serving.
func Evaluate(model ports.Model, dataset *domain.EvalDataset) (domain.MetricsSnapshot, error) {
	var snapshot domain.MetricsSnapshot

	if model == nil {
		return snapshot, fmt.Errorf("model is nil")
	}
	if err := dataset.Validate(); err != nil {
		return snapshot, err
	}

	predicted, err := model.Predict(dataset.Features)
	if err != nil {
		return snapshot, fmt.Errorf("evaluation prediction failed: %w", err)
	}
	if len(predicted) != len(dataset.Targets) {
		return snapshot, fmt.Errorf("model returned %d predictions for %d targets",
			len(predicted), len(dataset.Targets))
	}

	n := float64(len(predicted))
	absSum, sqSum := 0.0, 0.0
	for i, p := range predicted {
		diff := p - dataset.Targets[i]
		absSum += math.Abs(diff)
		sqSum += diff * diff
	}

	snapshot = domain.MetricsSnapshot{
		MAE:         absSum / n,
		RMSE:        math.Sqrt(sqSum / n),
		R2:          stat.RSquaredFrom(predicted, dataset.Targets, nil),
		Correlation: stat.Correlation(predicted, dataset.Targets, nil),
	}

	// A constant prediction or target vector leaves the correlation
	// undefined. Refuse to serve metrics that are not finite numbers.
	for name, value := range map[string]float64{
		"mae":         snapshot.MAE,
		"rmse":        snapshot.RMSE,
		"r2":          snapshot.R2,
		"correlation": snapshot.Correlation,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return domain.MetricsSnapshot{}, fmt.Errorf("evaluation produced non-finite %s", name)
		}
	}

	return snapshot, nil
}
