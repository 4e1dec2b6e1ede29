package domain

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// EvalDataset is the fixed held-out test set: already-scaled feature rows
// and their known targets. Loaded once at startup, used only to derive the
// metrics snapshot, never exposed raw.
type EvalDataset struct {
	Features *mat.Dense
	Targets  []float64
}

// Len returns the number of evaluation rows.
func (d *EvalDataset) Len() int {
	if d == nil || d.Features == nil {
		return 0
	}
	rows, _ := d.Features.Dims()
	return rows
}

// Validate checks the dataset is usable for evaluation.
func (d *EvalDataset) Validate() error {
	if d == nil || d.Features == nil {
		return fmt.Errorf("evaluation dataset is empty")
	}
	rows, cols := d.Features.Dims()
	if rows == 0 {
		return fmt.Errorf("evaluation dataset has no rows")
	}
	if cols != NumFeatures {
		return fmt.Errorf("evaluation dataset has %d columns, expected %d", cols, NumFeatures)
	}
	if len(d.Targets) != rows {
		return fmt.Errorf("evaluation dataset has %d rows but %d targets", rows, len(d.Targets))
	}
	return nil
}
