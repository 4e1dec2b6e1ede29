package domain

// MetricsSnapshot holds the accuracy statistics of a model against the
// held-out evaluation dataset. It is computed once at startup and never
// recomputed, so repeated reads are bit-identical.
type MetricsSnapshot struct {
	MAE         float64 `json:"mae"`
	RMSE        float64 `json:"rmse"`
	R2          float64 `json:"r2"`
	Correlation float64 `json:"correlation"`
}
