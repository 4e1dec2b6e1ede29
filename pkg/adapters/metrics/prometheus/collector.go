package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crestlabs/crest/pkg/domain"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	predictions        *prometheus.CounterVec
	predictionDuration *prometheus.HistogramVec
	unsupportedModels  *prometheus.CounterVec

	// Evaluation metrics, set once at startup
	evalMAE         *prometheus.GaugeVec
	evalRMSE        *prometheus.GaugeVec
	evalR2          *prometheus.GaugeVec
	evalCorrelation *prometheus.GaugeVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		predictions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crest_predictions_total",
				Help: "Total number of prediction requests",
			},
			[]string{"model", "status"},
		),
		predictionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crest_prediction_duration_seconds",
				Help:    "Prediction duration in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"model"},
		),
		unsupportedModels: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crest_unsupported_model_requests_total",
				Help: "Total number of requests for unregistered model selectors",
			},
			[]string{"route"},
		),
		evalMAE: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crest_eval_mae",
				Help: "Mean absolute error on the held-out test set",
			},
			[]string{"model"},
		),
		evalRMSE: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crest_eval_rmse",
				Help: "Root-mean-squared error on the held-out test set",
			},
			[]string{"model"},
		),
		evalR2: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crest_eval_r2",
				Help: "Coefficient of determination on the held-out test set",
			},
			[]string{"model"},
		),
		evalCorrelation: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "crest_eval_correlation",
				Help: "Pearson correlation of predicted vs actual on the held-out test set",
			},
			[]string{"model"},
		),
	}
}

// RecordPrediction records a prediction request and its duration
func (c *Collector) RecordPrediction(model, status string, duration time.Duration) {
	c.predictions.WithLabelValues(model, status).Inc()
	c.predictionDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordUnsupportedModel records a request for an unregistered selector
func (c *Collector) RecordUnsupportedModel(route string) {
	c.unsupportedModels.WithLabelValues(route).Inc()
}

// SetEvalMetrics publishes the startup metrics snapshot for a model
func (c *Collector) SetEvalMetrics(model string, snapshot domain.MetricsSnapshot) {
	c.evalMAE.WithLabelValues(model).Set(snapshot.MAE)
	c.evalRMSE.WithLabelValues(model).Set(snapshot.RMSE)
	c.evalR2.WithLabelValues(model).Set(snapshot.R2)
	c.evalCorrelation.WithLabelValues(model).Set(snapshot.Correlation)
}
