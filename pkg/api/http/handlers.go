package http

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crestlabs/crest/pkg/domain"
)

// DefaultModel is the selector used when the model query parameter is
// absent.
const DefaultModel = "KNN"

// WelcomeMessage is returned by the root route.
const WelcomeMessage = "Welcome to Concrete Strength Prediction API"

// PredictRequest carries the eight mix-design features. Pointer fields so
// that a missing field fails binding while an explicit zero passes.
type PredictRequest struct {
	Cement           *float64 `json:"cement" binding:"required"`
	Slag             *float64 `json:"slag" binding:"required"`
	FlyAsh           *float64 `json:"flyash" binding:"required"`
	Water            *float64 `json:"water" binding:"required"`
	Superplasticizer *float64 `json:"superplasticizer" binding:"required"`
	CoarseAgg        *float64 `json:"coarseagg" binding:"required"`
	FineAgg          *float64 `json:"fineagg" binding:"required"`
	Age              *float64 `json:"age" binding:"required"`
}

// featureVector assembles the request fields in training order.
func (r *PredictRequest) featureVector() domain.FeatureVector {
	return domain.FeatureVector{
		Cement:           *r.Cement,
		Slag:             *r.Slag,
		FlyAsh:           *r.FlyAsh,
		Water:            *r.Water,
		Superplasticizer: *r.Superplasticizer,
		CoarseAgg:        *r.CoarseAgg,
		FineAgg:          *r.FineAgg,
		Age:              *r.Age,
	}
}

// PredictResponse is the successful prediction payload
type PredictResponse struct {
	PredictedStrength float64 `json:"predicted_strength"`
}

// ModelMetricsResponse is the successful metrics payload
type ModelMetricsResponse struct {
	MAE         float64 `json:"mae"`
	RMSE        float64 `json:"rmse"`
	R2          float64 `json:"r2"`
	Correlation float64 `json:"correlation"`
	Description string  `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// notImplementedBody is the compatibility shape for unknown selectors.
// It ships with a 200 status, not an HTTP error.
func notImplementedBody(model string) gin.H {
	return gin.H{"error": fmt.Sprintf("Model %s not implemented yet.", model)}
}

// handleRoot handles the welcome / liveness route
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": WelcomeMessage,
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"models": s.registry.Len(),
	})
}

// handlePredict handles single-point prediction
func (s *Server) handlePredict(c *gin.Context) {
	modelName := c.DefaultQuery("model", DefaultModel)

	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error("invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	entry, ok := s.registry.Lookup(modelName)
	if !ok {
		s.metrics.RecordUnsupportedModel("predict")
		c.JSON(http.StatusOK, notImplementedBody(modelName))
		return
	}

	start := time.Now()

	scaled, err := entry.Scaler.Transform(req.featureVector().Matrix())
	if err != nil {
		s.logger.Error("failed to scale features", zap.Error(err))
		s.metrics.RecordPrediction(modelName, "error", time.Since(start))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    "SCALING_FAILED",
				Message: err.Error(),
			},
		})
		return
	}

	predicted, err := entry.Model.Predict(scaled)
	if err != nil || len(predicted) != 1 || math.IsNaN(predicted[0]) {
		s.logger.Error("prediction failed", zap.Error(err))
		s.metrics.RecordPrediction(modelName, "error", time.Since(start))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{
				Code:    "PREDICTION_FAILED",
				Message: "model failed to produce a prediction",
			},
		})
		return
	}

	s.metrics.RecordPrediction(modelName, "ok", time.Since(start))

	c.JSON(http.StatusOK, PredictResponse{
		PredictedStrength: predicted[0],
	})
}

// handleModelMetrics returns the precomputed metrics snapshot
func (s *Server) handleModelMetrics(c *gin.Context) {
	modelName := c.DefaultQuery("model", DefaultModel)

	entry, ok := s.registry.Lookup(modelName)
	if !ok {
		s.metrics.RecordUnsupportedModel("model-metrics")
		c.JSON(http.StatusOK, notImplementedBody(modelName))
		return
	}

	c.JSON(http.StatusOK, ModelMetricsResponse{
		MAE:         entry.Snapshot.MAE,
		RMSE:        entry.Snapshot.RMSE,
		R2:          entry.Snapshot.R2,
		Correlation: entry.Snapshot.Correlation,
		Description: entry.Description,
	})
}
