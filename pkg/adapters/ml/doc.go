// Package ml provides model and scaler implementations.
//
// The factory creates models based on the artifact's type field.
// Currently supports:
//   - KNN regression (MVP)
//
// Future model types:
//   - Linear regression
//   - Gradient-boosted trees
package ml
