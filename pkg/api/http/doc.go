// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Single-point strength prediction
//   - Precomputed model accuracy metrics
//   - Welcome / liveness and health checks
//   - Prometheus metrics
package http
