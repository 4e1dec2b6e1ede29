// Package domain holds the core types of the prediction service:
// feature vectors, the evaluation dataset, and the metrics snapshot.
package domain
