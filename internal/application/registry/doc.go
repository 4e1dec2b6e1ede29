// Package registry implements dispatch over named model capabilities.
//
// Each entry binds a model, its scaler, the precomputed metrics snapshot,
// and a human-readable description. The registry is populated during
// startup and read-only while serving, so route handlers need no
// coordination beyond a read lock.
//
// The service currently registers a single entry ("KNN"); adding a model
// is a matter of registering another entry.
package registry
