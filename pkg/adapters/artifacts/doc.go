// Package artifacts provides artifact store implementations.
//
// Implementations:
//   - file: JSON artifacts read from a configured directory (MVP)
//   - memory: In-memory for testing
package artifacts
