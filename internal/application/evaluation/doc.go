// Package evaluation computes the startup metrics snapshot.
//
// The evaluator runs the loaded model over the fixed held-out dataset and
// derives four statistics:
//   - Mean absolute error
//   - Root-mean-squared error
//   - Coefficient of determination
//   - Pearson correlation between predicted and actual targets
//
// The snapshot is computed once, before the HTTP server accepts requests,
// and cached for the process lifetime.
package evaluation
