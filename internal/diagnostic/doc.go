// Package diagnostic provides structured warnings, errors, and
// explanations produced while planning generated field accessors.
//
// Key capabilities:
//   - Tag collision reports (distinct types merged into one case)
//   - Explicit tag override notes
//   - Capability misuse errors
package diagnostic
