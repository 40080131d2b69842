// Package match provides edit-distance helpers used to suggest corrections
// for misspelled annotation names.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: closest candidate within a small distance
package match
