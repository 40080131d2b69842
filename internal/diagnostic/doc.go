// Package diagnostic collects the errors, warnings and notes produced while
// extracting element definitions from a set of packages.
//
// Key capabilities:
//   - Per-type error aggregation, so one run reports every broken type
//   - Warnings for exported fields that carry no html tag
//   - Stable, sorted output for the CLI
package diagnostic
