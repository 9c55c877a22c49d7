// Package pipeline orchestrates a full expiration run as a small state
// machine: scan the labeled files, report the expiring ones, wait for an
// explicit go-ahead, then notify the signatories.
//
// The phases behind the states are injected as interfaces, so the runner is
// testable without any Google service. A wall clock budget is checked
// between phases; exceeding it aborts the run instead of starting the next
// phase. Finding nothing to do is a successful outcome, not an error.
package pipeline
