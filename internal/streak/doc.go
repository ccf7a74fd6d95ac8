// Package streak turns completion timestamps into streak counts.
//
// Every timestamp is bucketed into a period key according to a habit's
// periodicity (calendar day, Monday-anchored ISO week, calendar month).
// Keys are deduplicated before runs are measured, so several completions in
// the same period count once. The package does no I/O and never reads the
// wall clock; callers pass "now" explicitly.
package streak
