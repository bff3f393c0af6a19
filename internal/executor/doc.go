// Package executor runs an ordered list of pipeline steps sequentially,
// applying the two-tier failure policy: hard-fail steps abort the run,
// soft-fail steps are recorded and skipped over.
package executor
