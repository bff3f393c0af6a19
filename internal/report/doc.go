// Package report assembles the consolidated index document written at the
// end of a run and the final console summary.
package report
