// Package stats computes the aggregate figures of a grade book: credit
// totals, weighted and arithmetic averages, the projected degree score and
// credit progress, plus the grade-over-time series used for charting.
//
// Records with grade 0 (pass/fail) count towards credits but never towards
// an average.
package stats
