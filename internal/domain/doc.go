// Package domain contains the core entities of the grade book: the Grade
// record and its partial update. Aggregate statistics over a collection of
// grades live in the stats subpackage.
package domain
