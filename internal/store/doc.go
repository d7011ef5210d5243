// Package store defines the persistence-facing interfaces of the grade book.
// The service layer depends only on these interfaces; the in-memory
// implementation lives in internal/platform/memory.
package store
