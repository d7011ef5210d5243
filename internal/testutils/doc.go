// Package testutils provides helpers shared by tests across the codebase.
//
// Helper functions follow these naming conventions:
//   - Create*: build entities in memory
//   - MustAdd*: add entities to a store, failing the test on error
//   - Assert*: verify conditions in tests
package testutils
