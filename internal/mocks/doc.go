// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes one function field per interface method. A nil field
// falls back to a simple default so tests only set what they care about:
//
//	store := &mocks.MockGradeStore{
//	    ListFn: func(ctx context.Context) ([]domain.Grade, error) {
//	        return nil, errors.New("boom")
//	    },
//	}
package mocks
