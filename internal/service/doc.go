// Package service implements the application's use cases on top of the store
// interfaces: recording, editing and removing grades, computing statistics,
// and publishing change events so that views can refresh.
//
// GradeService is constructed once at startup and passed explicitly to every
// component that needs it; there is no package-level instance.
package service
