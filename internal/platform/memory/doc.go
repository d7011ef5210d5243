// Package memory provides the in-process implementation of store.GradeStore.
// Records live only as long as the process; nothing is written to disk.
package memory
