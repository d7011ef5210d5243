// Package events provides change notification for the grade collection.
//
// The service layer emits a ChangeEvent after every successful mutation.
// Anything that displays grade data subscribes through an EventEmitter and
// re-reads state when notified, instead of binding to the collection directly.
//
// The primary components are:
//   - ChangeEvent: what changed and which records were affected
//   - EventHandler / HandlerFunc: receivers of events
//   - InMemoryEventEmitter: synchronous in-process dispatcher
package events
