// Package asyncdata models data that arrives from a slow or fallible source.
//
// An AsyncData[D, E] snapshot is in one of four states:
// - NotAsked: no request has been made yet
// - Loading: a request is in flight
// - Failure: the request failed with an E
// - Success: a sequence of D has arrived (possibly partial, possibly empty)
//
// Snapshots are immutable. Callers replace them as a request moves through
// NotAsked -> Loading -> Success|Failure; Success may be issued several
// times while data streams in.
//
// Map, Filter and Reduce keep non-Success states as they are. Accessors that
// need data (Value, SingleValue, Find, Update, Concat, Sort, Get, Remove,
// Every, Some) return ErrNotReady outside Success. GetOptional is the
// always-safe read.
package asyncdata
