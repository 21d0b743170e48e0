// Package optional provides Optional[T], a container for zero or one value.
//
// Highlights:
// - Empty/Of/OfPtr/OfOk: construct; Of never wraps nil or an empty Optional
// - Get: checked access returning ErrNoSuchElement when empty
// - Map/FlatMap/Join/Filter/Cast: transform without nesting Optionals
// - OrElse/OrElseGet/OrNothing/OrNull/OrElseThrow: fallbacks
// - Equals: empty is never equal to anything, not even another empty
//
// Present values marshal to JSON and YAML as the bare value. Tag fields with
// `json:",omitzero"` or `yaml:",omitempty"` to omit empty ones.
package optional
