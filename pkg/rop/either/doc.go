// Package either provides Either[L, R], a value holding exactly one of two
// typed alternatives. By convention Left carries the failure or alternate
// outcome and Right the primary one.
//
// Key operations:
// - Left/Right/LeftOf/RightOf: construct
// - IsLeft/IsRight, GetLeft/GetRight: inspect; the wrong side is an error
// - Map: fold both sides into one value
// - MapLeft/MapRight: transform one side, keep the handedness
// - ProceedLeft/ProceedRight/ProceedRightAsync: biased binds for chaining
// - JoinLeft/JoinRight: flatten a nested Either
// - FromResult/ToResult: bridge to rop.Result
package either
