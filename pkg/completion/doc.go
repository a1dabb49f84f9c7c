// Package completion models the settle-once outcome of asynchronous processor
// work. A Future is either already settled (synchronous transforms) or pending
// until a goroutine resolves it; either way callers wait on it the same way.
//
// Highlights:
// - Success/Failure: construct a Result
// - Completed: a Future that is already settled
// - Go: run a function on a goroutine, panics become failures
// - Promise: settle manually with Resolve/Reject
// - Then: derive a Future from another once it settles
package completion
