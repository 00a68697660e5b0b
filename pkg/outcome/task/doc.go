// Package task provides the asynchronous counterparts of the outcome
// primitives: Task[A], a hot computation settling to a Result[A], and
// Promise[T], a hot deferred plain value.
//
// Every constructor and combinator starts its goroutine immediately and
// memoizes the settled result behind a latch closed exactly once, so a
// task observed many times runs its computation exactly once. There is no
// cancellation: context expiry on Await abandons the wait, never the
// in-flight work.
//
// Common usage:
//   - Go/From/FromPromise/FromResult/Resolve/Reject: construct tasks
//   - Try/TryCatch/Fn: adapt fallible functions, panics included
//   - Map/AndThen/And/Or/OrElse/Flatten: compose tasks, short-circuiting
//     with the same tie-breaks as the synchronous combinators
//   - Collect/Transpose/Partition: sequence-level folding with sequential
//     consumption order
//   - Do/DoPromise/Eval: sequential-looking asynchronous blocks that abort
//     on the first failing step
package task
