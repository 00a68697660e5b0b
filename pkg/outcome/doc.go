// Package outcome contains the synchronous success/failure primitives:
// Result[T], Option[T] and the combinators that propagate the first
// failure through a computation without explicit branching at each step.
//
// Highlights:
//   - Ok/Err/ErrValue/Of: construct Result[T]
//   - Map/AndThen/And/Or/Flatten: compose results, short-circuiting on Err
//   - Try/TryCatch/Fn: adapt fallible (value, error) functions and panics
//   - CollectResult/TransposeResult/PartitionResults: sequence-level folding
//   - CollectOption/CollectSlice/CollectNullable: transpose nested wrappers
//   - Do/Eval: write sequential-looking blocks that abort on the first
//     failing step
//   - Match/Finally-style folding via Match, side effects via Tee/TeeErr
//
// For the asynchronous counterparts see package task; for a fluent
// context-carrying wrapper see package chain.
package outcome
