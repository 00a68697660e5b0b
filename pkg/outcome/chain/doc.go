// Package chain provides a fluent wrapper around Result[T] for building
// synchronous pipelines that carry a context.Context alongside the value.
//
// It composes the outcome primitives behind a convenient Chain[T] type so
// pipelines read top to bottom without branching on failures at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map/MapTo/Switch: transform the successful value
// - Ensure: run side effects without changing the result
// - And/Or: join chains with the core tie-break rules
// - Finally: collapse the chain into a final value via handlers
package chain
