// Package chain provides a fluent wrapper around sum.Result[T, error]
// for building synchronous railway chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. Every chain carries an id that is shared by all
// chains derived from it, so the steps of one pipeline can be correlated.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Recover: replace a failure with a fallback result
// - Finally: collapse the chain into a final value via handlers
package chain
