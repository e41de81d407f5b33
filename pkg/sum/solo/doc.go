// Package solo contains single-value, synchronous railway primitives built on
// sum.Result[T, error]. Each step runs only on the Ok track and passes an Err
// through untouched.
//
// Highlights:
// - Succeed/Fail: construct a Result[T, error]
// - Validate/AndValidate: turn a failed check into an Err
// - Switch: move from Result[In] to Result[Out] via a step that may fail
// - Map/DoubleMap: transform the value (and optionally the error)
// - Try: call a func returning (Out, error) and lift it onto the railway
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join/ValidateAll: fold several steps, optionally accumulating errors
//
// A step whose context is already done is not run; the context error becomes
// the Err instead.
package solo
