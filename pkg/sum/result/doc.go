// Package result holds the Result combinators that change the success or
// error type and so cannot be methods on sum.Result.
//
// Key operations:
// - Map/MapErr: transform one side, pass the other through untouched
// - MapOr/MapOrElse: collapse to a plain value
// - And/AndThen: continue on Ok, short-circuit on Err
// - Flatten/Transpose: reshape nested containers
package result
