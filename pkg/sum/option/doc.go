// Package option holds the Option combinators that change the element type
// and so cannot be methods on sum.Option.
//
// Key operations:
// - Map/MapOr/MapOrElse: transform the value when present
// - And/AndThen: sequence two optional computations
// - OkOr/OkOrElse: convert to a sum.Result
// - Zip/Unzip: combine two options into a pair and back
// - Flatten/Transpose: reshape nested containers
package option
