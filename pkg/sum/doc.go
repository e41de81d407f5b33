// Package sum contains the Option and Result sum types together with the
// small pull-based iteration protocol used to walk them as sequences of zero
// or one element.
//
// Highlights:
// - Some/None, Ok/Err: construct Option[T] and Result[T, E]
// - Unwrap/UnwrapErr: the only accessors that panic (with *UnwrapError)
// - Filter/Or/OrElse/Xor: combinators that keep the element type
// - Iterator/IntoIterator: the protocol; ConstIterator is the concrete source
// - Map: lazily transform any Iterator; Seq/Collect bridge to range loops
//
// Combinators that change the element type live in packages option and result
// because Go methods cannot declare type parameters of their own.
package sum
