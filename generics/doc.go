// Package generics holds small type-parameterized building blocks: a LIFO
// Stack[T], a constrained lookup over records that carry an integer ID, and
// First/Last helpers over slices.
//
// Absence is never an error here. Every operation that may have nothing to
// return reports it with a trailing bool (or a mo.Option), the same way a map
// lookup does.
package generics
