// Package curve provides the composite point type exchanged with the native
// engine.
//
// A Point owns two field.Fr coordinates. Its wire form is the 32-byte X
// encoding immediately followed by the 32-byte Y encoding:
//
//	offset  0..31   X
//	offset 32..63   Y
//
// The order is fixed by the native engine's memory layout. Swapping the
// halves produces a different point, not an equivalent encoding.
//
// Curve arithmetic is out of scope for this package; pass points to the
// engine (see package bb) for any operation beyond marshaling.
package curve
