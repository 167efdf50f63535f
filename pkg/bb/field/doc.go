// Package field provides the two scalar value types exchanged with the
// native engine: Fr (scalar field) and Fq (base field).
//
// Both are 32-byte opaque payloads. They carry no arithmetic and no modulus
// check; they exist so that buffers can be built and read with the correct
// width and so that values from the two fields cannot be confused:
//
//	var r field.Fr
//	var q field.Fq
//	r = q // compile error
//
// Encoding copies the payload into a new slice. Decoding copies a fixed-size
// array into a new value:
//
//	fr := field.FrFromBuffer(out) // out is a [32]byte read from the engine
//	buf := fr.ToBuffer()          // 32 bytes, owned by the caller
package field
