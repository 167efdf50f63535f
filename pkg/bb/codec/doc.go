// Package codec defines the buffer contract shared by every value that
// crosses the native engine boundary.
//
// Two capabilities make up the contract:
//
//   - Serializer: produce an owned byte slice holding the canonical wire form.
//   - Deserializer: rebuild a value from a buffer of the exact width the type
//     declares.
//
// Widths are per-type constants. Composite values implement both
// capabilities by delegating to their constituents and concatenating or
// splitting byte ranges in a fixed order.
//
// # Checked and unchecked decoding
//
// Domain packages expose infallible constructors that take fixed-size arrays
// (for example field.FrFromBuffer([32]byte)). The array length is part of
// the Go type, so the width precondition holds at compile time.
//
// For slices whose length is only known at run time, Decode checks the width
// and returns an error wrapping ErrBufferSize on mismatch:
//
//	fr, err := codec.Decode[field.Fr](buf)
//	if errors.Is(err, codec.ErrBufferSize) {
//	    // boundary contract violated
//	}
//
// # Vectors
//
// The native engine passes variable-length lists as a big-endian uint32
// count followed by fixed-width elements. EncodeVector and DecodeVector
// implement that framing; EncodeBytes applies it to raw byte strings.
package codec
