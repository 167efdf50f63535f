package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrBufferSize reports a buffer whose length does not match the width
// declared by the target type.
var ErrBufferSize = errors.New("buffer size mismatch")

// Serializer is implemented by values that can produce their canonical wire
// form. ToBuffer never fails and never modifies the receiver; the returned
// slice is freshly allocated and owned by the caller.
type Serializer interface {
	ToBuffer() []byte
}

// Deserializer is implemented by values that can be rebuilt from a buffer of
// a fixed, type-declared width.
//
// BufferSize returns a per-type constant. SetBuffer is unchecked: the caller
// guarantees len(buf) == BufferSize() and that the bytes come from a trusted
// source. A short buffer panics; a long buffer is read only up to the
// declared width.
type Deserializer interface {
	BufferSize() int
	SetBuffer(buf []byte)
}

// DeserializerPtr constrains *T to implement Deserializer so generic helpers
// can produce T values.
type DeserializerPtr[T any] interface {
	*T
	Deserializer
}

// vectorPrefixSize is the width of the big-endian element count that
// precedes every vector on the native boundary.
const vectorPrefixSize = 4

// Encode concatenates the encodings of values in argument order, with no
// separators.
func Encode(values ...Serializer) []byte {
	var out []byte
	for _, v := range values {
		out = append(out, v.ToBuffer()...)
	}
	return out
}

// Size returns the declared buffer width of T.
func Size[T any, P DeserializerPtr[T]]() int {
	var zero T
	return P(&zero).BufferSize()
}

// Decode rebuilds a T from buf after checking that len(buf) equals the width
// T declares. This is the checked entry point for slices of foreign origin;
// callers holding a fixed-size array should use the type's own FromBuffer
// constructor instead.
func Decode[T any, P DeserializerPtr[T]](buf []byte) (T, error) {
	var out T
	p := P(&out)
	if want := p.BufferSize(); len(buf) != want {
		return out, fmt.Errorf("decode %T: got %d bytes, want %d: %w", out, len(buf), want, ErrBufferSize)
	}
	p.SetBuffer(buf)
	return out, nil
}

// putCount writes n as the big-endian count prefix. The native boundary
// cannot express more than math.MaxUint32 elements; exceeding it is a caller
// contract violation and panics.
func putCount(dst []byte, n int) {
	if uint64(n) > math.MaxUint32 {
		panic(fmt.Sprintf("codec: %d elements overflow the uint32 count prefix", n))
	}
	binary.BigEndian.PutUint32(dst, uint32(n))
}

// EncodeVector frames items as a big-endian uint32 count followed by each
// item's encoding. It panics if len(items) exceeds math.MaxUint32.
func EncodeVector[S Serializer](items []S) []byte {
	out := make([]byte, vectorPrefixSize)
	putCount(out, len(items))
	for _, item := range items {
		out = append(out, item.ToBuffer()...)
	}
	return out
}

// DecodeVector parses a buffer produced by EncodeVector. The remaining bytes
// after the count must be exactly count times the element width.
func DecodeVector[T any, P DeserializerPtr[T]](buf []byte) ([]T, error) {
	if len(buf) < vectorPrefixSize {
		return nil, fmt.Errorf("decode vector: %d bytes is shorter than the count prefix: %w", len(buf), ErrBufferSize)
	}
	count := int(binary.BigEndian.Uint32(buf))
	width := Size[T, P]()
	body := buf[vectorPrefixSize:]
	if len(body) != count*width {
		return nil, fmt.Errorf("decode vector: %d elements of %d bytes need %d bytes, got %d: %w",
			count, width, count*width, len(body), ErrBufferSize)
	}

	out := make([]T, count)
	for i := range out {
		P(&out[i]).SetBuffer(body[i*width : (i+1)*width])
	}
	return out, nil
}

// EncodeBytes frames a raw byte string as a big-endian uint32 length followed
// by the bytes themselves. It panics if len(b) exceeds math.MaxUint32.
func EncodeBytes(b []byte) []byte {
	out := make([]byte, vectorPrefixSize+len(b))
	putCount(out, len(b))
	copy(out[vectorPrefixSize:], b)
	return out
}
