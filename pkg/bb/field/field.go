package field

import "github.com/aztecprotocol/bb-go/pkg/bb/codec"

const (
	// FrSize is the encoded width of an Fr in bytes.
	FrSize = 32
	// FqSize is the encoded width of an Fq in bytes.
	FqSize = 32
)

var (
	_ codec.Serializer   = Fr{}
	_ codec.Deserializer = (*Fr)(nil)
	_ codec.Serializer   = Fq{}
	_ codec.Deserializer = (*Fq)(nil)
)

// Fr is an element of the scalar field, held as an opaque 32-byte payload in
// the engine's canonical byte order. No reduction or range check is applied;
// the native engine owns validation.
type Fr struct {
	Data [FrSize]byte
}

// FrFromBuffer builds an Fr from a buffer of exactly FrSize bytes, typically
// copied out of native engine memory. The array is taken by value so the
// result never aliases the caller's storage.
func FrFromBuffer(buf [FrSize]byte) Fr {
	return Fr{Data: buf}
}

// ToBuffer returns a fresh copy of the 32-byte payload.
func (f Fr) ToBuffer() []byte {
	out := make([]byte, FrSize)
	copy(out, f.Data[:])
	return out
}

// Bytes returns the payload as a fixed-size array.
func (f Fr) Bytes() [FrSize]byte {
	return f.Data
}

// BufferSize reports FrSize.
func (*Fr) BufferSize() int { return FrSize }

// SetBuffer overwrites f with the leading FrSize bytes of buf. It panics if
// buf is shorter than FrSize.
func (f *Fr) SetBuffer(buf []byte) {
	*f = FrFromBuffer([FrSize]byte(buf))
}

// Fq is an element of the base field. It shares Fr's layout but is a
// separate type so the two domains cannot be mixed.
type Fq struct {
	Data [FqSize]byte
}

// FqFromBuffer builds an Fq from a buffer of exactly FqSize bytes.
func FqFromBuffer(buf [FqSize]byte) Fq {
	return Fq{Data: buf}
}

// ToBuffer returns a fresh copy of the 32-byte payload.
func (f Fq) ToBuffer() []byte {
	out := make([]byte, FqSize)
	copy(out, f.Data[:])
	return out
}

// Bytes returns the payload as a fixed-size array.
func (f Fq) Bytes() [FqSize]byte {
	return f.Data
}

// BufferSize reports FqSize.
func (*Fq) BufferSize() int { return FqSize }

// SetBuffer overwrites f with the leading FqSize bytes of buf. It panics if
// buf is shorter than FqSize.
func (f *Fq) SetBuffer(buf []byte) {
	*f = FqFromBuffer([FqSize]byte(buf))
}
