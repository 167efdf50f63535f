package curve

import (
	"github.com/aztecprotocol/bb-go/pkg/bb/codec"
	"github.com/aztecprotocol/bb-go/pkg/bb/field"
)

// PointSize is the encoded width of a Point: two coordinates back to back.
const PointSize = 2 * field.FrSize

var (
	_ codec.Serializer   = Point{}
	_ codec.Deserializer = (*Point)(nil)
)

// Point is an affine curve point as laid out by the native engine. The
// coordinates are Fr values; no on-curve check is performed here.
type Point struct {
	X field.Fr
	Y field.Fr
}

// PointFromBuffer splits buf at the midpoint and decodes X from the first
// half and Y from the second. Each half is copied into its own array before
// decoding.
func PointFromBuffer(buf [PointSize]byte) Point {
	var x, y [field.FrSize]byte
	copy(x[:], buf[:field.FrSize])
	copy(y[:], buf[field.FrSize:])
	return Point{
		X: field.FrFromBuffer(x),
		Y: field.FrFromBuffer(y),
	}
}

// ToBuffer returns X's encoding followed by Y's encoding, 64 bytes in total.
// The engine expects exactly this order.
func (p Point) ToBuffer() []byte {
	out := make([]byte, 0, PointSize)
	out = append(out, p.X.ToBuffer()...)
	return append(out, p.Y.ToBuffer()...)
}

// Bytes returns the encoding as a fixed-size array.
func (p Point) Bytes() [PointSize]byte {
	return [PointSize]byte(p.ToBuffer())
}

// BufferSize reports PointSize.
func (*Point) BufferSize() int { return PointSize }

// SetBuffer overwrites p from the leading PointSize bytes of buf. It panics
// if buf is shorter than PointSize.
func (p *Point) SetBuffer(buf []byte) {
	*p = PointFromBuffer([PointSize]byte(buf))
}
