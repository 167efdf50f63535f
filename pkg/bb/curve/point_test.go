package curve_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aztecprotocol/bb-go/pkg/bb/codec"
	"github.com/aztecprotocol/bb-go/pkg/bb/curve"
	"github.com/aztecprotocol/bb-go/pkg/bb/field"
)

func fr(b byte) field.Fr {
	var out field.Fr
	for i := range out.Data {
		out.Data[i] = b
	}
	return out
}

func TestPointExampleEncoding(t *testing.T) {
	p := curve.Point{X: fr(0xAA), Y: fr(0xBB)}

	want := append(bytes.Repeat([]byte{0xAA}, 32), bytes.Repeat([]byte{0xBB}, 32)...)
	got := p.ToBuffer()
	require.Len(t, got, curve.PointSize)
	assert.Equal(t, want, got)

	assert.Equal(t, p, curve.PointFromBuffer([curve.PointSize]byte(want)))
}

func TestPointRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		x, y field.Fr
	}{
		{"zero", field.Fr{}, field.Fr{}},
		{"ones", fr(0xFF), fr(0xFF)},
		{"mixed", fr(0x01), fr(0xFE)},
		{"x_only", fr(0x7F), field.Fr{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			concat := append(tc.x.ToBuffer(), tc.y.ToBuffer()...)

			p := curve.PointFromBuffer([curve.PointSize]byte(concat))
			assert.Equal(t, tc.x, p.X)
			assert.Equal(t, tc.y, p.Y)
			assert.Equal(t, concat, p.ToBuffer())
		})
	}
}

func TestPointOrderSensitivity(t *testing.T) {
	a, b := fr(0x01), fr(0x02)

	ab := curve.Point{X: a, Y: b}.ToBuffer()
	ba := curve.Point{X: b, Y: a}.ToBuffer()
	assert.NotEqual(t, ab, ba)

	assert.Equal(t, a.ToBuffer(), ab[:field.FrSize], "X must come first")
	assert.Equal(t, b.ToBuffer(), ab[field.FrSize:], "Y must come second")
}

func TestPointWidthIsConstant(t *testing.T) {
	for _, p := range []curve.Point{
		{},
		{X: fr(0xFF), Y: fr(0xFF)},
		{X: fr(0x00), Y: fr(0xFF)},
	} {
		assert.Len(t, p.ToBuffer(), curve.PointSize)
	}
	assert.Equal(t, 64, curve.PointSize)
	assert.Equal(t, curve.PointSize, new(curve.Point).BufferSize())
}

func TestPointDecodeIsDetached(t *testing.T) {
	var buf [curve.PointSize]byte
	for i := range buf {
		buf[i] = byte(i)
	}
	p := curve.PointFromBuffer(buf)
	buf[0], buf[63] = 0xEE, 0xEE

	assert.Equal(t, byte(0), p.X.Data[0])
	assert.Equal(t, byte(63), p.Y.Data[31])

	enc := p.ToBuffer()
	enc[0] = 0xEE
	assert.Equal(t, byte(0), p.X.Data[0])
}

func TestPointCheckedDecode(t *testing.T) {
	src := curve.Point{X: fr(0x10), Y: fr(0x20)}.ToBuffer()

	p, err := codec.Decode[curve.Point](src)
	require.NoError(t, err)
	assert.Equal(t, fr(0x10), p.X)
	assert.Equal(t, fr(0x20), p.Y)

	_, err = codec.Decode[curve.Point](src[:curve.PointSize-1])
	assert.ErrorIs(t, err, codec.ErrBufferSize)

	assert.Panics(t, func() {
		var q curve.Point
		q.SetBuffer(src[:field.FrSize])
	})
}

// Uncompressed SEC1 keys are 0x04 || X || Y with 32-byte coordinates, the
// same layout Point uses after the prefix. Real coordinates must survive a
// trip through Point unchanged.
func TestPointCarriesAffineCoordinates(t *testing.T) {
	for seed := byte(1); seed <= 4; seed++ {
		_, pub := btcec.PrivKeyFromBytes(bytes.Repeat([]byte{seed}, 32))
		sec := pub.SerializeUncompressed()
		require.Len(t, sec, 1+curve.PointSize)

		p := curve.PointFromBuffer([curve.PointSize]byte(sec[1:]))
		assert.Equal(t, pub.X().FillBytes(make([]byte, 32)), p.X.ToBuffer())
		assert.Equal(t, pub.Y().FillBytes(make([]byte, 32)), p.Y.ToBuffer())

		parsed, err := btcec.ParsePubKey(append([]byte{0x04}, p.ToBuffer()...))
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(pub), "seed %d", seed)
	}
}
