package backend

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFixedCopiesAndDetaches(t *testing.T) {
	src := make([]byte, 80)
	for i := range src {
		src[i] = byte(i)
	}

	got32 := ReadFixed32(unsafe.Pointer(&src[8]))
	got64 := ReadFixed64(unsafe.Pointer(&src[16]))
	assert.Equal(t, src[8:40], got32[:])
	assert.Equal(t, src[16:80], got64[:])

	for i := range src {
		src[i] = 0xFF
	}
	assert.Equal(t, byte(8), got32[0], "result must not alias source memory")
	assert.Equal(t, byte(79), got64[63], "result must not alias source memory")
}

func TestReadBuffer(t *testing.T) {
	assert.Nil(t, ReadBuffer(nil, 4))

	src := []byte{1, 2, 3, 4, 5}
	assert.Nil(t, ReadBuffer(unsafe.Pointer(&src[0]), 0))

	got := ReadBuffer(unsafe.Pointer(&src[1]), 3)
	require.Equal(t, []byte{2, 3, 4}, got)
	src[1] = 9
	assert.Equal(t, byte(2), got[0])
}

func TestReadCString(t *testing.T) {
	assert.Nil(t, ReadCString(nil))

	src := []byte("hello\x00world")
	assert.Equal(t, []byte("hello"), ReadCString(unsafe.Pointer(&src[0])))

	empty := []byte{0}
	assert.Empty(t, ReadCString(unsafe.Pointer(&empty[0])))
}
