//go:build cgo && !windows && bbnative

package backend

/*
#cgo LDFLAGS: -L${SRCDIR}/../../../../build/lib -lbb -lstdc++ -lm
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

void pedersen_commit(uint8_t const* inputs, uint8_t* output);
void pedersen_hash(uint8_t const* inputs, uint8_t const* hash_index, uint8_t* output);
void blake2s(uint8_t const* data, uint8_t* output);
void schnorr_compute_public_key(uint8_t const* private_key, uint8_t* public_key);
*/
import "C"

import (
	"encoding/binary"
	"errors"
	"runtime"
	"unsafe"
)

// Available reports whether the native bindings are linked in.
func Available() bool { return true }

// cbuf returns a pointer to data for the duration of a synchronous call. The
// slice must not contain Go pointers and must not be retained by C.
func cbuf(data []byte) *C.uint8_t {
	if len(data) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&data[0]))
}

// outbuf allocates n bytes of C memory for the engine to write into.
func outbuf(n int) (unsafe.Pointer, error) {
	p := C.malloc(C.size_t(n))
	if p == nil {
		return nil, errors.New("bb/internal/backend: out of memory")
	}
	C.memset(p, 0, C.size_t(n))
	return p, nil
}

// release zeroes and frees memory obtained from outbuf.
func release(p unsafe.Pointer, n int) {
	C.memset(p, 0, C.size_t(n))
	C.free(p)
}

// PedersenCommit commits to a vector-encoded list of Fr values and returns
// the 64-byte affine point.
func PedersenCommit(inputs []byte) ([64]byte, error) {
	out, err := outbuf(64)
	if err != nil {
		return [64]byte{}, err
	}
	defer release(out, 64)

	C.pedersen_commit(cbuf(inputs), (*C.uint8_t)(out))
	runtime.KeepAlive(inputs)
	return ReadFixed64(out), nil
}

// PedersenHash hashes a vector-encoded list of Fr values under the given
// generator index and returns the 32-byte Fr result.
func PedersenHash(inputs []byte, index uint32) ([32]byte, error) {
	out, err := outbuf(32)
	if err != nil {
		return [32]byte{}, err
	}
	defer release(out, 32)

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)
	C.pedersen_hash(cbuf(inputs), cbuf(idx[:]), (*C.uint8_t)(out))
	runtime.KeepAlive(inputs)
	return ReadFixed32(out), nil
}

// Blake2s hashes a length-framed byte string and returns the 32-byte digest.
func Blake2s(data []byte) ([32]byte, error) {
	out, err := outbuf(32)
	if err != nil {
		return [32]byte{}, err
	}
	defer release(out, 32)

	C.blake2s(cbuf(data), (*C.uint8_t)(out))
	runtime.KeepAlive(data)
	return ReadFixed32(out), nil
}

// SchnorrComputePublicKey derives the 64-byte public key point for a 32-byte
// private key.
func SchnorrComputePublicKey(priv []byte) ([64]byte, error) {
	if len(priv) != 32 {
		return [64]byte{}, errors.New("bb/internal/backend: private key must be 32 bytes")
	}
	out, err := outbuf(64)
	if err != nil {
		return [64]byte{}, err
	}
	defer release(out, 64)

	C.schnorr_compute_public_key(cbuf(priv), (*C.uint8_t)(out))
	runtime.KeepAlive(priv)
	return ReadFixed64(out), nil
}
