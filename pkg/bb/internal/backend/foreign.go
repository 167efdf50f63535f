package backend

import "unsafe"

// ReadFixed32 copies the 32 bytes starting at p into a Go-owned array.
// p must reference at least 32 readable bytes for the duration of the call.
func ReadFixed32(p unsafe.Pointer) [32]byte {
	return [32]byte(unsafe.Slice((*byte)(p), 32))
}

// ReadFixed64 copies the 64 bytes starting at p into a Go-owned array.
// p must reference at least 64 readable bytes for the duration of the call.
func ReadFixed64(p unsafe.Pointer) [64]byte {
	return [64]byte(unsafe.Slice((*byte)(p), 64))
}

// ReadBuffer copies n bytes starting at p. It returns nil when p is nil or n
// is not positive.
func ReadBuffer(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// ReadCString copies a NUL-terminated byte string starting at p, excluding
// the terminator. It returns nil when p is nil.
func ReadCString(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return ReadBuffer(p, n)
}
