//go:build !cgo || windows || !bbnative

package backend

// Stub implementations for builds without the native library. They let the
// package compile but return ErrNotBuilt when called.

// Available reports whether the native bindings are linked in.
func Available() bool { return false }

func PedersenCommit([]byte) ([64]byte, error) { return [64]byte{}, ErrNotBuilt }

func PedersenHash([]byte, uint32) ([32]byte, error) { return [32]byte{}, ErrNotBuilt }

func Blake2s([]byte) ([32]byte, error) { return [32]byte{}, ErrNotBuilt }

func SchnorrComputePublicKey([]byte) ([64]byte, error) { return [64]byte{}, ErrNotBuilt }
