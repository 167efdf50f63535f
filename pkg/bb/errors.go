package bb

import (
	"errors"

	"github.com/aztecprotocol/bb-go/pkg/bb/internal/backend"
)

var (
	// ErrNotBuilt reports that the binary was built without the native
	// engine (cgo disabled, Windows, or the bbnative tag missing).
	ErrNotBuilt = errors.New("bb: native engine not built")

	// ErrEngineClosed is returned by calls on an Engine after Close.
	ErrEngineClosed = errors.New("bb: engine closed")
)

// RemapError converts backend errors to public API errors.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return err
}
