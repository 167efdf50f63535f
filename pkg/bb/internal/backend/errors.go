package backend

import "errors"

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("bb/internal/backend: native bindings not built")

// ErrInvalidLogText is the panic value raised when the engine hands the log
// shim a message that is not valid UTF-8.
var ErrInvalidLogText = errors.New("bb/internal/backend: native log message is not valid UTF-8")
