package backend

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/aztecprotocol/bb-go/pkg/bb/logging"
)

// forwardLog sends a message emitted by the native engine to the
// process-wide sink at debug level. A message that is not valid UTF-8 means
// the boundary protocol is broken; it panics and is not meant to be
// recovered.
func forwardLog(msg []byte) {
	if !utf8.Valid(msg) {
		panic(fmt.Errorf("%w (%d bytes)", ErrInvalidLogText, len(msg)))
	}
	logging.Default().Debug(context.Background(), string(msg), "source", "native")
}
