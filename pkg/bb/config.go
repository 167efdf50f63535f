package bb

import "github.com/aztecprotocol/bb-go/pkg/bb/logging"

// Config holds the knobs used when opening the native engine.
type Config struct {
	// Logger receives Engine diagnostics and, once installed as the
	// process-wide sink, messages the native engine emits through logstr.
	// Nil keeps the current logging.Default().
	Logger logging.Logger

	// EnableZeroization clears temporary copies of secret inputs (private
	// keys) after each engine call.
	EnableZeroization bool
}

func (c Config) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Default()
}
