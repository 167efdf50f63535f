// Package logging provides a minimal logging facade for bb-go.
//
// The Logger interface wraps a subset of log/slog so applications can plug in
// their own implementation for testing, redaction or integration with an
// existing logging system.
//
// # Implementations
//
//	// slog-backed, nil binds to slog.Default()
//	logger := logging.New(nil)
//
//	// zerolog-backed
//	zl := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	logger := logging.NewZerolog(zl)
//
// # Process-wide sink
//
// The native engine reports diagnostics through a C callback that has no
// access to a caller's logger. Those messages go to the process-wide sink at
// debug level:
//
//	logging.SetDefault(logging.New(slog.New(handler)))
//
// bb.Open installs Config.Logger as the sink when one is provided.
//
// # Redaction
//
// Field elements handed to the engine can be secret (private keys, blinding
// factors). Never log their bytes; use Redacted instead:
//
//	logger.Debug(ctx, "computing public key", logging.Redacted("private_key"))
package logging
