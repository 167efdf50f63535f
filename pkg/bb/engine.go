package bb

import (
	"context"
	"sync/atomic"

	"github.com/aztecprotocol/bb-go/pkg/bb/codec"
	"github.com/aztecprotocol/bb-go/pkg/bb/curve"
	"github.com/aztecprotocol/bb-go/pkg/bb/field"
	"github.com/aztecprotocol/bb-go/pkg/bb/internal/backend"
	"github.com/aztecprotocol/bb-go/pkg/bb/logging"
)

// Engine is an opened handle to the native engine. Calls are synchronous and
// may be made from multiple goroutines; the engine itself holds no Go-side
// state beyond the closed flag.
type Engine struct {
	cfg    Config
	log    logging.Logger
	closed atomic.Bool
}

// Open prepares the native engine. It returns ErrNotBuilt when the binary
// was built without the native bindings.
func Open(cfg Config) (*Engine, error) {
	if !backend.Available() {
		return nil, ErrNotBuilt
	}
	if cfg.Logger != nil {
		logging.SetDefault(cfg.Logger)
	}

	e := newEngine(cfg)
	e.log.Debug(context.Background(), "engine opened", "upstream", UpstreamVersion())
	return e, nil
}

func newEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, log: cfg.logger().With("component", "bb")}
}

// Close marks the engine closed. The method is idempotent, returning
// ErrEngineClosed when called twice.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	if !e.closed.CompareAndSwap(false, true) {
		return ErrEngineClosed
	}
	return nil
}

func (e *Engine) check() error {
	if e == nil || e.closed.Load() {
		return ErrEngineClosed
	}
	return nil
}

// PedersenCommit returns the Pedersen commitment to inputs.
func (e *Engine) PedersenCommit(inputs []field.Fr) (curve.Point, error) {
	if err := e.check(); err != nil {
		return curve.Point{}, err
	}
	out, err := backend.PedersenCommit(codec.EncodeVector(inputs))
	if err != nil {
		return curve.Point{}, RemapError(err)
	}
	return curve.PointFromBuffer(out), nil
}

// PedersenHash returns the Pedersen hash of inputs using the generators
// selected by index.
func (e *Engine) PedersenHash(inputs []field.Fr, index uint32) (field.Fr, error) {
	if err := e.check(); err != nil {
		return field.Fr{}, err
	}
	out, err := backend.PedersenHash(codec.EncodeVector(inputs), index)
	if err != nil {
		return field.Fr{}, RemapError(err)
	}
	return field.FrFromBuffer(out), nil
}

// Blake2s returns the BLAKE2s digest of data as the engine's 32-byte field
// representation.
func (e *Engine) Blake2s(data []byte) (field.Fr, error) {
	if err := e.check(); err != nil {
		return field.Fr{}, err
	}
	out, err := backend.Blake2s(codec.EncodeBytes(data))
	if err != nil {
		return field.Fr{}, RemapError(err)
	}
	return field.FrFromBuffer(out), nil
}

// SchnorrComputePublicKey derives the public key point for priv.
func (e *Engine) SchnorrComputePublicKey(priv field.Fr) (curve.Point, error) {
	if err := e.check(); err != nil {
		return curve.Point{}, err
	}
	buf := priv.ToBuffer()
	if e.cfg.EnableZeroization {
		defer ZeroizeBytes(buf)
	}
	e.log.Debug(context.Background(), "computing schnorr public key", logging.Redacted("private_key"))

	out, err := backend.SchnorrComputePublicKey(buf)
	if err != nil {
		return curve.Point{}, RemapError(err)
	}
	return curve.PointFromBuffer(out), nil
}
