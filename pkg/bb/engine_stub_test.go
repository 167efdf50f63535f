//go:build !cgo || windows || !bbnative

package bb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aztecprotocol/bb-go/pkg/bb/field"
)

func TestOpenReturnsStubError(t *testing.T) {
	eng, err := Open(Config{})
	assert.ErrorIs(t, err, ErrNotBuilt)
	assert.Nil(t, eng)
}

func TestEngineCallsRemapStubError(t *testing.T) {
	e := newEngine(Config{EnableZeroization: true})

	_, err := e.PedersenCommit([]field.Fr{{}})
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = e.PedersenHash([]field.Fr{{}}, 1)
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = e.Blake2s([]byte("abc"))
	assert.ErrorIs(t, err, ErrNotBuilt)
	_, err = e.SchnorrComputePublicKey(field.Fr{})
	assert.ErrorIs(t, err, ErrNotBuilt)
}
