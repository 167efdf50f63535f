// Package bb is the Go host side of the barretenberg native engine.
//
// Values cross the boundary as flat buffers. The value types live in
// subpackages:
//
//   - field: Fr and Fq, 32-byte opaque field elements
//   - curve: Point, two Fr coordinates encoded as 64 bytes
//   - codec: the Serializer/Deserializer contract and vector framing
//
// Engine wraps the native entry points. Each call encodes its inputs,
// invokes the engine synchronously, copies the result out of native memory
// and decodes it with the fixed-width constructors of the result type.
//
//	eng, err := bb.Open(bb.Config{})
//	if errors.Is(err, bb.ErrNotBuilt) {
//	    // binary built without -tags bbnative
//	}
//	defer eng.Close()
//
//	pub, err := eng.SchnorrComputePublicKey(priv)
//
// The cryptographic algorithms themselves run entirely inside the engine.
package bb
