package testutil

import (
	"bytes"
	"github.com/btcsuite/btcd/btcec"
)

// PrivKey returns a deterministic secp256k1 key for a test fixture. The
// seed byte must be nonzero and below 0xff so the repeated scalar stays
// inside the curve order.
func PrivKey(seed byte) *btcec.PrivateKey {
	if seed == 0 || seed == 0xff {
		panic("fixture seed must be in [1, 0xfe]")
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), bytes.Repeat([]byte{seed}, 32))
	return priv
}

// CompressedPubkey returns the 33-byte compressed key for a fixture seed.
func CompressedPubkey(seed byte) []byte {
	return PrivKey(seed).PubKey().SerializeCompressed()
}

// SignRecoverable signs message and returns the signature in wire form:
// 64-byte r||s followed by a one-byte recovery id. btcec emits the
// recovery flag as a leading header byte, which is stripped back out
// here.
func SignRecoverable(priv *btcec.PrivateKey, message []byte) []byte {
	compact, err := btcec.SignCompact(btcec.S256(), priv, message, true)
	if err != nil {
		panic(err)
	}
	out := make([]byte, 65)
	copy(out, compact[1:])
	out[64] = compact[0] - 27 - 4
	return out
}
