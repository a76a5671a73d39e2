package multisig

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	"math/big"
)

// recidIndex is the position of the recovery id inside a signature.
const recidIndex = 64

// recoverPubkey parses a recoverable signature (64-byte r||s plus a
// trailing recovery id) and recovers the compressed public key that
// produced it over message.
//
// btcec expects the recovery flag in a leading header byte, so the wire
// form is re-headered before the call. r and s are range-checked against
// the curve order first: btcec folds parse and recovery failures into one
// error, and the two must map to different codes here.
func recoverPubkey(sig []byte, message []byte) ([]byte, error) {
	if len(sig) != SignatureSize {
		return nil, errors.WithStack(ErrParseSignature)
	}
	recid := sig[recidIndex]
	if recid >= 4 {
		return nil, errors.WithStack(ErrParseSignature)
	}

	curve := btcec.S256()
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if r.Sign() == 0 || s.Sign() == 0 || r.Cmp(curve.N) >= 0 || s.Cmp(curve.N) >= 0 {
		return nil, errors.WithStack(ErrParseSignature)
	}

	compact := make([]byte, SignatureSize)
	compact[0] = 27 + recid + 4 // compressed-key recovery header
	copy(compact[1:], sig[:recidIndex])

	pub, _, err := btcec.RecoverCompact(curve, compact, message)
	if err != nil {
		return nil, ErrRecoverPubkey.With(err)
	}

	out := pub.SerializeCompressed()
	if len(out) != PubkeySize {
		return nil, errors.WithStack(ErrSerializePubkey)
	}
	return out, nil
}
