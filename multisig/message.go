package multisig

import (
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/kurumiimari/goshuin/vm"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// buildMessage computes the digest every signature must be recoverable
// against: blake2b-256 over the transaction hash, the first group witness
// with its signature bytes zeroed, and every later group witness in index
// order. Zeroing makes the digest independent of the signature values
// while still binding it to the full layout and to the sibling witnesses.
//
// The zeroed witness is an owned copy; the loader's buffer is never
// touched. sigOffset is absolute within the witness, sigLen was already
// bounds-checked by the lock parse.
func buildMessage(loader vm.Loader, txHash gcrypto.Hash, firstWitness []byte, sigOffset, sigLen int) (gcrypto.Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	h.Write(txHash)

	zeroed := make([]byte, len(firstWitness))
	copy(zeroed, firstWitness)
	for i := sigOffset; i < sigOffset+sigLen; i++ {
		zeroed[i] = 0
	}
	h.Write(zeroed)

	for i := 1; ; i++ {
		witness, err := loader.LoadWitness(i)
		if vm.IsIndexOutOfBound(err) {
			break
		}
		if err != nil {
			return nil, wrapLoad(err)
		}
		h.Write(witness)
	}

	return h.Sum(nil), nil
}
