// Package multisig verifies an M-of-N threshold multisig lock against a
// committed script hash. The routine is deterministic and single-pass:
// every check is a hard gate, the first failure wins, and the only
// externally visible outcome is an exit code from the closed error set.
package multisig

import (
	"bytes"
	"github.com/kurumiimari/goshuin/chain"
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/kurumiimari/goshuin/vm"
)

// Verify authorizes one input group. It loads the verifying script's args
// (the 20-byte layout commitment), parses the multisig lock out of the
// group's first witness, checks the layout against the commitment,
// reconstructs the signed message, and matches every supplied signature
// against the pubkey list under the threshold and require-first-n rules.
func Verify(loader vm.Loader) error {
	script, err := loader.LoadScript()
	if err != nil {
		return wrapLoad(err)
	}
	args, err := chain.ScriptArgs(script)
	if err != nil {
		return ErrEncoding.With(err)
	}
	if len(args) != gcrypto.Hash160Size {
		return ErrArgumentsLen
	}

	witness, err := loader.LoadWitness(0)
	if err != nil {
		// A group with no witness at all cannot be authorized; the
		// out-of-bound signal is benign only past the first index.
		return wrapLoad(err)
	}
	lockRange, err := chain.WitnessLockRange(witness)
	if err != nil {
		return ErrEncoding.With(err)
	}

	lock, err := ParseWitnessLock(lockRange.In(witness))
	if err != nil {
		return err
	}

	if !bytes.Equal(args, gcrypto.Blake160(lock.ScriptBytes())) {
		return ErrMultisigScriptHash
	}

	txHash, err := loader.LoadTxHash()
	if err != nil {
		return wrapLoad(err)
	}

	message, err := buildMessage(
		loader,
		txHash,
		witness,
		lockRange.Offset+lock.SignaturesOffset(),
		lock.SignaturesLen(),
	)
	if err != nil {
		return err
	}

	return matchSignatures(message, lock.Script, lock.Signatures)
}

// matchSignatures greedily claims one pubkey position per signature. A
// position can back at most one signature, and signatures may arrive in
// any order; only the final mask state decides whether the required
// prefix signed.
func matchSignatures(message gcrypto.Hash, ms *MultisigScript, sigs [][]byte) error {
	used := make([]bool, ms.PubkeyCount())

	for _, sig := range sigs {
		pubkey, err := recoverPubkey(sig, message)
		if err != nil {
			return err
		}

		matched := false
		for i, candidate := range ms.Pubkeys {
			if used[i] {
				continue
			}
			if !bytes.Equal(candidate, pubkey) {
				continue
			}
			used[i] = true
			matched = true
			break
		}
		if !matched {
			return ErrVerification
		}
	}

	for i := 0; i < int(ms.RequireFirstN); i++ {
		if !used[i] {
			return ErrRequiredSignerMissing
		}
	}

	return nil
}
