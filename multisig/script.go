package multisig

import (
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/pkg/errors"
)

const (
	// FlagsSize is the S|R|M|N header length.
	FlagsSize = 4
	// PubkeySize is a compressed secp256k1 public key.
	PubkeySize = 33
	// SignatureSize is a recoverable signature: 64-byte compact form
	// plus a trailing recovery id.
	SignatureSize = 65
)

// MultisigScript is the decoded S|R|M|N layout plus the ordered pubkey
// list. Threshold is stored normalized: an encoded zero means "require
// every key" and becomes the pubkey count during parsing.
type MultisigScript struct {
	Reserved      uint8
	RequireFirstN uint8
	Threshold     uint8
	Pubkeys       [][]byte
}

// NewMultisigScript builds a layout from explicit parameters, applying
// the same invariants parsing enforces. Used by tooling that produces the
// on-chain commitment; the verifier itself only ever parses.
func NewMultisigScript(requireFirstN, threshold uint8, pubkeys [][]byte) (*MultisigScript, error) {
	if len(pubkeys) == 0 || len(pubkeys) > 255 {
		return nil, errors.WithStack(ErrInvalidPubkeyCount)
	}
	for _, pk := range pubkeys {
		if len(pk) != PubkeySize {
			return nil, errors.Errorf("pubkey must be %d bytes, got %d", PubkeySize, len(pk))
		}
	}
	if int(threshold) > len(pubkeys) {
		return nil, errors.WithStack(ErrInvalidThreshold)
	}
	if threshold == 0 {
		threshold = uint8(len(pubkeys))
	}
	if requireFirstN > threshold {
		return nil, errors.WithStack(ErrInvalidRequireFirstN)
	}

	return &MultisigScript{
		RequireFirstN: requireFirstN,
		Threshold:     threshold,
		Pubkeys:       pubkeys,
	}, nil
}

func (ms *MultisigScript) PubkeyCount() int {
	return len(ms.Pubkeys)
}

// ScriptLen is the encoded layout length, header plus pubkeys.
func (ms *MultisigScript) ScriptLen() int {
	return FlagsSize + PubkeySize*ms.PubkeyCount()
}

// WitnessLen is the exact lock-field length the layout demands once its
// threshold's worth of signatures is appended.
func (ms *MultisigScript) WitnessLen() int {
	return ms.ScriptLen() + SignatureSize*int(ms.Threshold)
}

func (ms *MultisigScript) Serialize() []byte {
	out := make([]byte, 0, ms.ScriptLen())
	out = append(out, ms.Reserved, ms.RequireFirstN, ms.Threshold, uint8(ms.PubkeyCount()))
	for _, pk := range ms.Pubkeys {
		out = append(out, pk...)
	}
	return out
}

// Hash is the blake160 commitment carried in the script args.
func (ms *MultisigScript) Hash() gcrypto.Hash {
	return gcrypto.Blake160(ms.Serialize())
}

// WitnessLock is a parsed lock field: the multisig script followed by
// exactly Threshold signatures. raw keeps the original bytes so hashing
// covers the encoding that was actually supplied, not a re-serialization.
type WitnessLock struct {
	Script     *MultisigScript
	Signatures [][]byte

	raw []byte
}

// ScriptBytes returns the raw layout prefix the commitment hash covers.
func (wl *WitnessLock) ScriptBytes() []byte {
	return wl.raw[:wl.Script.ScriptLen()]
}

// SignaturesOffset is where the signatures begin inside the lock field.
func (wl *WitnessLock) SignaturesOffset() int {
	return wl.Script.ScriptLen()
}

// SignaturesLen is the byte length of the signature region.
func (wl *WitnessLock) SignaturesLen() int {
	return SignatureSize * int(wl.Script.Threshold)
}

// ParseWitnessLock decodes and validates a lock field. Checks run in a
// fixed order so a given malformed input always fails with the same code:
// header presence, pubkey count, threshold bound, threshold
// normalization, require-first-n bound, then the strict length equality.
// The reserved byte is read but never validated; future protocol
// revisions may assign it meaning.
func ParseWitnessLock(lock []byte) (*WitnessLock, error) {
	if len(lock) < FlagsSize {
		return nil, errors.WithStack(ErrWitnessTooShort)
	}

	reserved := lock[0]
	requireFirstN := lock[1]
	threshold := lock[2]
	pubkeyCount := lock[3]

	if pubkeyCount == 0 {
		return nil, errors.WithStack(ErrInvalidPubkeyCount)
	}
	if threshold > pubkeyCount {
		return nil, errors.WithStack(ErrInvalidThreshold)
	}
	if threshold == 0 {
		threshold = pubkeyCount
	}
	if requireFirstN > threshold {
		return nil, errors.WithStack(ErrInvalidRequireFirstN)
	}

	ms := &MultisigScript{
		Reserved:      reserved,
		RequireFirstN: requireFirstN,
		Threshold:     threshold,
	}

	// Strict equality: trailing bytes after the last signature would
	// otherwise be a free injection channel into the signed message.
	expectedLen := FlagsSize + PubkeySize*int(pubkeyCount) + SignatureSize*int(threshold)
	if len(lock) != expectedLen {
		return nil, errors.WithStack(ErrWitnessLenMismatch)
	}

	ms.Pubkeys = make([][]byte, pubkeyCount)
	for i := 0; i < int(pubkeyCount); i++ {
		off := FlagsSize + PubkeySize*i
		ms.Pubkeys[i] = lock[off : off+PubkeySize]
	}

	sigs := make([][]byte, threshold)
	sigBase := ms.ScriptLen()
	for i := 0; i < int(threshold); i++ {
		off := sigBase + SignatureSize*i
		sigs[i] = lock[off : off+SignatureSize]
	}

	return &WitnessLock{
		Script:     ms,
		Signatures: sigs,
		raw:        lock,
	}, nil
}
