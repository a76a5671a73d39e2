package chain

import (
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/kurumiimari/goshuin/molecule"
	"github.com/pkg/errors"
)

// Script record field indices.
const (
	scriptFieldCodeHash = 0
	scriptFieldHashType = 1
	scriptFieldArgs     = 2
)

var ErrMalformedScript = errors.New("mal-formed script record")

// Script is the on-chain record identifying a lock: the code hash and hash
// type select the verifier, the args carry its committed parameters. For a
// multisig lock the args are the 20-byte blake160 of the multisig script.
type Script struct {
	CodeHash gcrypto.Hash `json:"code_hash"`
	HashType uint8        `json:"hash_type"`
	Args     HexBytes     `json:"args"`
}

func (s *Script) Serialize() ([]byte, error) {
	if len(s.CodeHash) != gcrypto.HashSize {
		return nil, errors.Wrap(ErrMalformedScript, "code hash must be 32 bytes")
	}
	return molecule.SerializeTable(
		s.CodeHash,
		[]byte{s.HashType},
		molecule.SerializeBytes(s.Args),
	), nil
}

func ParseScript(raw []byte) (*Script, error) {
	codeHash, err := molecule.CutTableField(raw, scriptFieldCodeHash)
	if err != nil {
		return nil, err
	}
	if codeHash.Size != gcrypto.HashSize {
		return nil, errors.WithStack(ErrMalformedScript)
	}
	hashType, err := molecule.CutTableField(raw, scriptFieldHashType)
	if err != nil {
		return nil, err
	}
	if hashType.Size != 1 {
		return nil, errors.WithStack(ErrMalformedScript)
	}
	args, err := ScriptArgs(raw)
	if err != nil {
		return nil, err
	}

	return &Script{
		CodeHash: append(gcrypto.Hash(nil), codeHash.In(raw)...),
		HashType: hashType.In(raw)[0],
		Args:     append(HexBytes(nil), args...),
	}, nil
}

// ScriptArgs cuts the args payload out of a serialized script record
// without decoding the rest. The returned slice aliases raw.
func ScriptArgs(raw []byte) ([]byte, error) {
	field, err := molecule.CutTableField(raw, scriptFieldArgs)
	if err != nil {
		return nil, err
	}
	payload, err := molecule.CutBytes(raw, field)
	if err != nil {
		return nil, err
	}
	return payload.In(raw), nil
}
