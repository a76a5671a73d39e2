package vm

import (
	"encoding/json"
	"github.com/kurumiimari/goshuin/chain"
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/pkg/errors"
)

// TxLoader is an in-memory Loader over one input group of a transaction:
// the verifying script, the transaction hash, and the group's witnesses in
// index order. Loads hand out copies so callers can never alias the
// loader's buffers.
type TxLoader struct {
	script    []byte
	txHash    gcrypto.Hash
	witnesses [][]byte
}

func NewTxLoader(script []byte, txHash gcrypto.Hash, witnesses [][]byte) *TxLoader {
	return &TxLoader{
		script:    script,
		txHash:    txHash,
		witnesses: witnesses,
	}
}

func (l *TxLoader) LoadScript() ([]byte, error) {
	if len(l.script) > MaxScriptSize {
		return nil, errors.WithStack(ErrInputTooLarge)
	}
	out := make([]byte, len(l.script))
	copy(out, l.script)
	return out, nil
}

func (l *TxLoader) LoadWitness(index int) ([]byte, error) {
	if index < 0 || index >= len(l.witnesses) {
		return nil, errors.WithStack(ErrIndexOutOfBound)
	}
	w := l.witnesses[index]
	if len(w) > MaxWitnessSize {
		return nil, errors.WithStack(ErrInputTooLarge)
	}
	out := make([]byte, len(w))
	copy(out, w)
	return out, nil
}

func (l *TxLoader) LoadTxHash() (gcrypto.Hash, error) {
	if len(l.txHash) != gcrypto.HashSize {
		return nil, errors.Errorf("tx hash must be %d bytes, got %d", gcrypto.HashSize, len(l.txHash))
	}
	return append(gcrypto.Hash(nil), l.txHash...), nil
}

// TxGroup is the JSON document the CLI and HTTP surfaces accept: the lock
// script as a structured record, the transaction hash, and the group's
// witnesses as hex strings.
type TxGroup struct {
	Script    *chain.Script    `json:"script"`
	TxHash    gcrypto.Hash     `json:"tx_hash"`
	Witnesses []chain.HexBytes `json:"witnesses"`
}

func (g *TxGroup) Loader() (*TxLoader, error) {
	if g.Script == nil {
		return nil, errors.New("missing script")
	}
	script, err := g.Script.Serialize()
	if err != nil {
		return nil, err
	}
	witnesses := make([][]byte, len(g.Witnesses))
	for i, w := range g.Witnesses {
		witnesses[i] = w
	}
	return NewTxLoader(script, g.TxHash, witnesses), nil
}

func ParseTxGroup(data []byte) (*TxGroup, error) {
	group := new(TxGroup)
	if err := json.Unmarshal(data, group); err != nil {
		return nil, errors.Wrap(err, "mal-formed transaction group")
	}
	return group, nil
}
