package multisig

import (
	"bytes"
	"github.com/kurumiimari/goshuin/chain"
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/kurumiimari/goshuin/vm"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBuildMessageIgnoresSignatureBytes(t *testing.T) {
	t.Parallel()

	g := newTestGroup(t, 0, 2, 3)
	txHash := g.txHash

	makeWitness := func(fill byte) ([]byte, int, int) {
		lock := append(g.ms.Serialize(), bytes.Repeat([]byte{fill}, 2*SignatureSize)...)
		witness := (&chain.WitnessArgs{Lock: lock}).Serialize()
		r, err := chain.WitnessLockRange(witness)
		require.NoError(t, err)
		return witness, r.Offset + g.ms.ScriptLen(), 2 * SignatureSize
	}

	loader := vm.NewTxLoader(nil, txHash, [][]byte{nil})

	w1, off, n := makeWitness(0x00)
	m1, err := buildMessage(loader, txHash, w1, off, n)
	require.NoError(t, err)

	w2, off, n := makeWitness(0xab)
	m2, err := buildMessage(loader, txHash, w2, off, n)
	require.NoError(t, err)

	require.True(t, m1.Equal(m2))
	require.Len(t, m1, gcrypto.HashSize)

	// Bytes outside the signature region do contribute.
	w3, off, n := makeWitness(0x00)
	w3[4] ^= 0x01
	m3, err := buildMessage(loader, txHash, w3, off, n)
	require.NoError(t, err)
	require.False(t, m1.Equal(m3))
}

func TestBuildMessageCopiesWitness(t *testing.T) {
	t.Parallel()

	g := newTestGroup(t, 0, 1, 1)
	lock := append(g.ms.Serialize(), bytes.Repeat([]byte{0x77}, SignatureSize)...)
	witness := (&chain.WitnessArgs{Lock: lock}).Serialize()
	before := append([]byte(nil), witness...)

	r, err := chain.WitnessLockRange(witness)
	require.NoError(t, err)

	loader := vm.NewTxLoader(nil, g.txHash, [][]byte{nil})
	_, err = buildMessage(loader, g.txHash, witness, r.Offset+g.ms.ScriptLen(), SignatureSize)
	require.NoError(t, err)

	// The zeroing happens in an owned scratch buffer.
	require.Equal(t, before, witness)
}

func TestBuildMessageIncludesSiblings(t *testing.T) {
	t.Parallel()

	g := newTestGroup(t, 0, 1, 1)
	lock := append(g.ms.Serialize(), make([]byte, SignatureSize)...)
	witness := (&chain.WitnessArgs{Lock: lock}).Serialize()
	r, err := chain.WitnessLockRange(witness)
	require.NoError(t, err)
	off, n := r.Offset+g.ms.ScriptLen(), SignatureSize

	without := vm.NewTxLoader(nil, g.txHash, [][]byte{witness})
	with := vm.NewTxLoader(nil, g.txHash, [][]byte{witness, {0x01}})

	m1, err := buildMessage(without, g.txHash, witness, off, n)
	require.NoError(t, err)
	m2, err := buildMessage(with, g.txHash, witness, off, n)
	require.NoError(t, err)
	require.False(t, m1.Equal(m2))
}
