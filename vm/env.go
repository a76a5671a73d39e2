// Package vm defines the boundary between the verifier and the execution
// environment that holds the transaction under verification. The verifier
// never sees a whole transaction; it issues the three read-only queries a
// restricted lock-script environment provides and treats everything behind
// them as opaque.
package vm

import (
	"github.com/kurumiimari/goshuin/gcrypto"
	"github.com/pkg/errors"
)

const (
	// MaxScriptSize bounds a loaded script record.
	MaxScriptSize = 32768
	// MaxWitnessSize bounds a loaded witness.
	MaxWitnessSize = 32768
)

var (
	// ErrIndexOutOfBound is returned by LoadWitness once the input group
	// is exhausted. It is the normal termination signal for witness
	// iteration, not a failure.
	ErrIndexOutOfBound = errors.New("index out of bound")

	// ErrInputTooLarge is returned when the environment reports data
	// beyond the fixed size bounds. It is checked before any bytes are
	// copied out.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)

// Loader supplies the transaction data the verifier may query. All calls
// are synchronous and fallible; a failing query aborts verification with
// no retry. LoadWitness indexes witnesses of the verifying script's input
// group, in ascending order.
type Loader interface {
	LoadScript() ([]byte, error)
	LoadWitness(index int) ([]byte, error)
	LoadTxHash() (gcrypto.Hash, error)
}

func IsIndexOutOfBound(err error) bool {
	return errors.Cause(err) == ErrIndexOutOfBound
}

func IsInputTooLarge(err error) bool {
	return errors.Cause(err) == ErrInputTooLarge
}
