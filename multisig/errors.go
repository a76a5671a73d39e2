package multisig

import (
	"fmt"
	"github.com/kurumiimari/goshuin/vm"
)

// Verification failures form a closed set of coded errors. The code is
// the process exit status of the verifier and the only externally visible
// outcome; descriptions exist for operators running the tooling, not for
// the verification protocol, which deliberately reports nothing beyond
// the code.
type Error struct {
	Code  int
	Desc  string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (code %d): %s", e.Desc, e.Code, e.cause.Error())
	}
	return fmt.Sprintf("%s (code %d)", e.Desc, e.Code)
}

// Cause supports pkg/errors unwrapping.
func (e *Error) Cause() error {
	return e.cause
}

// With returns a copy of the error carrying an underlying cause. The
// original registered value stays immutable so comparisons against it via
// Is remain valid.
func (e *Error) With(cause error) *Error {
	return &Error{Code: e.Code, Desc: e.Desc, cause: cause}
}

// Is reports whether err is this coded error, looking through wrapping.
func (e *Error) Is(err error) bool {
	for err != nil {
		if ce, ok := err.(*Error); ok {
			return ce.Code == e.Code
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return false
}

func register(code int, desc string) *Error {
	return &Error{Code: code, Desc: desc}
}

// Exit codes are stable: external tooling keys off them for diagnostics.
var (
	// ErrArgumentsLen: the script args are not a 20-byte commitment.
	ErrArgumentsLen = register(1, "script args must be a 20-byte multisig hash")
	// ErrEncoding: a script or witness record failed structured decoding.
	ErrEncoding = register(2, "mal-formed record encoding")
	// ErrLoadFailed: an environment query failed for a reason other than
	// the benign end-of-group signal.
	ErrLoadFailed = register(3, "environment data load failed")
	// ErrInputTooLarge: the environment reported data over the fixed
	// size bounds.
	ErrInputTooLarge = register(4, "input exceeds maximum size")

	// ErrRecoverPubkey: public key recovery from a signature failed.
	ErrRecoverPubkey = register(11, "cannot recover pubkey from signature")
	// ErrParseSignature: a recoverable signature is structurally invalid.
	ErrParseSignature = register(12, "mal-formed recoverable signature")
	// ErrSerializePubkey: a recovered key did not serialize to 33 bytes.
	ErrSerializePubkey = register(13, "cannot serialize recovered pubkey")

	// ErrWitnessTooShort: the lock field cannot hold the flags header.
	ErrWitnessTooShort = register(21, "witness lock shorter than flags header")
	// ErrInvalidPubkeyCount: the layout declares zero public keys.
	ErrInvalidPubkeyCount = register(22, "pubkey count must be nonzero")
	// ErrInvalidThreshold: the threshold exceeds the pubkey count.
	ErrInvalidThreshold = register(23, "threshold exceeds pubkey count")
	// ErrInvalidRequireFirstN: require-first-n exceeds the threshold.
	ErrInvalidRequireFirstN = register(24, "require-first-n exceeds threshold")
	// ErrWitnessLenMismatch: the lock field length is not exactly
	// 4 + 33*N + 65*M.
	ErrWitnessLenMismatch = register(25, "witness lock length mismatch")

	// ErrMultisigScriptHash: the layout hash does not match the script
	// args commitment.
	ErrMultisigScriptHash = register(31, "multisig script hash mismatch")
	// ErrVerification: a signature matched no unused pubkey.
	ErrVerification = register(32, "signature matches no unused pubkey")
	// ErrRequiredSignerMissing: a position inside the required prefix
	// has no signature.
	ErrRequiredSignerMissing = register(33, "required signer missing")
)

// ExitCode maps a verification result to the process exit status. Coded
// errors carry their own code; any other failure is an environment error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	cur := err
	for cur != nil {
		if ce, ok := cur.(*Error); ok {
			return ce.Code
		}
		cause, ok := cur.(interface{ Cause() error })
		if !ok {
			break
		}
		cur = cause.Cause()
	}
	return ErrLoadFailed.Code
}

// wrapLoad classifies an environment query failure. Oversize inputs get
// their own code; everything else propagates verbatim and maps to the
// generic load failure at exit time.
func wrapLoad(err error) error {
	if vm.IsInputTooLarge(err) {
		return ErrInputTooLarge.With(err)
	}
	return err
}
