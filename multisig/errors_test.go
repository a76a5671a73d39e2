package multisig

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 31, ExitCode(ErrMultisigScriptHash))
	require.Equal(t, 31, ExitCode(errors.Wrap(ErrMultisigScriptHash, "outer context")))
	require.Equal(t, 12, ExitCode(ErrParseSignature.With(errors.New("recid"))))

	// Non-coded failures are environment errors.
	require.Equal(t, 3, ExitCode(errors.New("connection reset")))
}

func TestErrorIs(t *testing.T) {
	t.Parallel()

	require.True(t, ErrVerification.Is(ErrVerification))
	require.True(t, ErrVerification.Is(errors.Wrap(ErrVerification, "ctx")))
	require.True(t, ErrVerification.Is(ErrVerification.With(errors.New("cause"))))
	require.False(t, ErrVerification.Is(ErrRequiredSignerMissing))
	require.False(t, ErrVerification.Is(nil))
	require.False(t, ErrVerification.Is(errors.New("other")))
}

func TestErrorStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "required signer missing (code 33)", ErrRequiredSignerMissing.Error())
	wrapped := ErrEncoding.With(errors.New("bad offsets"))
	require.Equal(t, "mal-formed record encoding (code 2): bad offsets", wrapped.Error())
	require.Equal(t, "bad offsets", wrapped.Cause().Error())
}

func TestErrorCodesAreDistinct(t *testing.T) {
	t.Parallel()

	all := []*Error{
		ErrArgumentsLen, ErrEncoding, ErrLoadFailed, ErrInputTooLarge,
		ErrRecoverPubkey, ErrParseSignature, ErrSerializePubkey,
		ErrWitnessTooShort, ErrInvalidPubkeyCount, ErrInvalidThreshold,
		ErrInvalidRequireFirstN, ErrWitnessLenMismatch,
		ErrMultisigScriptHash, ErrVerification, ErrRequiredSignerMissing,
	}
	seen := make(map[int]string)
	for _, e := range all {
		require.NotZero(t, e.Code)
		require.NotContains(t, seen, e.Code)
		seen[e.Code] = e.Desc
	}
}
