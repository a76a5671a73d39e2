package chain

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWitnessArgsRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wa   *WitnessArgs
	}{
		{
			"lock only",
			&WitnessArgs{Lock: bytes.Repeat([]byte{0x5a}, 100)},
		},
		{
			"all fields",
			&WitnessArgs{
				Lock:       []byte{0x01},
				InputType:  []byte{0x02, 0x03},
				OutputType: []byte{},
			},
		},
		{
			"all absent",
			&WitnessArgs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.wa.Serialize()
			parsed, err := ParseWitnessArgs(raw)
			require.NoError(t, err)
			require.Equal(t, tt.wa, parsed)
		})
	}
}

func TestWitnessLockRange(t *testing.T) {
	t.Parallel()

	lock := bytes.Repeat([]byte{0xab}, 37)
	wa := &WitnessArgs{Lock: lock, InputType: []byte{0x01}}
	raw := wa.Serialize()

	r, err := WitnessLockRange(raw)
	require.NoError(t, err)
	require.Equal(t, len(lock), r.Size)
	require.Equal(t, lock, raw[r.Offset:r.End()])

	// Lock begins right after the three-field offset header plus the
	// Bytes length word.
	require.Equal(t, 16+4, r.Offset)
}

func TestWitnessLockRangeAbsent(t *testing.T) {
	t.Parallel()

	raw := (&WitnessArgs{InputType: []byte{0x01}}).Serialize()
	_, err := WitnessLockRange(raw)
	require.Error(t, err)
}

func TestParseWitnessArgsMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseWitnessArgs([]byte{0x01, 0x02})
	require.Error(t, err)

	// Declared Bytes length overflowing its field.
	raw := (&WitnessArgs{Lock: []byte{0x01, 0x02}}).Serialize()
	raw[16] = 0xff
	_, err = ParseWitnessArgs(raw)
	require.Error(t, err)
}
