package gcrypto

import (
	"encoding/json"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestHashJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Hash
		out  string
	}{
		{
			"converts hex values",
			[]byte{0xde, 0xad, 0xbe, 0xef},
			"\"deadbeef\"",
		},
		{
			"handles empty hashes",
			[]byte{},
			"null",
		},
		{
			"handles nil hashes",
			nil,
			"null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := json.Marshal(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.out, string(j))
			var h Hash
			err = json.Unmarshal(j, &h)
			require.NoError(t, err)
			require.True(t, tt.in.Equal(h))
		})
	}
}

func TestBlake256(t *testing.T) {
	t.Parallel()

	require.Equal(
		t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		Blake256(nil).String(),
	)
	require.Len(t, Blake256([]byte("goshuin")), HashSize)
}

func TestBlake160(t *testing.T) {
	t.Parallel()

	for _, in := range [][]byte{nil, {0x00}, []byte("goshuin"), make([]byte, 1024)} {
		h := Blake160(in)
		require.Len(t, h, Hash160Size)
		require.True(t, h.Equal(Hash(Blake256(in)[:Hash160Size])))
	}
}

func TestHashIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, Hash(make([]byte, 32)).IsZero())
	require.True(t, Hash(nil).IsZero())
	require.False(t, Blake256(nil).IsZero())
}
