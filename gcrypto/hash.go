package gcrypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"io"
)

const (
	// HashSize is the size of a full blake2b-256 digest.
	HashSize = 32
	// Hash160Size is the size of a truncated digest used as a script
	// commitment.
	Hash160Size = 20
)

type Hash []byte

func (h Hash) IsZero() bool {
	for _, b := range h {
		if b != 0x00 {
			return false
		}
	}
	return true
}

func (h Hash) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h)
	return int64(n), err
}

func (h Hash) String() string {
	return hex.EncodeToString(h)
}

func (h Hash) MarshalJSON() ([]byte, error) {
	if len(h) == 0 {
		return json.Marshal(nil)
	}
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var hexStr string
	if err := json.Unmarshal(b, &hexStr); err != nil {
		return errors.WithStack(err)
	}
	buf, err := hex.DecodeString(hexStr)
	if err != nil {
		return errors.WithStack(err)
	}
	*h = buf
	return nil
}

func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h, other)
}

func Blake256(in []byte) Hash {
	buf := blake2b.Sum256(in)
	return buf[:]
}

// Blake160 is the leading 20 bytes of the blake2b-256 digest. Note that
// this is a truncation of the 32-byte digest, not a blake2b instance
// parameterized with a 20-byte digest size - the two are different
// functions.
func Blake160(in []byte) Hash {
	return Blake256(in)[:Hash160Size]
}
