package chain

import (
	"encoding/hex"
	"encoding/json"
	"github.com/pkg/errors"
)

// HexBytes is a byte slice that marshals to a hex string in JSON, the
// representation used throughout the CLI and HTTP payloads.
type HexBytes []byte

func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return json.Marshal(nil)
	}
	return json.Marshal(b.String())
}

func (b *HexBytes) UnmarshalJSON(in []byte) error {
	var hexStr string
	if err := json.Unmarshal(in, &hexStr); err != nil {
		return errors.WithStack(err)
	}
	buf, err := hex.DecodeString(hexStr)
	if err != nil {
		return errors.WithStack(err)
	}
	*b = buf
	return nil
}
