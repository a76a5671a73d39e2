package chain

import (
	"github.com/kurumiimari/goshuin/molecule"
)

// WitnessArgs record field indices.
const (
	witnessFieldLock       = 0
	witnessFieldInputType  = 1
	witnessFieldOutputType = 2
)

// WitnessArgs is the per-input witness record. Each field is an optional
// byte string; a nil slice means the field is absent, a non-nil slice
// (empty included) is serialized as a present Bytes value.
type WitnessArgs struct {
	Lock       HexBytes `json:"lock"`
	InputType  HexBytes `json:"input_type"`
	OutputType HexBytes `json:"output_type"`
}

func optionalBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return molecule.SerializeBytes(b)
}

func (wa *WitnessArgs) Serialize() []byte {
	return molecule.SerializeTable(
		optionalBytes(wa.Lock),
		optionalBytes(wa.InputType),
		optionalBytes(wa.OutputType),
	)
}

func cutOptionalBytes(raw []byte, index int) ([]byte, error) {
	field, err := molecule.CutTableField(raw, index)
	if err != nil {
		return nil, err
	}
	if field.Size == 0 {
		return nil, nil
	}
	payload, err := molecule.CutBytes(raw, field)
	if err != nil {
		return nil, err
	}
	// A present-but-empty field must stay distinct from an absent one.
	out := make([]byte, payload.Size)
	copy(out, payload.In(raw))
	return out, nil
}

func ParseWitnessArgs(raw []byte) (*WitnessArgs, error) {
	wa := new(WitnessArgs)
	fields := []*HexBytes{&wa.Lock, &wa.InputType, &wa.OutputType}
	for i, f := range fields {
		b, err := cutOptionalBytes(raw, i)
		if err != nil {
			return nil, err
		}
		*f = b
	}
	return wa, nil
}

// WitnessLockRange returns the absolute byte range of the lock payload
// inside a serialized witness. Callers that need to overwrite part of the
// lock in a copy of the witness use the range rather than the payload
// itself. An absent lock field is an encoding error here: a lock witness
// without a lock cannot authorize anything.
func WitnessLockRange(raw []byte) (molecule.Range, error) {
	field, err := molecule.CutTableField(raw, witnessFieldLock)
	if err != nil {
		return molecule.Range{}, err
	}
	return molecule.CutBytes(raw, field)
}
