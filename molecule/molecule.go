// Package molecule implements the subset of the molecule container
// encoding needed to cut fields out of serialized Script and WitnessArgs
// records: dynamic tables whose fields are addressed by a little-endian
// offset header, and Bytes payloads carrying their own length prefix.
//
// The reader is offset-based rather than stream-based because callers need
// the absolute position of a field inside the enclosing buffer, not just
// its contents. Every access is bounds-checked; malformed input is
// reported as an error, never a panic.
package molecule

import (
	"encoding/binary"
	"github.com/pkg/errors"
)

var (
	ErrTruncated    = errors.New("buffer smaller than encoding header")
	ErrSizeMismatch = errors.New("declared size does not match buffer size")
	ErrBadOffsets   = errors.New("malformed field offsets")
	ErrNoField      = errors.New("field index out of range")
)

// Range is a byte range inside an enclosing buffer. Offsets are absolute
// with respect to the buffer the range was cut from.
type Range struct {
	Offset int
	Size   int
}

func (r Range) End() int {
	return r.Offset + r.Size
}

// In returns the bytes the range addresses within buf. The range must have
// come from a cut on the same buffer.
func (r Range) In(buf []byte) []byte {
	return buf[r.Offset:r.End()]
}

func readUint32LE(buf []byte, off int) int {
	return int(binary.LittleEndian.Uint32(buf[off : off+4]))
}

// CutTableField returns the byte range of the index-th field of a table
// encoded in buf. The whole offset header is validated even when only one
// field is wanted, so a table accepted here is structurally sound for any
// later cut.
func CutTableField(buf []byte, index int) (Range, error) {
	if len(buf) < 4 {
		return Range{}, errors.WithStack(ErrTruncated)
	}
	fullSize := readUint32LE(buf, 0)
	if fullSize != len(buf) {
		return Range{}, errors.WithStack(ErrSizeMismatch)
	}
	if fullSize < 8 {
		// A table with at least one field needs the full-size word
		// plus one offset word.
		return Range{}, errors.WithStack(ErrBadOffsets)
	}

	firstOffset := readUint32LE(buf, 4)
	if firstOffset%4 != 0 || firstOffset < 8 || firstOffset > fullSize {
		return Range{}, errors.WithStack(ErrBadOffsets)
	}
	fieldCount := firstOffset/4 - 1
	if index < 0 || index >= fieldCount {
		return Range{}, errors.WithStack(ErrNoField)
	}

	offsets := make([]int, fieldCount+1)
	for i := 0; i < fieldCount; i++ {
		offsets[i] = readUint32LE(buf, 4+4*i)
	}
	offsets[fieldCount] = fullSize
	for i := 0; i < fieldCount; i++ {
		if offsets[i] > offsets[i+1] {
			return Range{}, errors.WithStack(ErrBadOffsets)
		}
	}

	return Range{
		Offset: offsets[index],
		Size:   offsets[index+1] - offsets[index],
	}, nil
}

// CutBytes resolves a table field known to hold a Bytes value and returns
// the range of its payload. The declared payload length must account for
// the field size exactly; trailing bytes inside the field are rejected.
func CutBytes(buf []byte, field Range) (Range, error) {
	if field.Offset < 0 || field.End() > len(buf) || field.Size < 4 {
		return Range{}, errors.WithStack(ErrTruncated)
	}
	payloadLen := readUint32LE(buf, field.Offset)
	if payloadLen != field.Size-4 {
		return Range{}, errors.WithStack(ErrSizeMismatch)
	}
	return Range{
		Offset: field.Offset + 4,
		Size:   payloadLen,
	}, nil
}
