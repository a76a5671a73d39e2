package molecule

import "encoding/binary"

func appendUint32LE(buf []byte, v int) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return append(buf, b[:]...)
}

// SerializeBytes encodes a Bytes value: a little-endian length word
// followed by the payload.
func SerializeBytes(payload []byte) []byte {
	out := appendUint32LE(make([]byte, 0, 4+len(payload)), len(payload))
	return append(out, payload...)
}

// SerializeTable encodes a table from its already-encoded fields. An
// optional field that is absent is passed as a nil (zero-length) field.
func SerializeTable(fields ...[]byte) []byte {
	headerSize := 4 + 4*len(fields)
	fullSize := headerSize
	for _, f := range fields {
		fullSize += len(f)
	}

	out := appendUint32LE(make([]byte, 0, fullSize), fullSize)
	offset := headerSize
	for _, f := range fields {
		out = appendUint32LE(out, offset)
		offset += len(f)
	}
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}
