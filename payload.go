package rres

import "encoding/binary"

// BuildPayload assembles (propCount, props, raw) into the contiguous
// serialized form stored on disk:
//
//	LE32(propCount) || LE32(props[0]) || ... || LE32(props[n-1]) || raw
func BuildPayload(props []uint32, raw []byte) []byte {
	buf := make([]byte, 4+4*len(props)+len(raw))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(props)))
	off := 4
	for _, p := range props {
		binary.LittleEndian.PutUint32(buf[off:off+4], p)
		off += 4
	}
	copy(buf[off:], raw)
	return buf
}

// BaseSize returns the serialized-payload length for the given props/raw:
// baseSize == 4*(1+propCount) + len(raw).
func BaseSize(props []uint32, raw []byte) uint32 {
	return uint32(4*(1+len(props)) + len(raw))
}

// SplitPayload reverses BuildPayload: given a buffer of length baseSize, it
// reads propCount, bounds-checks it against the buffer length, and splits
// off the props vector from the raw remainder. Returns ErrMalformedChunk
// if the declared propCount overflows the buffer.
func SplitPayload(buf []byte) (props []uint32, raw []byte, err error) {
	if len(buf) < 4 {
		return nil, nil, ErrMalformedChunk
	}
	propCount := binary.LittleEndian.Uint32(buf[0:4])
	need := 4 + 4*uint64(propCount)
	if need > uint64(len(buf)) {
		return nil, nil, ErrMalformedChunk
	}
	props = make([]uint32, propCount)
	off := 4
	for i := range props {
		props[i] = binary.LittleEndian.Uint32(buf[off : off+4])
		off += 4
	}
	raw = buf[off:]
	return props, raw, nil
}
