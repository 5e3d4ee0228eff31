// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// CompactSize is Bitcoin's variable-length unsigned integer encoding: 1, 3,
// 5, or 9 bytes, with a mandatory shortest-form rule. A CompactSize value
// is a witness that its encoding was canonical; ParseCompactSize rejects any
// longer-than-necessary form.
type CompactSize struct {
	n       uint64
	encoded int
}

// N returns the decoded value.
func (c CompactSize) N() uint64 {
	return c.n
}

// Consumed returns the number of bytes the CompactSize itself occupied
// (1, 3, 5, or 9).
func (c CompactSize) Consumed() int {
	return c.encoded
}

// SliceLen returns the total length of a CompactSize-prefixed byte slice
// that carries c.N() payload bytes, i.e. Consumed()+N(). Useful for callers
// computing offsets of a length-prefixed field without re-deriving the
// prefix size.
func (c CompactSize) SliceLen() int {
	return c.encoded + int(c.n)
}

// ParseCompactSize reads a CompactSize from the front of b and returns it
// together with the remaining bytes. It fails if b is too short or the
// encoding is not the shortest possible form for the decoded value.
func ParseCompactSize(b []byte) (CompactSize, []byte, error) {
	if len(b) < 1 {
		return CompactSize{}, nil, newEOFError("CompactSize.Parse", 0, 1)
	}

	tag := b[0]
	switch {
	case tag < 0xFD:
		return CompactSize{n: uint64(tag), encoded: 1}, b[1:], nil

	case tag == 0xFD:
		if len(b) < 3 {
			return CompactSize{}, nil, newEOFError("CompactSize.Parse", 1, 3-len(b))
		}
		v := uint64(binary.LittleEndian.Uint16(b[1:3]))
		if v < 0xFD {
			return CompactSize{}, nil, newError("CompactSize.Parse", ErrNonCanonicalVarInt, 0)
		}
		return CompactSize{n: v, encoded: 3}, b[3:], nil

	case tag == 0xFE:
		if len(b) < 5 {
			return CompactSize{}, nil, newEOFError("CompactSize.Parse", 1, 5-len(b))
		}
		v := uint64(binary.LittleEndian.Uint32(b[1:5]))
		if v < 0x10000 {
			return CompactSize{}, nil, newError("CompactSize.Parse", ErrNonCanonicalVarInt, 0)
		}
		return CompactSize{n: v, encoded: 5}, b[5:], nil

	default: // tag == 0xFF
		if len(b) < 9 {
			return CompactSize{}, nil, newEOFError("CompactSize.Parse", 1, 9-len(b))
		}
		v := binary.LittleEndian.Uint64(b[1:9])
		if v < 0x100000000 {
			return CompactSize{}, nil, newError("CompactSize.Parse", ErrNonCanonicalVarInt, 0)
		}
		return CompactSize{n: v, encoded: 9}, b[9:], nil
	}
}

// CompactSizeLen returns the number of bytes the shortest-form CompactSize
// encoding of n occupies.
func CompactSizeLen(n uint64) int {
	switch {
	case n < 0xFD:
		return 1
	case n <= 0xFFFF:
		return 3
	case n <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// PutCompactSize encodes n in shortest form into dst, which must be at least
// CompactSizeLen(n) bytes long, and returns the number of bytes written.
func PutCompactSize(dst []byte, n uint64) int {
	switch {
	case n < 0xFD:
		dst[0] = byte(n)
		return 1
	case n <= 0xFFFF:
		dst[0] = 0xFD
		binary.LittleEndian.PutUint16(dst[1:3], uint16(n))
		return 3
	case n <= 0xFFFFFFFF:
		dst[0] = 0xFE
		binary.LittleEndian.PutUint32(dst[1:5], uint32(n))
		return 5
	default:
		dst[0] = 0xFF
		binary.LittleEndian.PutUint64(dst[1:9], n)
		return 9
	}
}
