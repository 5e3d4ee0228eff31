// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// readUint32LE reads a little-endian uint32 from the front of b.
func readUint32LE(funcName string, b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, newEOFError(funcName, 0, 4-len(b))
	}
	return binary.LittleEndian.Uint32(b[:4]), b[4:], nil
}

// readUint64LE reads a little-endian uint64 from the front of b.
func readUint64LE(funcName string, b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, newEOFError(funcName, 0, 8-len(b))
	}
	return binary.LittleEndian.Uint64(b[:8]), b[8:], nil
}

// readInt32LE reads a little-endian, two's-complement int32 from the front
// of b. Used for the transaction version field, the only signed fixed-width
// field in the consensus encoding.
func readInt32LE(funcName string, b []byte) (int32, []byte, error) {
	v, rest, err := readUint32LE(funcName, b)
	if err != nil {
		return 0, nil, err
	}
	return int32(v), rest, nil
}

// readFixed returns the first n bytes of b and the remainder, failing if b
// is shorter than n. The returned subslice aliases b; it is never copied.
func readFixed(funcName string, b []byte, n int) ([]byte, []byte, error) {
	if len(b) < n {
		return nil, nil, newEOFError(funcName, 0, n-len(b))
	}
	return b[:n], b[n:], nil
}
