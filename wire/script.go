// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "math"

// Script is a length-prefixed byte slice, used for both transaction input
// signature scripts and transaction output public key scripts. No opcode
// interpretation is performed: the bytes are exposed exactly as they appear
// on the wire, without the CompactSize length prefix that preceded them.
type Script struct {
	slice []byte
}

// Bytes returns the script's payload bytes, aliasing the original parse
// buffer. The CompactSize prefix that announced the script's length is not
// included.
func (s Script) Bytes() []byte {
	return s.slice
}

// Len returns the number of payload bytes in the script.
func (s Script) Len() int {
	return len(s.slice)
}

// ParseScript reads a CompactSize-prefixed byte slice from the front of b
// and returns the Script view together with the remainder.
func ParseScript(b []byte) (Script, []byte, error) {
	size, rest, err := ParseCompactSize(b)
	if err != nil {
		return Script{}, nil, err
	}
	// Check the declared length as a uint64 first: a length of 2^63 or more
	// would turn negative when converted to int.
	if size.N() > uint64(len(rest)) {
		needed := min(size.N()-uint64(len(rest)), math.MaxInt)
		return Script{}, nil, newEOFError("Script.Parse", 0, int(needed))
	}
	payload, rest, err := readFixed("Script.Parse", rest, int(size.N()))
	if err != nil {
		return Script{}, nil, err
	}
	return Script{slice: payload}, rest, nil
}
