// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"io"
)

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// DoubleHashParts calculates hash(hash(p0 || p1 || p2)) without requiring the
// caller to first concatenate the parts into a single contiguous buffer. This
// is what lets the transaction legacy preimage (version, inputs+outputs,
// locktime) be hashed directly from its three non-contiguous borrowed
// ranges.
func DoubleHashParts(parts ...[]byte) Hash {
	h := sha256.New()
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		// sha256.digest.Write never returns an error.
		_, _ = h.Write(p)
	}
	buf := make([]byte, 0, HashSize)
	first := h.Sum(buf)
	h.Reset()
	h.Write(first)
	res := h.Sum(buf)
	var out Hash
	copy(out[:], res)
	return out
}

// DoubleHashRaw calculates hash(hash(w)) where w is the resulting bytes from
// the given serialize function and returns the resulting bytes as a Hash.
func DoubleHashRaw(serialize func(w io.Writer) error) (Hash, error) {
	h := sha256.New()
	if err := serialize(h); err != nil {
		return Hash{}, err
	}

	buf := make([]byte, 0, HashSize)
	first := h.Sum(buf)
	h.Reset()
	h.Write(first)
	res := h.Sum(buf)
	var out Hash
	copy(out[:], res)
	return out, nil
}
