// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the 32-byte double-SHA256 identifier used
// throughout the Bitcoin consensus encoding (txid, wtxid, block hash) and
// the hashing primitives that produce it.
package chainhash

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the size, in bytes, of a Hash produced by double-SHA256.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a 32-byte double-SHA256 identifier stored in internal byte order,
// i.e. the order it appears on the wire and is fed to the hash function.
// String reverses these bytes, matching how txids and block hashes are
// traditionally displayed.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (hash Hash) String() string {
	for i := 0; i < HashSize/2; i++ {
		hash[i], hash[HashSize-1-i] = hash[HashSize-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// Bytes returns the bytes which represent the hash as a byte slice.
//
// NOTE: This makes a copy of the bytes and should have probably been named
// CloneBytes. It is generally cheaper to just slice the hash directly
// thereby reusing the same bytes rather than calling this method.
func (hash *Hash) Bytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (hash *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(hash[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil {
		return target == nil
	}
	if target == nil {
		return false
	}
	return *hash == *target
}

// NewHash returns a new Hash from a byte slice. An error is returned if the
// number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewHashFromStr creates a Hash from a hash string. The string should be the
// hexadecimal string of a byte-reversed hash, but any missing characters
// result in zero padding at the end of the Hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	if err := Decode(ret, hash); err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash
// into dst.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, len(src)+1)
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	for i, b := range reversedHash[:HashSize/2] {
		reversedHash[i], reversedHash[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	*dst = reversedHash
	return nil
}
