// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/RCasatta/bitcoin-slices/chainhash"

// blockHeaderLen is the fixed size, in bytes, of a serialized BlockHeader:
// version(4) || prev_block(32) || merkle_root(32) || time(4) || bits(4) ||
// nonce(4).
const blockHeaderLen = 80

// BlockHeader is the fixed 80-byte header preceding a block's transactions.
type BlockHeader struct {
	raw []byte
}

// Version returns the header's version field.
func (h BlockHeader) Version() int32 {
	v, _, _ := readInt32LE("BlockHeader.Version", h.raw[0:4])
	return v
}

// PrevBlock returns the hash of the previous block in the chain, in
// internal byte order.
func (h BlockHeader) PrevBlock() chainhash.Hash {
	var hash chainhash.Hash
	hash.SetBytes(h.raw[4:36])
	return hash
}

// MerkleRoot returns the root of the block's transaction merkle tree, in
// internal byte order.
func (h BlockHeader) MerkleRoot() chainhash.Hash {
	var hash chainhash.Hash
	hash.SetBytes(h.raw[36:68])
	return hash
}

// Timestamp returns the block's timestamp field, seconds since the Unix
// epoch as recorded on the wire (not validated against any clock).
func (h BlockHeader) Timestamp() uint32 {
	v, _, _ := readUint32LE("BlockHeader.Timestamp", h.raw[68:72])
	return v
}

// Bits returns the header's compacted proof-of-work target.
func (h BlockHeader) Bits() uint32 {
	v, _, _ := readUint32LE("BlockHeader.Bits", h.raw[72:76])
	return v
}

// Nonce returns the header's proof-of-work nonce.
func (h BlockHeader) Nonce() uint32 {
	v, _, _ := readUint32LE("BlockHeader.Nonce", h.raw[76:80])
	return v
}

// Bytes returns the header's 80-byte serialization, aliasing the buffer it
// was parsed from.
func (h BlockHeader) Bytes() []byte {
	return h.raw
}

// BlockHash returns the header's identifying hash: double-SHA256 of its
// 80 bytes, in internal byte order.
func (h BlockHeader) BlockHash() chainhash.Hash {
	return chainhash.DoubleHashH(h.raw)
}

// ParseBlockHeader reads the fixed 80-byte header from the front of b.
func ParseBlockHeader(b []byte) (BlockHeader, []byte, error) {
	raw, rest, err := readFixed("BlockHeader.Parse", b, blockHeaderLen)
	if err != nil {
		return BlockHeader{}, nil, err
	}
	return BlockHeader{raw: raw}, rest, nil
}
