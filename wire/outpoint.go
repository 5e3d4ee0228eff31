// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/RCasatta/bitcoin-slices/chainhash"

// OutPoint identifies a previous transaction output being spent: the
// 32-byte txid it belongs to, in internal (little-endian) byte order, and
// its zero-based output index. It is a fixed 36-byte field with no
// CompactSize framing.
type OutPoint struct {
	hash  chainhash.Hash
	index uint32
}

// Hash returns the referenced transaction's txid, in internal byte order.
func (o OutPoint) Hash() chainhash.Hash {
	return o.hash
}

// Index returns the zero-based output index within the referenced
// transaction.
func (o OutPoint) Index() uint32 {
	return o.index
}

// ParseOutPoint reads a fixed 36-byte OutPoint from the front of b.
func ParseOutPoint(b []byte) (OutPoint, []byte, error) {
	raw, rest, err := readFixed("OutPoint.Parse", b, 36)
	if err != nil {
		return OutPoint{}, nil, err
	}
	var h chainhash.Hash
	h.SetBytes(raw[:32])
	index, _, err := readUint32LE("OutPoint.Parse", raw[32:])
	if err != nil {
		return OutPoint{}, nil, err
	}
	return OutPoint{hash: h, index: index}, rest, nil
}
