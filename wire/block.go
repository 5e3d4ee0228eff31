// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"iter"

	"github.com/RCasatta/bitcoin-slices/chainhash"
)

// Block is a parsed header followed by its transactions. ParseBlock always
// walks every transaction once, structurally, to validate that the
// declared transaction count matches the number actually present. That
// walk allocates each parsed *Transaction and a slice holding them all,
// but the Block does not retain them once ParseBlock returns. Use
// AllTransactions for an eagerly materialized slice, or Transactions for a
// lazy traversal that parses one transaction at a time.
type Block struct {
	raw    []byte
	header BlockHeader
	count  CompactSize
	txData []byte
}

// Header returns the block's 80-byte header.
func (blk *Block) Header() BlockHeader {
	return blk.header
}

// TxCount returns the declared number of transactions, as parsed from the
// block's CompactSize count field.
func (blk *Block) TxCount() uint64 {
	return blk.count.N()
}

// Bytes returns the block's full serialization, aliasing the buffer it was
// parsed from.
func (blk *Block) Bytes() []byte {
	return blk.raw
}

// BlockHash returns double-SHA256 of the 80-byte header, in internal byte
// order.
func (blk *Block) BlockHash() chainhash.Hash {
	return blk.header.BlockHash()
}

// AllTransactions eagerly parses and returns every transaction in the
// block. Unlike Transactions, this materializes the full slice up front;
// prefer it when the caller will visit every transaction anyway.
func (blk *Block) AllTransactions() ([]*Transaction, error) {
	txs, _, err := parseTransactions(blk.txData, blk.count.N(), newDispatch(nil))
	return txs, err
}

// Transactions returns a lazy, range-over-func iterator over the block's
// transactions: each is parsed only when the loop demands it, and nothing
// beyond the transaction currently in hand is retained. Breaking out of
// the range early avoids parsing the remainder of the block at all.
func (blk *Block) Transactions() iter.Seq2[*Transaction, error] {
	return func(yield func(*Transaction, error) bool) {
		rest := blk.txData
		d := newDispatch(nil)
		n := blk.count.N()
		for i := uint64(0); i < n; i++ {
			tx, next, err := parseTransaction(rest, d)
			if err != nil {
				yield(nil, err)
				return
			}
			rest = next
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// ParseBlock reads a header, a CompactSize transaction count, and exactly
// that many transactions from the front of b. visitor may be nil; its
// hooks fire in document order: block begin, header, tx count, then each
// transaction (and, within each, its inputs, outputs, and witnesses).
func ParseBlock(b []byte, visitor Visitor) (*Block, []byte, error) {
	d := newDispatch(visitor)
	d.blockBegin(len(b))

	header, rest, err := ParseBlockHeader(b)
	if err != nil {
		return nil, nil, err
	}
	d.blockHeader(&header)

	count, rest, err := ParseCompactSize(rest)
	if err != nil {
		return nil, nil, err
	}
	d.txCount(count.N())

	txDataStart := len(b) - len(rest)
	_, rest, err = parseTransactions(rest, count.N(), d)
	if err != nil {
		return nil, nil, err
	}

	blockLen := len(b) - len(rest)
	blk := &Block{
		raw:    b[:blockLen],
		header: header,
		count:  count,
		txData: b[txDataStart:blockLen],
	}
	return blk, rest, nil
}
