// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package owned adapts the borrowed-view parse results of the wire package
// into fully-decoded github.com/btcsuite/btcd/wire/v2 message types. The
// core parser never depends on this package; it exists for callers that
// already have code built against btcd's own types and want one
// conversion call rather than a second, field-by-field decode pass.
package owned

import (
	"time"

	btcdchainhash "github.com/btcsuite/btcd/chainhash/v2"
	btcdwire "github.com/btcsuite/btcd/wire/v2"

	"github.com/RCasatta/bitcoin-slices/chainhash"
	"github.com/RCasatta/bitcoin-slices/wire"
)

// ToOutPoint converts a parsed OutPoint view into its btcd equivalent.
func ToOutPoint(o wire.OutPoint) btcdwire.OutPoint {
	h := o.Hash()
	return btcdwire.OutPoint{
		Hash:  asBtcdHash(h),
		Index: o.Index(),
	}
}

// ToTxIn converts a parsed TxIn view into its btcd equivalent. The
// signature script is copied, since btcd's TxIn owns its byte slices.
func ToTxIn(in wire.TxIn) *btcdwire.TxIn {
	return &btcdwire.TxIn{
		PreviousOutPoint: ToOutPoint(in.PreviousOutput()),
		SignatureScript:  cloneBytes(in.SignatureScript().Bytes()),
		Sequence:         in.Sequence(),
	}
}

// ToTxOut converts a parsed TxOut view into its btcd equivalent.
func ToTxOut(out wire.TxOut) *btcdwire.TxOut {
	return &btcdwire.TxOut{
		Value:    int64(out.Value()),
		PkScript: cloneBytes(out.PkScript().Bytes()),
	}
}

// ToWitness converts a parsed Witness view into btcd's TxWitness.
func ToWitness(w wire.Witness) btcdwire.TxWitness {
	items := w.Items()
	out := make(btcdwire.TxWitness, len(items))
	for i, item := range items {
		out[i] = cloneBytes(item)
	}
	return out
}

// ToMsgTx converts a fully parsed Transaction view into a btcd MsgTx,
// copying every borrowed byte slice it touches so the result is valid
// independent of the buffer tx was parsed from.
func ToMsgTx(tx *wire.Transaction) *btcdwire.MsgTx {
	msg := &btcdwire.MsgTx{
		Version:  tx.Version(),
		LockTime: tx.LockTime(),
	}

	ins := tx.TxIns()
	msg.TxIn = make([]*btcdwire.TxIn, len(ins))
	for i, in := range ins {
		msg.TxIn[i] = ToTxIn(in)
		if tx.IsSegWit() {
			msg.TxIn[i].Witness = ToWitness(tx.Witness(i))
		}
	}

	outs := tx.TxOuts()
	msg.TxOut = make([]*btcdwire.TxOut, len(outs))
	for i, out := range outs {
		msg.TxOut[i] = ToTxOut(out)
	}

	return msg
}

// ToBlockHeader converts a parsed BlockHeader view into its btcd
// equivalent.
func ToBlockHeader(h wire.BlockHeader) *btcdwire.BlockHeader {
	return &btcdwire.BlockHeader{
		Version:    h.Version(),
		PrevBlock:  asBtcdHash(h.PrevBlock()),
		MerkleRoot: asBtcdHash(h.MerkleRoot()),
		Timestamp:  time.Unix(int64(h.Timestamp()), 0),
		Bits:       h.Bits(),
		Nonce:      h.Nonce(),
	}
}

// ToMsgBlock converts a fully parsed Block view into a btcd MsgBlock,
// materializing every transaction eagerly (see wire.Block.AllTransactions).
func ToMsgBlock(blk *wire.Block) (*btcdwire.MsgBlock, error) {
	txs, err := blk.AllTransactions()
	if err != nil {
		return nil, err
	}
	msg := &btcdwire.MsgBlock{
		Header:       *ToBlockHeader(blk.Header()),
		Transactions: make([]*btcdwire.MsgTx, len(txs)),
	}
	for i, tx := range txs {
		msg.Transactions[i] = ToMsgTx(tx)
	}
	return msg, nil
}

func asBtcdHash(h chainhash.Hash) btcdchainhash.Hash {
	var out btcdchainhash.Hash
	copy(out[:], h[:])
	return out
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
