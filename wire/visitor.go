// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// ControlFlow is the cooperative early-termination signal a Visitor hook
// returns. It is the Go analogue of the capability set's "Continue or
// Break" contract (spec §4.7): Break suppresses further calls of that same
// hook kind for the remainder of the parse, but parsing itself always
// completes structurally, since the byte range of the enclosing object is
// not known until parsing finishes.
type ControlFlow int

const (
	// Continue lets subsequent hooks of the same kind keep firing.
	Continue ControlFlow = iota
	// Break suppresses subsequent hooks of the same kind for this parse.
	Break
)

// Visitor is the capability set of optional observation hooks fired during
// a single parse pass, in document order: block, header, tx count, then
// each transaction in index order. Within a transaction, its tx_in hooks
// (index order), tx_out hooks (index order) and witness hooks (input-index
// order) fire first, and its transaction hook fires after it has been
// fully parsed. Embed BaseVisitor in a concrete type and
// override only the hooks of interest — composition over a deep interface
// hierarchy, so a visitor bundling several independent concerns doesn't
// have to implement hooks it doesn't care about.
type Visitor interface {
	// VisitBlockBegin is called once, before the header, with the number
	// of bytes in the slice passed to ParseBlock, which may extend past
	// the end of the block.
	VisitBlockBegin(totalBytes int)

	// VisitBlockHeader is called once the 80-byte header has been parsed.
	VisitBlockHeader(h *BlockHeader) ControlFlow

	// VisitTxCount is called with the decoded transaction-count
	// CompactSize, before any transaction is parsed.
	VisitTxCount(n uint64)

	// VisitTransaction is called after a transaction has been fully
	// parsed, in index order.
	VisitTransaction(index int, tx *Transaction) ControlFlow

	// VisitTxIn is called after an input has been parsed, in index
	// order.
	VisitTxIn(index int, in *TxIn) ControlFlow

	// VisitTxOut is called after an output has been parsed, in index
	// order.
	VisitTxOut(index int, out *TxOut) ControlFlow

	// VisitWitness is called after the witness for a given input has
	// been parsed, in input-index order.
	VisitWitness(inputIndex int, w *Witness) ControlFlow
}

// BaseVisitor implements Visitor with no-op hooks that all return Continue.
// Embed it in a concrete visitor and override only the methods of interest.
type BaseVisitor struct{}

func (BaseVisitor) VisitBlockBegin(totalBytes int) {}

func (BaseVisitor) VisitBlockHeader(h *BlockHeader) ControlFlow { return Continue }

func (BaseVisitor) VisitTxCount(n uint64) {}

func (BaseVisitor) VisitTransaction(index int, tx *Transaction) ControlFlow {
	return Continue
}

func (BaseVisitor) VisitTxIn(index int, in *TxIn) ControlFlow { return Continue }

func (BaseVisitor) VisitTxOut(index int, out *TxOut) ControlFlow { return Continue }

func (BaseVisitor) VisitWitness(inputIndex int, w *Witness) ControlFlow {
	return Continue
}

// dispatch wraps a Visitor and tracks, per hook kind, whether a Break has
// already been returned; once broken, further calls of that kind are
// suppressed, but the structural parse this dispatch is attached to always
// runs to completion.
type dispatch struct {
	v Visitor

	headerBroken  bool
	txBroken      bool
	txInBroken    bool
	txOutBroken   bool
	witnessBroken bool
}

func newDispatch(v Visitor) *dispatch {
	if v == nil {
		v = BaseVisitor{}
	}
	return &dispatch{v: v}
}

func (d *dispatch) blockBegin(totalBytes int) { d.v.VisitBlockBegin(totalBytes) }

func (d *dispatch) blockHeader(h *BlockHeader) {
	if d.headerBroken {
		return
	}
	if d.v.VisitBlockHeader(h) == Break {
		d.headerBroken = true
	}
}

func (d *dispatch) txCount(n uint64) { d.v.VisitTxCount(n) }

func (d *dispatch) transaction(index int, tx *Transaction) {
	if d.txBroken {
		return
	}
	if d.v.VisitTransaction(index, tx) == Break {
		d.txBroken = true
	}
}

func (d *dispatch) txIn(index int, in *TxIn) {
	if d.txInBroken {
		return
	}
	if d.v.VisitTxIn(index, in) == Break {
		d.txInBroken = true
	}
}

func (d *dispatch) txOut(index int, out *TxOut) {
	if d.txOutBroken {
		return
	}
	if d.v.VisitTxOut(index, out) == Break {
		d.txOutBroken = true
	}
}

func (d *dispatch) witness(inputIndex int, w *Witness) {
	if d.witnessBroken {
		return
	}
	if d.v.VisitWitness(inputIndex, w) == Break {
		d.witnessBroken = true
	}
}
