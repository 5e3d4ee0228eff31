// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/RCasatta/bitcoin-slices/chainhash"

// segWitMarker and segWitFlag are the two bytes that, in that order, appear
// immediately after the version field of a SegWit transaction. No valid
// legacy transaction begins its input count with segWitMarker, because a
// CompactSize tag of 0x00 would itself mean zero inputs — which is exactly
// the ambiguity ParseTransaction resolves by rejecting a zero-input vector
// immediately following marker/flag.
const (
	segWitMarker = 0x00
	segWitFlag   = 0x01
)

// Transaction is a fully parsed Bitcoin transaction. Its byte range is the
// exact consensus serialization it was parsed from, legacy or SegWit.
type Transaction struct {
	raw []byte

	version   int32
	segwit    bool
	inputs    []TxIn
	outputs   []TxOut
	witnesses []Witness // empty for legacy transactions
	locktime  uint32

	// Offsets into raw, used to reconstruct the legacy preimage
	// (version || inputs || outputs || locktime) without copying, and to
	// expose the full serialization for wtxid.
	versionEnd  int
	ioStart     int // start of the input vector (after marker/flag, if any)
	ioEnd       int // end of the output vector
	locktimeOff int
}

// Version returns the transaction's version field.
func (tx *Transaction) Version() int32 {
	return tx.version
}

// IsSegWit reports whether the transaction carries a SegWit marker, flag,
// and per-input witness data.
func (tx *Transaction) IsSegWit() bool {
	return tx.segwit
}

// TxIn returns the input at index i.
func (tx *Transaction) TxIn(i int) TxIn {
	return tx.inputs[i]
}

// TxIns returns every input, in order. The returned slice aliases tx's own
// backing array, not the caller's.
func (tx *Transaction) TxIns() []TxIn {
	return tx.inputs
}

// TxOut returns the output at index i.
func (tx *Transaction) TxOut(i int) TxOut {
	return tx.outputs[i]
}

// TxOuts returns every output, in order. The returned slice aliases tx's
// own backing array, not the caller's.
func (tx *Transaction) TxOuts() []TxOut {
	return tx.outputs
}

// Witness returns the witness stack for input i. Valid only when
// tx.IsSegWit() is true.
func (tx *Transaction) Witness(i int) Witness {
	return tx.witnesses[i]
}

// LockTime returns the transaction's locktime field.
func (tx *Transaction) LockTime() uint32 {
	return tx.locktime
}

// Bytes returns the transaction's full consensus serialization, aliasing
// the buffer it was parsed from.
func (tx *Transaction) Bytes() []byte {
	return tx.raw
}

// TxidPreimage returns the three non-contiguous byte ranges that make up
// the legacy preimage (version, the input+output vectors, locktime),
// without copying or concatenating them. For a legacy transaction this is
// simply the whole serialization split into three adjacent pieces; for a
// SegWit transaction the marker, flag, and witness data are excluded.
func (tx *Transaction) TxidPreimage() (version, inputsOutputs, locktime []byte) {
	return tx.raw[:tx.versionEnd], tx.raw[tx.ioStart:tx.ioEnd], tx.raw[tx.locktimeOff:]
}

// Txid returns the transaction's identifier: double-SHA256 of the legacy
// preimage, in internal byte order. For both legacy and SegWit
// transactions this is the same value a full node would report as txid.
func (tx *Transaction) Txid() chainhash.Hash {
	v, io, lt := tx.TxidPreimage()
	return chainhash.DoubleHashParts(v, io, lt)
}

// Wtxid returns the transaction's witness identifier: for legacy
// transactions this equals Txid(); for SegWit transactions it is
// double-SHA256 of the full serialization, marker/flag/witnesses included.
func (tx *Transaction) Wtxid() chainhash.Hash {
	if !tx.segwit {
		return tx.Txid()
	}
	return chainhash.DoubleHashH(tx.raw)
}

// ParseTransaction reads one transaction from the front of b, legacy or
// SegWit, and returns its view together with the remainder. visitor may be
// nil.
func ParseTransaction(b []byte, visitor Visitor) (*Transaction, []byte, error) {
	d := newDispatch(visitor)
	return parseTransaction(b, d)
}

func parseTransaction(b []byte, d *dispatch) (*Transaction, []byte, error) {
	origLen := len(b)

	version, rest, err := readInt32LE("Transaction.Parse", b)
	if err != nil {
		return nil, nil, err
	}
	versionEnd := origLen - len(rest)

	segwit := false
	ioStart := versionEnd
	if len(rest) >= 2 && rest[0] == segWitMarker {
		if rest[1] != segWitFlag {
			return nil, nil, newError("Transaction.Parse", ErrInvalidSegWitFlag, versionEnd)
		}
		segwit = true
		rest = rest[2:]
		ioStart = origLen - len(rest)
	}

	inputs, rest, nIn, err := parseTxIns(rest, func(index int, in *TxIn) { d.txIn(index, in) })
	if err != nil {
		return nil, nil, err
	}
	if segwit && nIn == 0 {
		return nil, nil, newError("Transaction.Parse", ErrInvalidSegWitInputs, ioStart)
	}

	outputs, rest, _, err := parseTxOuts(rest, func(index int, out *TxOut) { d.txOut(index, out) })
	if err != nil {
		return nil, nil, err
	}
	ioEnd := origLen - len(rest)

	var witnesses []Witness
	if segwit {
		witnesses, rest, err = parseWitnesses(rest, int(nIn), func(index int, w *Witness) { d.witness(index, w) })
		if err != nil {
			return nil, nil, err
		}
	}

	locktimeOff := origLen - len(rest)
	locktime, rest, err := readUint32LE("Transaction.Parse", rest)
	if err != nil {
		return nil, nil, err
	}

	txLen := origLen - len(rest)
	tx := &Transaction{
		raw:         b[:txLen],
		version:     version,
		segwit:      segwit,
		inputs:      inputs,
		outputs:     outputs,
		witnesses:   witnesses,
		locktime:    locktime,
		versionEnd:  versionEnd,
		ioStart:     ioStart,
		ioEnd:       ioEnd,
		locktimeOff: locktimeOff,
	}
	return tx, rest, nil
}

// parseTransactions reads n consecutive transactions, firing d's
// transaction hook after each one. The capacity hint is clamped to the
// remaining buffer length, as in parseVector, so a hostile count cannot
// force a huge allocation before any transaction is validated.
func parseTransactions(b []byte, n uint64, d *dispatch) ([]*Transaction, []byte, error) {
	capHint := n
	if capHint > uint64(len(b)) {
		capHint = uint64(len(b))
	}
	txs := make([]*Transaction, 0, capHint)
	rest := b
	for i := uint64(0); i < n; i++ {
		tx, next, err := parseTransaction(rest, d)
		if err != nil {
			return nil, nil, err
		}
		txs = append(txs, tx)
		d.transaction(int(i), tx)
		rest = next
	}
	return txs, rest, nil
}
