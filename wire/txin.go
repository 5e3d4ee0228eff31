// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// TxIn is a transaction input: the outpoint it spends, the unlocking
// script satisfying that outpoint's pkScript, and the sequence number.
// Witness data, when present, is carried separately by the enclosing
// Transaction (per input, not per TxIn) since legacy transactions have no
// witness field at all.
type TxIn struct {
	previousOutput OutPoint
	sigScript      Script
	sequence       uint32
}

// PreviousOutput returns the outpoint this input spends.
func (i TxIn) PreviousOutput() OutPoint {
	return i.previousOutput
}

// SignatureScript returns the input's unlocking script.
func (i TxIn) SignatureScript() Script {
	return i.sigScript
}

// Sequence returns the input's sequence number.
func (i TxIn) Sequence() uint32 {
	return i.sequence
}

// ParseTxIn reads a TxIn from the front of b: a 36-byte OutPoint, a
// CompactSize-prefixed signature script, and a 4-byte little-endian
// sequence number.
func ParseTxIn(b []byte) (TxIn, []byte, error) {
	prevOut, rest, err := ParseOutPoint(b)
	if err != nil {
		return TxIn{}, nil, err
	}
	sigScript, rest, err := ParseScript(rest)
	if err != nil {
		return TxIn{}, nil, err
	}
	sequence, rest, err := readUint32LE("TxIn.Parse", rest)
	if err != nil {
		return TxIn{}, nil, err
	}
	return TxIn{previousOutput: prevOut, sigScript: sigScript, sequence: sequence}, rest, nil
}

// parseTxIns reads the CompactSize-prefixed vector of inputs, firing
// visitOne (if non-nil) after each one is parsed.
func parseTxIns(b []byte, visitOne func(index int, in *TxIn)) ([]TxIn, []byte, uint64, error) {
	return parseVector(b, func(b []byte, index int) (TxIn, []byte, error) {
		return ParseTxIn(b)
	}, visitOne)
}
