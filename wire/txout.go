// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// TxOut is a transaction output: an amount, in satoshis, and the public key
// script that must be satisfied to spend it.
type TxOut struct {
	value    uint64
	pkScript Script
}

// Value returns the output amount, in satoshis.
func (o TxOut) Value() uint64 {
	return o.value
}

// PkScript returns the output's public key (locking) script.
func (o TxOut) PkScript() Script {
	return o.pkScript
}

// ParseTxOut reads a TxOut from the front of b: an 8-byte little-endian
// value followed by a CompactSize-prefixed script.
func ParseTxOut(b []byte) (TxOut, []byte, error) {
	value, rest, err := readUint64LE("TxOut.Parse", b)
	if err != nil {
		return TxOut{}, nil, err
	}
	script, rest, err := ParseScript(rest)
	if err != nil {
		return TxOut{}, nil, err
	}
	return TxOut{value: value, pkScript: script}, rest, nil
}

// parseTxOuts reads the CompactSize-prefixed vector of outputs, firing
// visitOne (if non-nil) after each one is parsed.
func parseTxOuts(b []byte, visitOne func(index int, out *TxOut)) ([]TxOut, []byte, uint64, error) {
	return parseVector(b, func(b []byte, index int) (TxOut, []byte, error) {
		return ParseTxOut(b)
	}, visitOne)
}
