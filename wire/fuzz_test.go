// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"testing"
)

// These fuzz targets assert only the "fuzz safety" invariant: for any byte
// string, the parser terminates without panicking and returns either a
// view with a remainder or an error. They do not assert anything about the
// specific error kind, since almost all inputs are malformed.

func FuzzParseCompactSize(f *testing.F) {
	f.Add([]byte{0xFC})
	f.Add([]byte{0xFD, 0xFD, 0x00})
	f.Add([]byte{0xFF})
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseCompactSize(b)
	})
}

func FuzzParseOutPoint(f *testing.F) {
	f.Add(make([]byte, 36))
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseOutPoint(b)
	})
}

func FuzzParseTxIn(f *testing.F) {
	f.Add(make([]byte, 41))
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseTxIn(b)
	})
}

func FuzzParseTxOut(f *testing.F) {
	f.Add(make([]byte, 9))
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseTxOut(b)
	})
}

func FuzzParseWitness(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseWitness(b)
	})
}

func FuzzParseTransaction(f *testing.F) {
	legacy, _ := legacyMinimalTxBytes()
	f.Add(legacy)
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseTransaction(b, nil)
	})
}

func FuzzParseBlockHeader(f *testing.F) {
	f.Add(make([]byte, 80))
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseBlockHeader(b)
	})
}

func FuzzParseBlock(f *testing.F) {
	f.Fuzz(func(t *testing.T, b []byte) {
		_, _, _ = ParseBlock(b, nil)
	})
}

func legacyMinimalTxBytes() ([]byte, error) {
	return hex.DecodeString(legacyOneInOneOutTxHex())
}
