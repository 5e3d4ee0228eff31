// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBreakSuppressesOnlySameHookKind(t *testing.T) {
	raw := buildBlock(t, 3)

	var txCalls, outCalls int
	v := &breakAfterFirstTx{}
	v.onTxOut = func() { outCalls++ }
	v.onTx = func() { txCalls++ }

	blk, rest, err := ParseBlock(raw, v)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, uint64(3), blk.TxCount())

	// VisitTransaction broke after the first call, so only 1 transaction
	// hook fired, but structural parsing still completed: all 3
	// transactions are present in the block.
	require.Equal(t, 1, txCalls)

	// VisitTxOut never returned Break, so it still fired for the single
	// output of each of the 3 transactions.
	require.Equal(t, 3, outCalls)
}

// txWithOutputValuesHex builds a minimal one-input legacy transaction
// carrying one output per entry in values, each with an empty pkScript.
func txWithOutputValuesHex(values []uint64) string {
	version := "01000000"
	input := "01" + zeroHex(36) + "00" + "ffffffff"
	outputCount := byteToHex(len(values))
	outputs := ""
	for _, v := range values {
		var valBytes [8]byte
		binary.LittleEndian.PutUint64(valBytes[:], v)
		outputs += hex.EncodeToString(valBytes[:]) + "00" // empty pkScript
	}
	locktime := "00000000"
	return version + input + outputCount + outputs + locktime
}

// sumOutputValuesVisitor implements the "sum tx_out values across a
// block" scenario from spec §8 by accumulating every VisitTxOut value
// it is handed, without ever materializing the block's transactions
// into a slice.
type sumOutputValuesVisitor struct {
	BaseVisitor
	total uint64
}

func (v *sumOutputValuesVisitor) VisitTxOut(index int, out *TxOut) ControlFlow {
	v.total += out.Value()
	return Continue
}

func TestVisitorSumsTxOutValuesAcrossBlock(t *testing.T) {
	header := "01000000" + zeroHex(32) + zeroHex(32) + "00000000" + "00000000" + "00000000"
	tx1 := txWithOutputValuesHex([]uint64{100, 250})
	tx2 := txWithOutputValuesHex([]uint64{500})
	body := header + byteToHex(2) + tx1 + tx2

	raw, err := hex.DecodeString(body)
	require.NoError(t, err)

	v := &sumOutputValuesVisitor{}
	blk, rest, err := ParseBlock(raw, v)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, uint64(2), blk.TxCount())
	require.Equal(t, uint64(850), v.total)
}

type breakAfterFirstTx struct {
	BaseVisitor
	onTx    func()
	onTxOut func()
}

func (v *breakAfterFirstTx) VisitTransaction(index int, tx *Transaction) ControlFlow {
	if v.onTx != nil {
		v.onTx()
	}
	return Break
}

func (v *breakAfterFirstTx) VisitTxOut(index int, out *TxOut) ControlFlow {
	if v.onTxOut != nil {
		v.onTxOut()
	}
	return Continue
}
