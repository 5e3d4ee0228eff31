// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owned

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RCasatta/bitcoin-slices/wire"
)

func TestToMsgTxCopiesLegacyFields(t *testing.T) {
	raw := []byte{
		0x01, 0x00, 0x00, 0x00, // version
		0x01, // 1 input
		// previous outpoint: 32 zero bytes + index 0xffffffff (coinbase-like)
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
		0x01, 0xAB, // sigScript: length 1, byte 0xAB
		0xff, 0xff, 0xff, 0xff, // sequence
		0x01,                                           // 1 output
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // value
		0x01, 0xCD, // pkScript: length 1, byte 0xCD
		0x00, 0x00, 0x00, 0x00, // locktime
	}

	tx, rest, err := wire.ParseTransaction(raw, nil)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.False(t, tx.IsSegWit())

	msg := ToMsgTx(tx)
	require.Equal(t, tx.Version(), msg.Version)
	require.Equal(t, tx.LockTime(), msg.LockTime)
	require.Len(t, msg.TxIn, 1)
	require.Equal(t, []byte{0xAB}, msg.TxIn[0].SignatureScript)
	require.Equal(t, uint32(0xffffffff), msg.TxIn[0].Sequence)
	require.Len(t, msg.TxOut, 1)
	require.Equal(t, int64(-1), msg.TxOut[0].Value)
	require.Equal(t, []byte{0xCD}, msg.TxOut[0].PkScript)

	// The adapter must copy, not borrow: mutating the source buffer leaves
	// the converted message untouched.
	raw[42] = 0xFF // the sigScript byte 0xAB
	require.Equal(t, []byte{0xAB}, msg.TxIn[0].SignatureScript)
}

func TestToBlockHeaderFields(t *testing.T) {
	raw := make([]byte, 80)
	raw[0] = 1 // version
	raw[68] = 0x10
	raw[69] = 0x20
	raw[70] = 0x30
	raw[71] = 0x40 // timestamp

	h, rest, err := wire.ParseBlockHeader(raw)
	require.NoError(t, err)
	require.Empty(t, rest)

	bh := ToBlockHeader(h)
	require.Equal(t, h.Version(), bh.Version)
	require.Equal(t, h.Bits(), bh.Bits)
	require.Equal(t, h.Nonce(), bh.Nonce)
	require.Equal(t, int64(h.Timestamp()), bh.Timestamp.Unix())
}
