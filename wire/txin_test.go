// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTxInRoundtrip(t *testing.T) {
	// 36-byte outpoint (all zero) + empty sigScript + sequence 0xFFFFFFFF
	hash64Zeros := make([]byte, 64)
	for i := range hash64Zeros {
		hash64Zeros[i] = '0'
	}
	input, err := hex.DecodeString(string(hash64Zeros) + "00000000" + "00" + "ffffffff")
	require.NoError(t, err)

	in, rest, err := ParseTxIn(input)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, uint32(0xFFFFFFFF), in.Sequence())
	require.Empty(t, in.SignatureScript().Bytes())
}
