// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command slicedump parses a single Bitcoin consensus-encoded entity (a
// transaction, a block, or a bare header) from a file and prints a field
// summary, using the visitor protocol to walk blocks one transaction at a
// time rather than materializing the whole thing up front.
package main

import (
	"encoding/hex"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/RCasatta/bitcoin-slices/wire"
)

// summaryVisitor logs a one-line summary for the block-begin, header and
// tx-count hooks (and, when showTx is set, for each transaction), and keeps
// a running total of output value for the final report.
type summaryVisitor struct {
	wire.BaseVisitor
	showTx   bool
	totalOut uint64
	txCount  int
}

func (v *summaryVisitor) VisitBlockBegin(totalBytes int) {
	log.Infof("block: %d bytes available", totalBytes)
}

func (v *summaryVisitor) VisitBlockHeader(h *wire.BlockHeader) wire.ControlFlow {
	log.Infof("header: version=%d prevBlock=%s merkleRoot=%s time=%d bits=%x nonce=%d hash=%s",
		h.Version(), h.PrevBlock(), h.MerkleRoot(), h.Timestamp(), h.Bits(), h.Nonce(), h.BlockHash())
	return wire.Continue
}

func (v *summaryVisitor) VisitTxCount(n uint64) {
	log.Infof("tx count: %d", n)
}

func (v *summaryVisitor) VisitTransaction(index int, tx *wire.Transaction) wire.ControlFlow {
	v.txCount++
	if v.showTx {
		log.Infof("  tx[%d]: txid=%s wtxid=%s segwit=%v", index, tx.Txid(), tx.Wtxid(), tx.IsSegWit())
	}
	return wire.Continue
}

func (v *summaryVisitor) VisitTxOut(index int, out *wire.TxOut) wire.ControlFlow {
	v.totalOut += out.Value()
	return wire.Continue
}

func readInput(cfg *config) ([]byte, error) {
	raw, err := os.ReadFile(cfg.InFile)
	if err != nil {
		return nil, err
	}
	if !cfg.Hex {
		return raw, nil
	}
	decoded := make([]byte, hex.DecodedLen(len(raw)))
	n, err := hex.Decode(decoded, trimSpace(raw))
	if err != nil {
		return nil, err
	}
	return decoded[:n], nil
}

func trimSpace(b []byte) []byte {
	out := b[:0]
	for _, c := range b {
		switch c {
		case ' ', '\n', '\r', '\t':
			continue
		default:
			out = append(out, c)
		}
	}
	return out
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setLogLevel(cfg.Debug); err != nil {
		return err
	}

	data, err := readInput(cfg)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	v := &summaryVisitor{showTx: cfg.ShowTx}

	switch cfg.Kind {
	case "tx":
		tx, rest, err := wire.ParseTransaction(data, v)
		if err != nil {
			return errors.Wrap(err, "parsing transaction")
		}
		log.Infof("txid=%s wtxid=%s segwit=%v inputs=%d outputs=%d locktime=%d trailing=%d",
			tx.Txid(), tx.Wtxid(), tx.IsSegWit(), len(tx.TxIns()), len(tx.TxOuts()), tx.LockTime(), len(rest))

	case "header":
		h, rest, err := wire.ParseBlockHeader(data)
		if err != nil {
			return errors.Wrap(err, "parsing header")
		}
		log.Infof("hash=%s version=%d time=%d trailing=%d", h.BlockHash(), h.Version(), h.Timestamp(), len(rest))

	case "block":
		blk, rest, err := wire.ParseBlock(data, v)
		if err != nil {
			return errors.Wrap(err, "parsing block")
		}
		log.Infof("block hash=%s transactions=%d total output value=%d trailing=%d",
			blk.BlockHash(), v.txCount, v.totalOut, len(rest))
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
