// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kvstore persists transactions and blocks keyed by their own
// identifying hash, backed by a LevelDB database. It exercises the
// database key/value collaborator interface described for the core
// parser: a view's own byte slice is the encoding, and decoding is a
// parse call, so the store never runs a separate (de)serialization step.
package kvstore

import (
	"github.com/cockroachdb/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/RCasatta/bitcoin-slices/chainhash"
	"github.com/RCasatta/bitcoin-slices/wire"
)

// Store wraps a LevelDB handle holding two independent keyspaces,
// transactions keyed by txid and blocks keyed by block hash.
type Store struct {
	db *leveldb.DB
}

var (
	txPrefix    = []byte("t")
	blockPrefix = []byte("b")
)

// Open opens (creating if necessary) a LevelDB database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "opening leveldb at %s", path)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutTransaction stores tx under its own txid. The value written is tx's
// own serialization, so no intermediate encoding is performed.
func (s *Store) PutTransaction(tx *wire.Transaction) error {
	txid := tx.Txid()
	return s.db.Put(txKey(txid), tx.Bytes(), nil)
}

// GetTransaction looks up the transaction stored under txid and parses it.
// The returned Transaction borrows from a buffer owned by this call; it is
// only valid until the next call that might reuse it, so callers that need
// to retain it across calls should promote it via wire.NewOwnedTransaction.
func (s *Store) GetTransaction(txid chainhash.Hash) (*wire.Transaction, error) {
	raw, err := s.db.Get(txKey(txid), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "reading transaction %s", txid)
	}
	tx, rest, err := wire.ParseTransaction(raw, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing stored transaction %s", txid)
	}
	if len(rest) != 0 {
		return nil, errors.Wrapf(
			&wire.Error{Func: "kvstore.GetTransaction", Kind: wire.ErrTrailingBytes, Offset: len(raw) - len(rest)},
			"stored transaction %s", txid)
	}
	return tx, nil
}

// HasTransaction reports whether txid is present in the store.
func (s *Store) HasTransaction(txid chainhash.Hash) (bool, error) {
	return s.db.Has(txKey(txid), nil)
}

// DeleteTransaction removes txid from the store, if present.
func (s *Store) DeleteTransaction(txid chainhash.Hash) error {
	return s.db.Delete(txKey(txid), nil)
}

// PutBlock stores blk under its own block hash.
func (s *Store) PutBlock(blk *wire.Block) error {
	hash := blk.BlockHash()
	return s.db.Put(blockKey(hash), blk.Bytes(), nil)
}

// GetBlock looks up the block stored under hash and parses it.
func (s *Store) GetBlock(hash chainhash.Hash) (*wire.Block, error) {
	raw, err := s.db.Get(blockKey(hash), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "reading block %s", hash)
	}
	blk, rest, err := wire.ParseBlock(raw, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing stored block %s", hash)
	}
	if len(rest) != 0 {
		return nil, errors.Wrapf(
			&wire.Error{Func: "kvstore.GetBlock", Kind: wire.ErrTrailingBytes, Offset: len(raw) - len(rest)},
			"stored block %s", hash)
	}
	return blk, nil
}

func txKey(h chainhash.Hash) []byte {
	key := make([]byte, 0, len(txPrefix)+chainhash.HashSize)
	key = append(key, txPrefix...)
	key = append(key, h[:]...)
	return key
}

func blockKey(h chainhash.Hash) []byte {
	key := make([]byte, 0, len(blockPrefix)+chainhash.HashSize)
	key = append(key, blockPrefix...)
	key = append(key, h[:]...)
	return key
}
