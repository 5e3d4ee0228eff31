// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txidcache provides a bounded, least-recently-used mapping from
// txid to an owned transaction view. It exists to let repeated lookups of
// the same transaction (e.g. while walking a block's inputs back to the
// outputs they spend) skip re-parsing. The cache is deliberately not
// concurrency safe: callers that need to share one across goroutines must
// serialize access themselves, e.g. with a mutex at the call site.
package txidcache

import (
	"container/list"

	"github.com/RCasatta/bitcoin-slices/chainhash"
	"github.com/RCasatta/bitcoin-slices/wire"
)

// Cache is a bounded, non-concurrency-safe, least-recently-used cache
// keyed by txid. The zero value is not usable; construct one with New.
type Cache struct {
	entries map[chainhash.Hash]*list.Element
	order   *list.List // front = most recently used
	limit   int
}

type entry struct {
	key   chainhash.Hash
	value *wire.Owned[*wire.Transaction]
}

// New returns an empty cache holding at most limit entries. A limit of
// zero makes Add a no-op.
func New(limit int) *Cache {
	return &Cache{
		entries: make(map[chainhash.Hash]*list.Element),
		order:   list.New(),
		limit:   limit,
	}
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	return c.order.Len()
}

// Get returns the cached transaction for txid, if present, moving it to
// the front of the eviction order.
func (c *Cache) Get(txid chainhash.Hash) (*wire.Owned[*wire.Transaction], bool) {
	elem, ok := c.entries[txid]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry).value, true
}

// Add inserts tx under its own txid, evicting the least recently used
// entry first if the cache is at capacity. Re-adding an existing txid
// refreshes its position without growing the cache.
func (c *Cache) Add(tx *wire.Owned[*wire.Transaction]) {
	if c.limit <= 0 {
		return
	}
	txid := tx.View().Txid()

	if elem, ok := c.entries[txid]; ok {
		elem.Value.(*entry).value = tx
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.limit {
		oldest := c.order.Back()
		delete(c.entries, oldest.Value.(*entry).key)
		oldest.Value = &entry{key: txid, value: tx}
		c.order.MoveToFront(oldest)
		c.entries[txid] = oldest
		return
	}

	elem := c.order.PushFront(&entry{key: txid, value: tx})
	c.entries[txid] = elem
}

// Delete removes txid from the cache, if present.
func (c *Cache) Delete(txid chainhash.Hash) {
	if elem, ok := c.entries[txid]; ok {
		c.order.Remove(elem)
		delete(c.entries, txid)
	}
}

// GetOrParse returns the cached transaction for txid if present; otherwise
// it parses raw, inserts the owned result under its computed txid, and
// returns that. It is the caller's responsibility to ensure txid, if
// already known, actually matches raw — GetOrParse trusts the parse, not
// the caller's txid, when inserting.
func GetOrParse(c *Cache, txid chainhash.Hash, raw []byte) (*wire.Owned[*wire.Transaction], error) {
	if v, ok := c.Get(txid); ok {
		return v, nil
	}
	tx, rest, err := wire.ParseTransaction(raw, nil)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &wire.Error{Func: "txidcache.GetOrParse", Kind: wire.ErrTrailingBytes, Offset: len(raw) - len(rest)}
	}
	owned, err := wire.NewOwnedTransaction(tx)
	if err != nil {
		return nil, err
	}
	c.Add(owned)
	return owned, nil
}
