// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool tracks, per node, the transactions that have been heard
// of but not yet committed on the node's current best chain.
package mempool

import "github.com/daglabs/blocksim/internal/ledger"

// Pool is a node's set of pending transactions. Candidate blocks walk the
// mempool in insertion order rather than by fee priority, so Pool keeps an
// explicit order slice alongside the lookup map.
type Pool struct {
	txns  map[string]ledger.Transaction
	order []string
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{
		txns: make(map[string]ledger.Transaction),
	}
}

// Has reports whether the pool already knows about the given id.
func (p *Pool) Has(id string) bool {
	_, ok := p.txns[id]
	return ok
}

// Add inserts txn into the pool if it is not already known. It reports
// whether the transaction was newly added.
func (p *Pool) Add(txn ledger.Transaction) bool {
	id := string(txn.ID)
	if _, ok := p.txns[id]; ok {
		return false
	}
	p.txns[id] = txn
	p.order = append(p.order, id)
	return true
}

// Remove deletes txn (by id) from the pool, if present.
func (p *Pool) Remove(id string) {
	if _, ok := p.txns[id]; !ok {
		return
	}
	delete(p.txns, id)
	for i, got := range p.order {
		if got == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// RemoveAll deletes every transaction in txns (by id) from the pool.
func (p *Pool) RemoveAll(txns []ledger.Transaction) {
	for _, txn := range txns {
		p.Remove(string(txn.ID))
	}
}

// Ordered returns the pool's transactions in insertion order. The slice is
// owned by the caller; callers must not mutate pool state through it.
func (p *Pool) Ordered() []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.txns[id])
	}
	return out
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	return len(p.order)
}

// Clone returns a deep, independent copy of the pool, used to build the
// working mempool a reorg simulates before committing.
func (p *Pool) Clone() *Pool {
	out := New()
	out.order = make([]string, len(p.order))
	copy(out.order, p.order)
	out.txns = make(map[string]ledger.Transaction, len(p.txns))
	for id, txn := range p.txns {
		out.txns[id] = txn
	}
	return out
}

// Replace discards the pool's contents and replaces them with txns, in the
// given order. Used after a chain switch promotes a new tip and leaves a
// freshly rebuilt mempool.
func (p *Pool) Replace(txns []ledger.Transaction) {
	p.txns = make(map[string]ledger.Transaction, len(txns))
	p.order = make([]string, 0, len(txns))
	for _, txn := range txns {
		id := string(txn.ID)
		if _, ok := p.txns[id]; ok {
			continue
		}
		p.txns[id] = txn
		p.order = append(p.order, id)
	}
}
