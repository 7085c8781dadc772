// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainstore implements the per-node block tree: a map from block
// id to block, a pointer to the current tip, and an orphan table for
// blocks that arrive before their parent. It is a tree, not a linear
// chain: siblings coexist, and the tip moves only when a caller promotes a
// block with PromoteTip.
package chainstore

import (
	"github.com/daglabs/blocksim/internal/chainutil"
	"github.com/daglabs/blocksim/internal/ledger"
	"github.com/pkg/errors"
)

// ErrUnknownBlock is returned when an operation names a block id the store
// has never accepted.
var ErrUnknownBlock = errors.New("unknown block id")

// orphanBlock pairs a parked block with the store sequence number it was
// parked at. Only one orphan is kept per parent key: a later one replaces
// the earlier.
type orphanBlock struct {
	block *ledger.Block
	seq   int
}

// Store is a single node's view of the block tree.
type Store struct {
	blocks  map[chainutil.ID]*ledger.Block
	tip     *ledger.Block
	tipSeq  int
	seq     map[chainutil.ID]int
	nextSeq int

	// orphans maps a missing parent id to the orphan block waiting on it,
	// single-deep per parent key: a second block claiming the same missing
	// parent displaces the first.
	orphans map[chainutil.ID]orphanBlock
}

// New returns a store seeded with the given genesis block as both the only
// block and the initial tip.
func New(genesis *ledger.Block) *Store {
	s := &Store{
		blocks:  make(map[chainutil.ID]*ledger.Block),
		seq:     make(map[chainutil.ID]int),
		orphans: make(map[chainutil.ID]orphanBlock),
	}
	s.insert(genesis)
	s.tip = genesis
	s.tipSeq = s.seq[genesis.ID]
	return s
}

func (s *Store) insert(b *ledger.Block) {
	s.blocks[b.ID] = b
	s.seq[b.ID] = s.nextSeq
	s.nextSeq++
}

// Has reports whether id is already in the store (not the orphan table).
func (s *Store) Has(id chainutil.ID) bool {
	_, ok := s.blocks[id]
	return ok
}

// Get returns the block with the given id, if known.
func (s *Store) Get(id chainutil.ID) (*ledger.Block, bool) {
	b, ok := s.blocks[id]
	return b, ok
}

// Tip returns the block the store currently treats as the head of its best
// chain.
func (s *Store) Tip() *ledger.Block {
	return s.tip
}

// Blocks returns every block in the store, keyed by id, for read-only
// iteration (e.g. by a report generator). The caller must not mutate the
// returned blocks.
func (s *Store) Blocks() map[chainutil.ID]*ledger.Block {
	return s.blocks
}

// ParkOrphan records b as waiting on its (currently missing) parent. A
// second orphan claiming the same parent id replaces the first.
func (s *Store) ParkOrphan(b *ledger.Block) {
	s.orphans[b.ParentID] = orphanBlock{block: b, seq: s.nextSeq}
	s.nextSeq++
}

// TakeOrphan removes and returns the orphan parked under the given parent
// id, if any.
func (s *Store) TakeOrphan(parentID chainutil.ID) (*ledger.Block, bool) {
	o, ok := s.orphans[parentID]
	if !ok {
		return nil, false
	}
	delete(s.orphans, parentID)
	return o.block, true
}

// IsOrphan reports whether id is currently parked as an orphan (under any
// key).
func (s *Store) IsOrphan(id chainutil.ID) bool {
	for _, o := range s.orphans {
		if o.block.ID == id {
			return true
		}
	}
	return false
}

// Accept adds b to the store. It must only be called after verification
// has succeeded; Accept itself performs no checks.
func (s *Store) Accept(b *ledger.Block) {
	s.insert(b)
}

// PromoteTip sets b as the new tip. First-seen tie-breaking is enforced by
// the caller: PromoteTip should only be invoked when b.Position is
// strictly greater than the current tip's position.
func (s *Store) PromoteTip(b *ledger.Block) {
	s.tip = b
	s.tipSeq = s.seq[b.ID]
}

// CommonAncestor walks parent links from a and b until they meet. Both
// inputs must already be in the store.
func (s *Store) CommonAncestor(a, b *ledger.Block) (*ledger.Block, error) {
	x, y := a, b
	for x.Position > y.Position {
		parent, ok := s.Get(x.ParentID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownBlock, "ancestor walk: %s", chainutil.Short(x.ParentID))
		}
		x = parent
	}
	for y.Position > x.Position {
		parent, ok := s.Get(y.ParentID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownBlock, "ancestor walk: %s", chainutil.Short(y.ParentID))
		}
		y = parent
	}
	for x.ID != y.ID {
		xp, ok := s.Get(x.ParentID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownBlock, "ancestor walk: %s", chainutil.Short(x.ParentID))
		}
		yp, ok := s.Get(y.ParentID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownBlock, "ancestor walk: %s", chainutil.Short(y.ParentID))
		}
		x, y = xp, yp
	}
	return x, nil
}

// PathTo returns the chain of blocks from ancestor (exclusive) to
// descendant (inclusive), ordered from the ancestor's child to descendant.
// descendant must be a descendant of ancestor.
func (s *Store) PathTo(ancestor, descendant *ledger.Block) ([]*ledger.Block, error) {
	var path []*ledger.Block
	cur := descendant
	for cur.ID != ancestor.ID {
		path = append([]*ledger.Block{cur}, path...)
		parent, ok := s.Get(cur.ParentID)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownBlock, "path walk: %s", chainutil.Short(cur.ParentID))
		}
		cur = parent
	}
	return path, nil
}
