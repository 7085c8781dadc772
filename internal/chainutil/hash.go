// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainutil derives stable, content-addressed identifiers for the
// value types in internal/ledger. Hashes are used only as identifiers;
// no collision resistance beyond sha256 is assumed or required.
package chainutil

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// ID is a hex-encoded sha256 digest, used as the stable identifier for a
// Transaction or a Block.
type ID string

// String returns the hex representation of the id.
func (id ID) String() string {
	return string(id)
}

// digest accumulates the fields of a record into a single sha256 sum and
// returns it as an ID.
type digest struct {
	h []byte
}

func newDigest() *digest {
	return &digest{}
}

func (d *digest) writeInt64(v int64) *digest {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	d.h = append(d.h, buf[:]...)
	return d
}

func (d *digest) writeFloat64(v float64) *digest {
	return d.writeInt64(int64(v * 1e8))
}

func (d *digest) writeString(s string) *digest {
	d.h = append(d.h, []byte(s)...)
	d.h = append(d.h, 0)
	return d
}

func (d *digest) sum() ID {
	sum := sha256.Sum256(d.h)
	return ID(hex.EncodeToString(sum[:]))
}

// TransactionID derives the stable id of a transaction from its payer,
// payee, value and timestamp.
func TransactionID(payer, payee int, value, timestamp float64) ID {
	return newDigest().
		writeInt64(int64(payer)).
		writeInt64(int64(payee)).
		writeFloat64(value).
		writeFloat64(timestamp).
		sum()
}

// BlockID derives the stable id of a block from its timestamp and the
// ordered ids of its transactions, including the coinbase.
func BlockID(timestamp float64, txnIDs []ID) ID {
	d := newDigest().writeFloat64(timestamp)
	for _, id := range txnIDs {
		d.writeString(string(id))
	}
	return d.sum()
}

// CoinbaseID derives the stable id of a coinbase transaction. It depends on
// the block timestamp and the creator so that coinbase ids are distinct per
// block.
func CoinbaseID(creator int, timestamp float64) ID {
	return newDigest().
		writeString("coinbase").
		writeInt64(int64(creator)).
		writeFloat64(timestamp).
		sum()
}

// Short returns a truncated, human-readable form of the id for logging.
func Short(id ID) string {
	s := string(id)
	if len(s) <= 10 {
		return s
	}
	return fmt.Sprintf("%s..", s[:10])
}
