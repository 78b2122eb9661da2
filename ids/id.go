// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ids defines the opaque, collision-resistant hash identifiers used
// throughout the ledger: transaction ids, verification-key hashes, reward
// account keys, and genesis delegate hashes are all values of type ID.
package ids

import (
	"encoding/hex"
	"errors"
)

// Len is the byte length of an ID. The spec allows a 224- or 256-bit
// collision-resistant hash; this module fixes 256 bits (32 bytes).
const Len = 32

var errWrongLength = errors.New("wrong length for id")

// ID is a collision-resistant hash of either a verification key (a HashKey)
// or a transaction body (a TxID). HashKey and TxID below are type aliases of
// ID that name these two roles; the compiler does not tell them apart.
type ID [Len]byte

// Empty is the all-zero ID.
var Empty = ID{}

// String renders the ID as lowercase hex.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Less gives IDs a canonical total order, used wherever the spec requires
// iteration order to not leak map layout into outputs (spec §5).
func (id ID) Less(other ID) bool {
	for i := range id {
		if id[i] != other[i] {
			return id[i] < other[i]
		}
	}
	return false
}

// Compare returns -1, 0, or 1 the way bytes.Compare does, for use with
// sort.Slice and btree.Less wrappers.
func (id ID) Compare(other ID) int {
	switch {
	case id.Less(other):
		return -1
	case other.Less(id):
		return 1
	default:
		return 0
	}
}

// ToID copies b into a new ID. b must be exactly Len bytes.
func ToID(b []byte) (ID, error) {
	var id ID
	if len(b) != Len {
		return id, errWrongLength
	}
	copy(id[:], b)
	return id, nil
}

// HashKey is the hash of a verification key: the identity of a stake key, a
// pool key, or a genesis delegate (spec §3).
type HashKey = ID

// TxID is the hash of a transaction's body.
type TxID = ID
