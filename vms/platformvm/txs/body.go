// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/blinklabs-io/ledger/chain"

// EEnt is an extra-entropy contribution carried by a transaction body (spec
// §3). Its cryptographic meaning belongs to the consensus layer (spec §1,
// out of scope); the core only uses a non-empty contribution to require the
// genesis delegates' witnesses, and does not fold it into UTxOState.Entropy.
type EEnt []byte

// TxBody is the unsigned content of a transaction (spec §3). The zero value
// is not valid: inputs must be non-empty, a property the validators (not
// the type) enforce, per spec §3's TxBody invariant note.
type TxBody struct {
	// Inputs is the set of UTxO entries this transaction consumes. Although
	// conceptually a set, it is stored as a slice with no defined order;
	// canonicalization of iteration over it happens at point of use (spec
	// §5), never at construction.
	Inputs []TxIn `serialize:"true" json:"inputs"`

	// Outputs is the ordered list of new UTxO entries this transaction
	// produces. Order matters: it determines each output's TxIn.Ix.
	Outputs []TxOut `serialize:"true" json:"outputs"`

	// Certificates is the ordered list of delegation certificates folded
	// through certificate application (spec §4.3) in list order.
	Certificates []Certificate `serialize:"true" json:"certificates"`

	// Withdrawals maps a reward account to the amount this transaction
	// withdraws from it. Spec §4.1 rule 6 requires every entry to equal the
	// account's exact current balance.
	Withdrawals map[RewardAcnt]chain.Coin `serialize:"true" json:"withdrawals"`

	// Fee is the explicit fee this transaction pays.
	Fee chain.Coin `serialize:"true" json:"fee"`

	// TTL is the slot after which this transaction may no longer be applied
	// (spec §4.1 rule 2).
	TTL chain.Slot `serialize:"true" json:"ttl"`

	// Entropy is this body's extra-entropy contribution.
	Entropy EEnt `serialize:"true" json:"entropy,omitempty"`
}

// InputSet returns the body's inputs as a set, used by the state transition
// to remove the consumed entries from the UTxO.
func (b *TxBody) InputSet() map[TxIn]struct{} {
	s := make(map[TxIn]struct{}, len(b.Inputs))
	for _, in := range b.Inputs {
		s[in] = struct{}{}
	}
	return s
}
