// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txs defines the UTxO-facing transaction types: addresses,
// outputs, inputs, transaction bodies, witnesses, and the five delegation
// certificates (spec §3, §4.3).
package txs

import "github.com/blinklabs-io/ledger/chain"

// Address is either a direct (pay-key, stake-key) pair or a pointer to a
// stake key registered earlier in the chain (spec §3).
type Address struct {
	// PayKeyHash identifies who may spend the output. Always set.
	PayKeyHash HashKey `serialize:"true" json:"payKeyHash"`

	// Kind distinguishes AddrTxin from AddrPtr.
	Kind AddressKind `serialize:"true" json:"kind"`

	// StakeKeyHash is set when Kind == AddrTxin.
	StakeKeyHash HashKey `serialize:"true" json:"stakeKeyHash,omitempty"`

	// Pointer is set when Kind == AddrPtr.
	Pointer chain.Ptr `serialize:"true" json:"pointer,omitempty"`
}

// AddressKind discriminates the two Address constructors.
type AddressKind byte

const (
	// AddrTxin addresses a stake key directly by its hash.
	AddrTxin AddressKind = iota
	// AddrPtr addresses a stake key indirectly through a Ptr.
	AddrPtr
)

// NewTxinAddress builds an AddrTxin address.
func NewTxinAddress(payKeyHash, stakeKeyHash HashKey) Address {
	return Address{PayKeyHash: payKeyHash, Kind: AddrTxin, StakeKeyHash: stakeKeyHash}
}

// NewPtrAddress builds an AddrPtr address.
func NewPtrAddress(payKeyHash HashKey, ptr chain.Ptr) Address {
	return Address{PayKeyHash: payKeyHash, Kind: AddrPtr, Pointer: ptr}
}
