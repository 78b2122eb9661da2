// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/config"
)

// DelegationState bundles the two halves of delegation bookkeeping spec §3
// splits into DState and PState.
type DelegationState struct {
	DState DState
	PState PState
}

// Clone returns a deep-enough copy of ds.
func (ds DelegationState) Clone() DelegationState {
	return DelegationState{DState: ds.DState.Clone(), PState: ds.PState.Clone()}
}

// UpdateState carries the reward-update machinery's working state. Spec §3
// only names it as a LedgerState field; this module keeps it minimal since
// the reward update itself is constructed and applied by the reward engine
// (component C10), not stored mid-flight inside LedgerState.
type UpdateState struct{}

// LedgerState is the record spec §3 names: UTxO state, delegation state,
// update state, protocol parameters, and the per-slot transaction-index
// cursor used to make certificate Ptrs unique (spec §4.2 step 5).
type LedgerState struct {
	UTxOState       UTxOState
	DelegationState DelegationState
	UpdateState     UpdateState
	ProtocolParams  config.Config

	// TxSlotIx counts transactions applied within CurrentSlot; it resets to
	// zero whenever CurrentSlot advances (spec §3).
	TxSlotIx uint32

	// CurrentSlot is the slot of the most recently applied transaction.
	CurrentSlot chain.Slot
}

// Clone returns a deep-enough copy of ls: every reference-typed field is
// cloned, ProtocolParams and scalars are copied by value.
func (ls LedgerState) Clone() LedgerState {
	return LedgerState{
		UTxOState:       ls.UTxOState.Clone(),
		DelegationState: ls.DelegationState.Clone(),
		UpdateState:     ls.UpdateState,
		ProtocolParams:  ls.ProtocolParams,
		TxSlotIx:        ls.TxSlotIx,
		CurrentSlot:     ls.CurrentSlot,
	}
}

// Accounts is the epoch-level treasury/reserves pot (spec §3 EpochState).
type Accounts struct {
	Treasury chain.Coin
	Reserves chain.Coin
}

// EpochState bundles the accounts, protocol parameters, rolling snapshots,
// and the current ledger state (spec §3).
type EpochState struct {
	Accounts       Accounts
	ProtocolParams config.Config
	Snapshots      SnapShots
	LedgerState    LedgerState
}

// Clone returns a deep-enough copy of es.
func (es EpochState) Clone() EpochState {
	return EpochState{
		Accounts:       es.Accounts,
		ProtocolParams: es.ProtocolParams,
		Snapshots:      es.Snapshots.Clone(),
		LedgerState:    es.LedgerState.Clone(),
	}
}
