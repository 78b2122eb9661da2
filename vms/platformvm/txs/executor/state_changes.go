// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// certApplier implements txs.CertVisitor, applying each certificate kind's
// side effects exactly as spec §4.3's table specifies. Maps are mutated in
// place: the caller is expected to have already cloned the DelegationState
// it wants mutated (see Backend.ApplyTx).
type certApplier struct {
	ds          state.DelegationState
	currentSlot chain.Slot
	ptr         chain.Ptr
}

var _ txs.CertVisitor = (*certApplier)(nil)

// RegKey inserts hash(k) into stakeKeys with value = current slot; sets
// rewards[RewardAcnt(hash(k))] := 0; inserts pointers[ptr] := hash(k).
func (a *certApplier) RegKey(c *txs.RegKeyCert) error {
	a.ds.DState.StakeKeys[c.StakeKey] = a.currentSlot
	a.ds.DState.Rewards[c.StakeKey] = 0
	a.ds.DState.Pointers[a.ptr] = c.StakeKey
	return nil
}

// DeRegKey deletes hash(k) from stakeKeys, rewards, delegations; deletes
// any pointers entry pointing to hash(k).
func (a *certApplier) DeRegKey(c *txs.DeRegKeyCert) error {
	delete(a.ds.DState.StakeKeys, c.StakeKey)
	delete(a.ds.DState.Rewards, c.StakeKey)
	delete(a.ds.DState.Delegations, c.StakeKey)
	a.ds.DState.DeletePointersTo(c.StakeKey)
	return nil
}

// Delegate sets delegations[hash(src)] := hash(tgt). No check on tgt's
// registration state: future-registered pools may deliberately be
// targeted (spec §4.3).
func (a *certApplier) Delegate(c *txs.DelegateCert) error {
	a.ds.DState.Delegations[c.StakeKey] = c.PoolKey
	return nil
}

// RegPool keeps h's original registration slot if it is already present,
// otherwise sets it to the current slot; sets params[h]; cancels any
// pending retirement.
func (a *certApplier) RegPool(c *txs.RegPoolCert) error {
	h := c.Params.PoolKey
	if _, alreadyRegistered := a.ds.PState.Pools[h]; !alreadyRegistered {
		a.ds.PState.Pools[h] = a.currentSlot
	}
	a.ds.PState.Params[h] = c.Params
	delete(a.ds.PState.Retiring, h)
	return nil
}

// RetirePool sets retiring[hash(k)] := e. Pre-validated by
// validCertificates: hash(k) is currently registered.
func (a *certApplier) RetirePool(c *txs.RetirePoolCert) error {
	a.ds.PState.RetirePool(c.PoolKey, c.Epoch)
	return nil
}

// applyCertificates folds body's certificates through certApplier in list
// order, assigning each the pointer (currentSlot, txSlotIx, i) (spec §4.2
// step 6).
func applyCertificates(ds state.DelegationState, currentSlot chain.Slot, txSlotIx uint32, body *txs.TxBody) error {
	applier := &certApplier{ds: ds, currentSlot: currentSlot}
	for i, cert := range body.Certificates {
		applier.ptr = chain.Ptr{Slot: currentSlot, TxIndex: txSlotIx, CertIndex: uint32(i)}
		if err := cert.Visit(applier); err != nil {
			return err
		}
	}
	return nil
}

// RetirePools performs the epoch-boundary sweep (spec §4.3): for each
// (h, e) in retiring where e == epoch, h is removed from pools, params, and
// retiring.
func RetirePools(ls state.LedgerState, epoch chain.Epoch) state.LedgerState {
	out := ls.Clone()
	out.DelegationState.PState.Sweep(epoch)
	return out
}
