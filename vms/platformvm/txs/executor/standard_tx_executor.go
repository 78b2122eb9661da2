// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"go.uber.org/zap"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// ApplyTx is the top-level state transition of spec §4.2 and §6's
// applyTx. If tx is invalid, ls is returned unchanged alongside the
// accumulated validation errors. On success, the six steps of spec §4.2
// run in order and the new LedgerState is returned.
func (b *Backend) ApplyTx(
	currentSlot chain.Slot,
	ls state.LedgerState,
	tx *txs.Tx,
	genesisDelegates map[txs.HashKey]txs.HashKey,
) (state.LedgerState, Errors) {
	if errs := b.Validate(currentSlot, ls, tx, genesisDelegates); len(errs) > 0 {
		return ls, errs
	}
	out, err := b.applyValidated(currentSlot, ls, tx)
	if err != nil {
		// Spec §4.2: "A failure in step 6 cannot occur after step 0–5
		// because certificate validity is checked up-front." Validate
		// already ran successfully above, so reaching here is a bug in
		// this module, not in the caller's input.
		b.Log.Error("certificate application failed after validation passed",
			zap.Error(err))
		panic("executor: certificate application invariant violated: " + err.Error())
	}
	return out, nil
}

// ApplyUnchecked applies tx's body unconditionally, returning the
// accumulated validation errors (possibly empty) alongside the resulting
// state regardless of whether tx was valid.
//
// This is the conformance-testing entry point of spec §4.6/§9: it is the
// only place an invalid transaction is allowed to alter the state, and
// production code must never call it on a real transaction pipeline.
func (b *Backend) ApplyUnchecked(
	currentSlot chain.Slot,
	ls state.LedgerState,
	tx *txs.Tx,
	genesisDelegates map[txs.HashKey]txs.HashKey,
) (Errors, state.LedgerState) {
	errs := b.Validate(currentSlot, ls, tx, genesisDelegates)
	out, err := b.applyValidated(currentSlot, ls, tx)
	if err != nil {
		// Unlike ApplyTx, ApplyUnchecked is expected to be driven by a
		// trace generator that may feed it bodies referencing inputs or
		// certificates the errs above already flagged as invalid; a
		// failure here is expected, not a bug, so it is folded into errs
		// instead of panicking.
		errs = errs.Append(err)
		return errs, ls
	}
	return errs, out
}

// applyValidated runs the six steps of spec §4.2 against a body already
// known (or, for ApplyUnchecked, assumed) to reference a consistent state.
func (b *Backend) applyValidated(currentSlot chain.Slot, ls state.LedgerState, tx *txs.Tx) (state.LedgerState, error) {
	out := ls.Clone()
	body := tx.Body

	bodyID, err := b.bodyID(body)
	if err != nil {
		return state.LedgerState{}, err
	}

	// Step 1: replace utxo.
	excluded := body.InputSet()
	newOutputs := state.OutputsAt(bodyID, body.Outputs)
	out.UTxOState.UTxO = out.UTxOState.UTxO.Restrict(excluded).Union(newOutputs)

	// Step 2: recompute deposited.
	depositsThisTx := b.deposits(currentSlot, ls, body)
	refundsThisTx := b.keyRefunds(currentSlot, ls, body)
	out.UTxOState.Deposited = out.UTxOState.Deposited.Add(depositsThisTx).SaturatingSub(refundsThisTx)

	// Step 3: accumulate fees.
	out.UTxOState.Fees = out.UTxOState.Fees.Add(body.Fee)

	// Step 4: zero out withdrawn reward accounts.
	for acct := range body.Withdrawals {
		out.DelegationState.DState.Rewards[acct] = 0
	}

	// Step 5: update txSlotIx / currentSlot.
	if currentSlot == out.CurrentSlot {
		out.TxSlotIx++
	} else {
		out.TxSlotIx = 0
		out.CurrentSlot = currentSlot
	}

	// Step 6: fold certificates through C8.
	if err := applyCertificates(out.DelegationState, out.CurrentSlot, out.TxSlotIx, body); err != nil {
		return state.LedgerState{}, err
	}

	return out, nil
}

// bodyID computes hash(body) via the Hasher/Encoder collaborators of spec
// §6.
func (b *Backend) bodyID(body *txs.TxBody) (txs.TxID, error) {
	encoded, err := b.Encoder.EncodeTxBody(body)
	if err != nil {
		return txs.TxID{}, err
	}
	return b.Hasher.Hash(encoded), nil
}
