// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package platformvm is the top-level API surface of spec §6: genesis
// construction, transaction application, pool retirement, reward-update
// construction and application, and stake-distribution snapshotting. It
// wires the state, txs/executor, stake, and reward packages together behind
// the small operation set spec §6 names.
package platformvm

import (
	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/config"
	"github.com/blinklabs-io/ledger/vms/platformvm/reward"
	"github.com/blinklabs-io/ledger/vms/platformvm/stake"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs/executor"
)

// Ledger bundles a Backend with the Calculator it was constructed with, and
// exposes spec §6's operation set as methods. It holds no mutable state of
// its own: every operation takes the state it needs and returns a new one.
type Ledger struct {
	backend *executor.Backend
}

// New returns a Ledger wired to cfg and the given external collaborators.
func New(cfg *config.Config, hasher executor.Hasher, verifier executor.Verifier, encoder executor.Encoder) *Ledger {
	calc := reward.NewCalculator(*cfg)
	return &Ledger{backend: executor.NewBackend(cfg, hasher, verifier, encoder, calc, nil)}
}

// GenesisState builds the initial LedgerState for a chain whose genesis
// transaction mints outputs and whose deposits, fees, and delegation state
// all start empty. The genesis transaction id is hash(encode(emptyBody)),
// matching spec §6's "genesis transaction id = hash of an empty body".
func (l *Ledger) GenesisState(outputs []txs.TxOut) (state.LedgerState, error) {
	emptyBody := &txs.TxBody{}
	encoded, err := l.backend.Encoder.EncodeTxBody(emptyBody)
	if err != nil {
		return state.LedgerState{}, err
	}
	genesisID := l.backend.Hasher.Hash(encoded)

	return state.LedgerState{
		UTxOState: state.UTxOState{
			UTxO: state.OutputsAt(genesisID, outputs),
		},
		DelegationState: state.DelegationState{
			DState: state.NewDState(),
			PState: state.NewPState(),
		},
		ProtocolParams: *l.backend.Config,
	}, nil
}

// ApplyTx is spec §6's applyTx: validate tx against currentSlot/ls, and on
// success apply the six-step transition of spec §4.2.
func (l *Ledger) ApplyTx(
	currentSlot chain.Slot,
	ls state.LedgerState,
	tx *txs.Tx,
	genesisDelegates map[txs.HashKey]txs.HashKey,
) (state.LedgerState, executor.Errors) {
	return l.backend.ApplyTx(currentSlot, ls, tx, genesisDelegates)
}

// ApplyTxUnchecked is spec §6/§9's conformance-testing entry point: it
// applies tx's body regardless of whether it validates, returning both the
// resulting state and whatever validation errors, if any, tx triggered.
//
// Production code must never call this; it exists for trace-based
// conformance testing against an external reference implementation.
func (l *Ledger) ApplyTxUnchecked(
	currentSlot chain.Slot,
	ls state.LedgerState,
	tx *txs.Tx,
	genesisDelegates map[txs.HashKey]txs.HashKey,
) (executor.Errors, state.LedgerState) {
	return l.backend.ApplyUnchecked(currentSlot, ls, tx, genesisDelegates)
}

// RetirePools is spec §6's retirePools(ledgerState, epoch) → LedgerState:
// the epoch-boundary sweep of every pool whose scheduled retirement has
// arrived.
func (l *Ledger) RetirePools(ls state.LedgerState, epoch chain.Epoch) state.LedgerState {
	return executor.RetirePools(ls, epoch)
}

// StakeDistribution is spec §6's stakeDistribution(utxo, dstate, pstate) →
// map[HashKey]Coin, delegated to component C9.
func (l *Ledger) StakeDistribution(utxo state.UTxO, dstate state.DState, pstate state.PState) map[txs.HashKey]chain.Coin {
	return stake.Distribution(utxo, dstate, pstate)
}

// Snapshot captures the current active stake distribution, delegations, and
// pool parameters into a state.Snapshot, ready to be rotated into
// SnapShots.Mark at the next epoch boundary.
func (l *Ledger) Snapshot(utxo state.UTxO, dstate state.DState, pstate state.PState, fees chain.Coin) state.Snapshot {
	return stake.Snapshot(utxo, dstate, pstate, fees)
}

// CreateRewardUpdate is spec §6's createRewardUpdate(epochState) →
// RewardUpdate: it feeds the epoch's reserves, consumed (go) snapshot,
// blocks-made tally, and currently-registered stake keys to the reward
// engine (component C10).
func (l *Ledger) CreateRewardUpdate(es state.EpochState, blocksMade map[txs.HashKey]uint64) reward.RewardUpdate {
	return l.backend.Rewards.CreateRewardUpdate(
		es.Accounts.Reserves,
		es.Snapshots.Go,
		blocksMade,
		es.LedgerState.DelegationState.DState,
	)
}

// ApplyRewardUpdate is spec §6's applyRewardUpdate(epochState, rewardUpdate)
// → EpochState.
func (l *Ledger) ApplyRewardUpdate(es state.EpochState, ru reward.RewardUpdate) (state.EpochState, error) {
	return reward.Apply(ru, es)
}
