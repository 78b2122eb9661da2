// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reward implements the pool leader/member reward split and the
// reward-update assembly and application of spec §4.5 (component C10).
package reward

import (
	"errors"
	"sort"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// ErrNegativeAccount is returned by Apply when a signed delta would drive
// an account balance negative; it indicates a reward update that was not
// actually produced by CreateRewardUpdate for this EpochState.
var ErrNegativeAccount = errors.New("reward update would drive an account negative")

// RewardUpdate is the {ΔTreasury, ΔReserves, rewards, ΔFees} record of spec
// §3/§4.5. Sign convention: a positive delta adds to the pot; ΔReserves is
// typically negative (reserves shrink by the minted amount) and ΔFees is
// always -feesSnapshot (the fee pot always reaches zero).
type RewardUpdate struct {
	DeltaTreasury int64
	DeltaReserves int64
	DeltaFees     int64
	Rewards       map[txs.RewardAcnt]chain.Coin
}

// applySignedDelta adds delta to c, returning an error instead of wrapping
// or panicking if the result would be negative.
func applySignedDelta(c chain.Coin, delta int64) (chain.Coin, error) {
	result := int64(c) + delta
	if result < 0 {
		return 0, ErrNegativeAccount
	}
	return chain.Coin(result), nil
}

// Apply applies ru to es, per spec §4.5 "Applying the update": treasury and
// reserves move by their signed deltas, fees move by ΔFees (reaching zero
// when ΔFees is the negated current fee pot),
// and every (acct, c) in ru.Rewards replaces — not adds to — the account's
// prior balance, per spec's explicit "rewards present in the update shadow
// prior balances" instruction. Accounts not present in ru.Rewards are left
// untouched.
func Apply(ru RewardUpdate, es state.EpochState) (state.EpochState, error) {
	out := es.Clone()

	treasury, err := applySignedDelta(out.Accounts.Treasury, ru.DeltaTreasury)
	if err != nil {
		return state.EpochState{}, err
	}
	reserves, err := applySignedDelta(out.Accounts.Reserves, ru.DeltaReserves)
	if err != nil {
		return state.EpochState{}, err
	}
	fees, err := applySignedDelta(out.LedgerState.UTxOState.Fees, ru.DeltaFees)
	if err != nil {
		return state.EpochState{}, err
	}

	out.Accounts.Treasury = treasury
	out.Accounts.Reserves = reserves
	out.LedgerState.UTxOState.Fees = fees

	for _, acct := range sortedRewardAccts(ru.Rewards) {
		out.LedgerState.DelegationState.DState.Rewards[acct] = ru.Rewards[acct]
	}
	return out, nil
}

func sortedRewardAccts(m map[txs.RewardAcnt]chain.Coin) []txs.RewardAcnt {
	accts := make([]txs.RewardAcnt, 0, len(m))
	for a := range m {
		accts = append(accts, a)
	}
	sort.Slice(accts, func(i, j int) bool { return accts[i].Less(accts[j]) })
	return accts
}
