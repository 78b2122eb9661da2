// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"math/big"
	"sort"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/vms/platformvm/config"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// Calculator builds a RewardUpdate from a protocol-parameter set, the
// current reserves, a frozen snapshot, and the blocks-produced map for the
// epoch that just ended (spec §4.5, component C10).
type Calculator interface {
	CreateRewardUpdate(
		reserves chain.Coin,
		snap state.Snapshot,
		blocksMade map[txs.HashKey]uint64,
		registered state.DState,
	) RewardUpdate
}

type calculator struct {
	pp config.Config
}

// NewCalculator returns the Calculator implementing spec §4.5 for protocol
// parameters pp.
func NewCalculator(pp config.Config) Calculator {
	return &calculator{pp: pp}
}

func oneRat() *big.Rat { return big.NewRat(1, 1) }

func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func clampUnit(r *big.Rat) *big.Rat {
	if r.Sign() < 0 {
		return new(big.Rat)
	}
	return minRat(r, oneRat())
}

func coinRat(c chain.Coin) *big.Rat {
	return new(big.Rat).SetUint64(uint64(c))
}

// CreateRewardUpdate implements spec §4.5 steps 1–7.
func (c *calculator) CreateRewardUpdate(
	reserves chain.Coin,
	snap state.Snapshot,
	blocksMade map[txs.HashKey]uint64,
	registered state.DState,
) RewardUpdate {
	// Step 1: expected-to-actual block ratio η.
	var blocksTotal uint64
	for _, n := range blocksMade {
		blocksTotal += n
	}
	expectedBlocks := new(big.Rat).Mul(c.pp.ActiveSlotCoeff.Rat(), new(big.Rat).SetUint64(chain.SlotsPerEpoch))
	var eta *big.Rat
	if expectedBlocks.Sign() == 0 {
		eta = new(big.Rat)
	} else {
		eta = clampUnit(new(big.Rat).Quo(new(big.Rat).SetUint64(blocksTotal), expectedBlocks))
	}

	// Step 2: monetary expansion ΔR = floor(η * ρ * reserves).
	deltaR := new(big.Rat).Mul(eta, c.pp.MonetaryExpansionRate.Rat())
	deltaR.Mul(deltaR, coinRat(reserves))
	mintedReserves := chain.FloorCoin(deltaR)

	// Step 3: total pot.
	totalPot := snap.Fees.Add(mintedReserves)

	// Step 4: treasury cut and reward pot.
	treasuryRat := new(big.Rat).Mul(c.pp.TreasuryCut.Rat(), coinRat(totalPot))
	deltaT1 := chain.FloorCoin(treasuryRat)
	rewardPot := totalPot.Sub(deltaT1)

	// Step 5: per-pool leader/member split.
	totalStake := snap.TotalStake()
	rewards := make(map[txs.RewardAcnt]chain.Coin)
	if totalStake > 0 && blocksTotal > 0 {
		for _, h := range sortedPoolHashes(snap.PoolParams) {
			blocksN, madeBlocks := blocksMade[h]
			params, hasParams := snap.PoolParams[h]
			if !madeBlocks || !hasParams {
				continue
			}
			c.distributePool(h, params, blocksN, blocksTotal, rewardPot, totalStake, snap, rewards)
		}
	}

	// Step 6: restrict to accounts currently registered; the remainder goes
	// to the treasury as ΔT2.
	var distributed chain.Coin
	final := make(map[txs.RewardAcnt]chain.Coin)
	for acct, amount := range rewards {
		if registered.IsRegistered(acct) {
			final[acct] = amount
			distributed = distributed.Add(amount)
		}
	}
	deltaT2 := rewardPot.Sub(distributed)

	// Step 7: assemble the update.
	return RewardUpdate{
		DeltaTreasury: int64(deltaT1) + int64(deltaT2),
		DeltaReserves: -int64(mintedReserves),
		DeltaFees:     -int64(snap.Fees),
		Rewards:       final,
	}
}

// distributePool computes the leader and member rewards for a single pool
// and accumulates them into rewards (spec §4.5 step 5).
func (c *calculator) distributePool(
	h txs.HashKey,
	params txs.PoolParams,
	blocksN, blocksTotal uint64,
	rewardPot chain.Coin,
	totalStake chain.Coin,
	snap state.Snapshot,
	rewards map[txs.RewardAcnt]chain.Coin,
) {
	poolStake := snap.PoolStake(h)
	if poolStake == 0 {
		return
	}
	sigma := clampUnit(new(big.Rat).Quo(coinRat(poolStake), coinRat(totalStake)))

	var ownerStake chain.Coin
	for _, owner := range params.Owners {
		ownerStake = ownerStake.Add(snap.Stake[owner])
	}
	pledgeMet := ownerStake >= params.Pledge

	maxPool := c.maxPool(rewardPot, sigma, ownerStake, totalStake, pledgeMet)
	if maxPool == 0 {
		return
	}

	performance := new(big.Rat).Quo(
		new(big.Rat).SetUint64(blocksN),
		new(big.Rat).SetUint64(blocksTotal),
	)
	performance.Quo(performance, sigma)

	poolRRat := new(big.Rat).Mul(performance, coinRat(maxPool))
	poolR := chain.FloorCoin(poolRRat)

	if poolR <= params.Cost {
		rewards[params.RewardAccount] = rewards[params.RewardAccount].Add(poolR)
		return
	}

	remainder := coinRat(poolR.Sub(params.Cost))
	margin := params.Margin.Rat()
	oneMinusMargin := new(big.Rat).Sub(oneRat(), margin)

	// Leader: cost + remainder*(margin + (1-margin)*σ_leader/σ), where
	// σ_leader/σ simplifies to ownerStake/poolStake.
	leaderShare := new(big.Rat).Quo(coinRat(ownerStake), coinRat(poolStake))
	leaderFactor := new(big.Rat).Add(margin, new(big.Rat).Mul(oneMinusMargin, leaderShare))
	leaderRat := new(big.Rat).Mul(remainder, leaderFactor)
	leaderReward := params.Cost.Add(chain.FloorCoin(leaderRat))
	rewards[params.RewardAccount] = rewards[params.RewardAccount].Add(leaderReward)

	owners := make(map[txs.HashKey]struct{}, len(params.Owners))
	for _, owner := range params.Owners {
		owners[owner] = struct{}{}
	}

	// Members: each non-owner delegator's share of the non-leader remainder
	// is its coin stake over the pool's total coin stake. Owners are paid
	// only through the leader reward above: their pledge stake already
	// entered leaderShare, so including them here too would double-count it.
	// (The spec prose writes the member ratio as "σ / t"; §DESIGN.md records
	// why this module reads it as a coin ratio rather than literally
	// dividing by a Coin, which would be dimensionally inverted and shrink
	// rewards as stake grows.)
	for _, delegator := range sortedHashes(snap.Stake) {
		if snap.Delegations[delegator] != h {
			continue
		}
		if _, isOwner := owners[delegator]; isOwner {
			continue
		}
		t := snap.Stake[delegator]
		if t == 0 {
			continue
		}
		memberShare := new(big.Rat).Quo(coinRat(t), coinRat(poolStake))
		memberRat := new(big.Rat).Mul(remainder, new(big.Rat).Mul(oneMinusMargin, memberShare))
		memberReward := chain.FloorCoin(memberRat)
		if memberReward == 0 {
			continue
		}
		rewards[delegator] = rewards[delegator].Add(memberReward)
	}
}

// maxPool implements the pool reward cap (spec §4.5 step 5, §9 Pledge
// enforcement): zero if the pledge is unmet, otherwise the standard
// saturation-curve cap using the protocol's a0 and saturation threshold z0.
func (c *calculator) maxPool(rewardPot chain.Coin, sigma *big.Rat, ownerStake, totalStake chain.Coin, pledgeMet bool) chain.Coin {
	if !pledgeMet || totalStake == 0 {
		return 0
	}
	z0 := c.pp.SaturationThreshold.Rat()
	a0 := c.pp.PoolSaturationFactor.Rat()

	sigmaPrime := minRat(sigma, z0)
	s := clampUnit(new(big.Rat).Quo(coinRat(ownerStake), coinRat(totalStake)))
	sPrime := minRat(s, z0)

	// (σ' - s'*(z0-σ')/z0) / z0
	inner := new(big.Rat).Sub(z0, sigmaPrime)
	inner.Mul(inner, sPrime)
	inner.Quo(inner, z0)
	inner = new(big.Rat).Sub(sigmaPrime, inner)
	inner.Quo(inner, z0)

	bonus := new(big.Rat).Mul(sPrime, a0)
	bonus.Mul(bonus, inner)

	factor := new(big.Rat).Add(sigmaPrime, bonus)
	factor.Quo(factor, new(big.Rat).Add(oneRat(), a0))

	result := new(big.Rat).Mul(coinRat(rewardPot), factor)
	return chain.FloorCoin(result)
}

func sortedPoolHashes(m map[txs.HashKey]txs.PoolParams) []txs.HashKey {
	keys := make([]txs.HashKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

func sortedHashes(m map[txs.HashKey]chain.Coin) []txs.HashKey {
	keys := make([]txs.HashKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
