// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"math/big"
	"sort"

	"github.com/blinklabs-io/ledger/chain"
	"github.com/blinklabs-io/ledger/utils/set"
	"github.com/blinklabs-io/ledger/vms/platformvm/state"
	"github.com/blinklabs-io/ledger/vms/platformvm/txs"
)

// Validate runs the nine predicates of spec §4.1 against tx, accumulating
// every independent failure instead of short-circuiting on the first one
// (spec §4.1 rationale, §7). A nil return means the transaction is valid.
func (b *Backend) Validate(
	currentSlot chain.Slot,
	ls state.LedgerState,
	tx *txs.Tx,
	genesisDelegates map[txs.HashKey]txs.HashKey,
) Errors {
	var errs Errors
	body := tx.Body

	errs = errs.Append(validInputs(ls.UTxOState.UTxO, body))
	errs = errs.Append(current(currentSlot, body))
	errs = errs.Append(validNoReplay(body))
	size, sizeErr := b.size(body)
	if sizeErr == nil {
		errs = errs.Append(b.validFee(size, body))
	}
	errs = errs.Append(b.preserveBalance(currentSlot, ls, body))
	errs = errs.Append(correctWithdrawals(ls.DelegationState.DState, body))

	signers := b.signingSet(tx.Witnesses)
	errs = errs.Append(b.verifiedWits(tx))
	needed := b.witsNeeded(ls.UTxOState.UTxO, body, genesisDelegates)
	errs = errs.Append(enoughWits(signers, needed))
	errs = errs.Append(noUnneededWits(signers, needed))

	for _, err := range validCertificates(ls.DelegationState, currentSlot, body) {
		errs = errs.Append(err)
	}

	return errs
}

// newScratchApplier returns a certApplier over a private clone of ds, so a
// per-body pass can fold certificates through it (mirroring
// applyCertificates, spec §4.2 step 6) without mutating the caller's state.
func newScratchApplier(ds state.DelegationState, currentSlot chain.Slot) *certApplier {
	return &certApplier{ds: ds.Clone(), currentSlot: currentSlot}
}

// validCertificates checks the per-certificate registration preconditions
// spec §4.3's table marks "Pre-validated" (e.g. RegKey requires the target
// not already registered). These are not one of the nine named UTxO-rule
// predicates of spec §4.1, but spec §6's error taxonomy names their
// failures (StakeKeyAlreadyRegistered, StakeKeyNotRegistered,
// StakeDelegationImpossible, StakePoolNotRegisteredOnKey,
// RetirementCertExpired) alongside the nine, so this module validates them
// in the same accumulating pass rather than treating C8 as unchecked.
//
// Certificates are checked against a scratch state folded in list order
// (via applier.ds), not just the pre-transaction snapshot: a body's own
// earlier certificates (e.g. a RegKeyCert immediately followed by a
// DelegateCert for the same key, the standard "register and delegate in
// one tx" pattern) must be visible to the ones that follow them, exactly as
// applyCertificates will later see them.
func validCertificates(ds state.DelegationState, currentSlot chain.Slot, body *txs.TxBody) []error {
	var errs []error
	currentEpoch := chain.EpochFromSlot(currentSlot)
	applier := newScratchApplier(ds, currentSlot)
	for i, cert := range body.Certificates {
		switch c := cert.(type) {
		case *txs.RegKeyCert:
			if applier.ds.DState.IsRegistered(c.StakeKey) {
				errs = append(errs, StakeKeyAlreadyRegistered{})
			}
		case *txs.DeRegKeyCert:
			if !applier.ds.DState.IsRegistered(c.StakeKey) {
				errs = append(errs, StakeKeyNotRegistered{})
			}
		case *txs.DelegateCert:
			if !applier.ds.DState.IsRegistered(c.StakeKey) {
				errs = append(errs, StakeDelegationImpossible{})
			}
		case *txs.RetirePoolCert:
			if !applier.ds.PState.IsRegistered(c.PoolKey) {
				errs = append(errs, StakePoolNotRegisteredOnKey{})
			} else if c.Epoch <= currentEpoch {
				errs = append(errs, RetirementCertExpired{Requested: c.Epoch, Current: currentEpoch})
			}
		}
		applier.ptr = chain.Ptr{Slot: currentSlot, CertIndex: uint32(i)}
		_ = cert.Visit(applier)
	}
	return errs
}

// 1. validInputs: inputs(tx) ⊆ domain(utxo).
func validInputs(utxo state.UTxO, body *txs.TxBody) error {
	for _, in := range body.Inputs {
		if _, ok := utxo[in]; !ok {
			return BadInputs{}
		}
	}
	return nil
}

// 2. current: ttl(tx) ≥ currentSlot.
func current(currentSlot chain.Slot, body *txs.TxBody) error {
	if body.TTL < currentSlot {
		return Expired{TTL: body.TTL, Slot: currentSlot}
	}
	return nil
}

// 3. validNoReplay: inputs(tx) ≠ ∅.
func validNoReplay(body *txs.TxBody) error {
	if len(body.Inputs) == 0 {
		return InputSetEmpty{}
	}
	return nil
}

// size returns the serialized byte length of tx's body via the Encoder
// collaborator (spec §6).
func (b *Backend) size(body *txs.TxBody) (uint64, error) {
	encoded, err := b.Encoder.EncodeTxBody(body)
	if err != nil {
		return 0, err
	}
	return uint64(len(encoded)), nil
}

// minFee computes a*size(tx) + b.
func (b *Backend) minFee(size uint64) chain.Coin {
	return chain.Coin(b.Config.FeeCoefficientA*size + b.Config.FeeCoefficientB)
}

// 4. validFee: fee(tx) ≥ minFee.
func (b *Backend) validFee(size uint64, body *txs.TxBody) error {
	needed := b.minFee(size)
	if body.Fee < needed {
		return FeeTooSmall{Needed: needed, Given: body.Fee}
	}
	return nil
}

// deposits charges the per-key deposit for each RegKey cert whose target is
// not already registered, and the per-pool deposit for each RegPool cert
// whose hash is not already registered (spec §4.1's "Consumption and
// production"). Like validCertificates, it folds body's certificates
// through a scratch DelegationState in list order (mirroring
// applyCertificates, spec §4.2 step 6), so a second RegKey/RegPool for the
// same target within one body is correctly seen as a no-op charge rather
// than a double deposit.
func (b *Backend) deposits(currentSlot chain.Slot, ls state.LedgerState, body *txs.TxBody) chain.Coin {
	var total chain.Coin
	applier := newScratchApplier(ls.DelegationState, currentSlot)
	for i, cert := range body.Certificates {
		switch c := cert.(type) {
		case *txs.RegKeyCert:
			if !applier.ds.DState.IsRegistered(c.StakeKey) {
				total = total.Add(b.Config.KeyDeposit)
			}
		case *txs.RegPoolCert:
			if !applier.ds.PState.IsRegistered(c.Params.PoolKey) {
				total = total.Add(b.Config.PoolDeposit)
			}
		}
		applier.ptr = chain.Ptr{Slot: currentSlot, CertIndex: uint32(i)}
		_ = cert.Visit(applier)
	}
	return total
}

// keyRefunds credits the decayed refund for each DeRegKey whose target is
// currently registered, decayed against the age of the registration at the
// transaction's TTL (spec §4.1's refund curve). Like deposits, it folds
// body's certificates through a scratch DelegationState in list order, so a
// DeRegKey sees the registration state left by any earlier certificate in
// the same body rather than only the pre-transaction snapshot.
func (b *Backend) keyRefunds(currentSlot chain.Slot, ls state.LedgerState, body *txs.TxBody) chain.Coin {
	var total chain.Coin
	applier := newScratchApplier(ls.DelegationState, currentSlot)
	for i, cert := range body.Certificates {
		if dereg, ok := cert.(*txs.DeRegKeyCert); ok {
			if registeredAt, isRegistered := applier.ds.DState.StakeKeys[dereg.StakeKey]; isRegistered {
				age := body.TTL.Since(registeredAt)
				total = total.Add(RefundAmount(b.Config.KeyDeposit, b.Config.MinRefund, b.Config.DecayRate, age))
			}
		}
		applier.ptr = chain.Ptr{Slot: currentSlot, CertIndex: uint32(i)}
		_ = cert.Visit(applier)
	}
	return total
}

// RefundAmount implements spec §4.1's refund curve:
//
//	refund = d * (m + (1-m) * (1-λ)^Δ)
//
// monotonically decreasing in Δ, bounded below by d*m and above by d, using
// exact big.Rat arithmetic and floor-rounding the final Coin.
func RefundAmount(deposit chain.Coin, minRefund, decayRate chain.UnitInterval, age uint64) chain.Coin {
	oneMinusLambda := new(big.Rat).Sub(oneRatV, decayRate.Rat())
	decayed := ratPow(oneMinusLambda, age)
	factor := new(big.Rat).Sub(oneRatV, minRefund.Rat())
	factor.Mul(factor, decayed)
	factor.Add(factor, minRefund.Rat())
	result := new(big.Rat).Mul(factor, new(big.Rat).SetUint64(uint64(deposit)))
	return chain.FloorCoin(result)
}

var oneRatV = big.NewRat(1, 1)

// ratPow computes base^exp by repeated squaring, exact in big.Rat.
func ratPow(base *big.Rat, exp uint64) *big.Rat {
	result := big.NewRat(1, 1)
	b := new(big.Rat).Set(base)
	for exp > 0 {
		if exp&1 == 1 {
			result = new(big.Rat).Mul(result, b)
		}
		b = new(big.Rat).Mul(b, b)
		exp >>= 1
	}
	return result
}

// 5. preserveBalance: consumed = produced.
func (b *Backend) preserveBalance(currentSlot chain.Slot, ls state.LedgerState, body *txs.TxBody) error {
	consumed, produced := b.consumedProduced(currentSlot, ls, body)
	if consumed != produced {
		return ValueNotConserved{Consumed: consumed, Produced: produced}
	}
	return nil
}

// consumedProduced computes the two sides of the balance equation (spec
// §4.1 "Consumption and production").
func (b *Backend) consumedProduced(currentSlot chain.Slot, ls state.LedgerState, body *txs.TxBody) (consumed, produced chain.Coin) {
	for _, in := range body.Inputs {
		if out, ok := ls.UTxOState.UTxO[in]; ok {
			consumed = consumed.Add(out.Amount)
		}
	}
	consumed = consumed.Add(b.keyRefunds(currentSlot, ls, body))
	for _, w := range sortedWithdrawals(body.Withdrawals) {
		consumed = consumed.Add(body.Withdrawals[w])
	}

	for _, out := range body.Outputs {
		produced = produced.Add(out.Amount)
	}
	produced = produced.Add(body.Fee)
	produced = produced.Add(b.deposits(currentSlot, ls, body))
	return consumed, produced
}

func sortedWithdrawals(m map[txs.RewardAcnt]chain.Coin) []txs.RewardAcnt {
	keys := make([]txs.RewardAcnt, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortHashKeys(keys)
	return keys
}

// 6. correctWithdrawals: every withdrawal entry matches the exact balance
// currently in that reward account. Partial withdrawals are not permitted.
func correctWithdrawals(dstate state.DState, body *txs.TxBody) error {
	for acct, amount := range body.Withdrawals {
		if dstate.Rewards[acct] != amount {
			return IncorrectRewards{}
		}
	}
	return nil
}

// 7. verifiedWits: every witness cryptographically verifies against the
// body hash.
func (b *Backend) verifiedWits(tx *txs.Tx) error {
	bodyHash, err := b.bodyID(tx.Body)
	if err != nil {
		return InvalidWitness{}
	}
	for _, w := range tx.Witnesses {
		if !b.Verifier.Verify(w.VKey, bodyHash[:], w.Signature) {
			return InvalidWitness{}
		}
	}
	return nil
}

// signingSet returns the set of verification-key hashes that actually
// signed the transaction, using the Hasher collaborator (spec §6) to derive
// each witness's HashKey identity from its raw verification key.
func (b *Backend) signingSet(witnesses []txs.Witness) set.Set[txs.HashKey] {
	s := make(set.Set[txs.HashKey], len(witnesses))
	for _, w := range witnesses {
		s.Add(b.Hasher.Hash(w.VKey))
	}
	return s
}

// witsNeeded computes the set of verification-key hashes this transaction
// must be signed by (spec §4.1 "Signatures required").
func (b *Backend) witsNeeded(utxo state.UTxO, body *txs.TxBody, genesisDelegates map[txs.HashKey]txs.HashKey) set.Set[txs.HashKey] {
	needed := make(set.Set[txs.HashKey])

	for _, in := range body.Inputs {
		out, ok := utxo[in]
		if !ok {
			continue
		}
		needed.Add(out.Address.PayKeyHash)
	}

	for acct := range body.Withdrawals {
		needed.Add(acct)
	}

	for _, cert := range body.Certificates {
		switch c := cert.(type) {
		case *txs.RegKeyCert:
			needed.Add(c.StakeKey)
		case *txs.DeRegKeyCert:
			needed.Add(c.StakeKey)
		case *txs.DelegateCert:
			needed.Add(c.StakeKey)
		case *txs.RegPoolCert:
			needed.Add(c.Params.PoolKey)
			for _, owner := range c.Params.Owners {
				needed.Add(owner)
			}
		case *txs.RetirePoolCert:
			needed.Add(c.PoolKey)
		}
	}

	if len(body.Entropy) > 0 {
		for _, genHash := range sortedGenesisKeys(genesisDelegates) {
			needed.Add(genesisDelegates[genHash])
		}
	}

	return needed
}

func sortedGenesisKeys(m map[txs.HashKey]txs.HashKey) []txs.HashKey {
	keys := make([]txs.HashKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortHashKeys(keys)
	return keys
}

func sortHashKeys(keys []txs.HashKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

// 8. enoughWits: signers ⊇ needed.
func enoughWits(signers, needed set.Set[txs.HashKey]) error {
	if !needed.IsSubsetOf(signers) {
		return MissingWitnesses{}
	}
	return nil
}

// 9. noUnneededWits: signers ⊆ needed.
func noUnneededWits(signers, needed set.Set[txs.HashKey]) error {
	if !signers.IsSubsetOf(needed) {
		return UnneededWitnesses{}
	}
	return nil
}
