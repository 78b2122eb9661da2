// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/blinklabs-io/ledger/chain"

// Certificate is a delegation certificate, applied via the Visitor
// double-dispatch idiom (spec §4.3): one of RegKey, DeRegKey, Delegate,
// RegPool, or RetirePool.
type Certificate interface {
	// Visit calls the matching method of visitor with this certificate's
	// concrete type.
	Visit(visitor CertVisitor) error
}

// CertVisitor lets a caller execute custom logic against each concrete
// certificate type without a type switch, mirroring the teacher's
// txs.Visitor idiom (txs/visitor.go).
type CertVisitor interface {
	RegKey(*RegKeyCert) error
	DeRegKey(*DeRegKeyCert) error
	Delegate(*DelegateCert) error
	RegPool(*RegPoolCert) error
	RetirePool(*RetirePoolCert) error
}

var (
	_ Certificate = (*RegKeyCert)(nil)
	_ Certificate = (*DeRegKeyCert)(nil)
	_ Certificate = (*DelegateCert)(nil)
	_ Certificate = (*RegPoolCert)(nil)
	_ Certificate = (*RetirePoolCert)(nil)
)

// RegKeyCert registers a stake key, charging its deposit (spec §4.3).
type RegKeyCert struct {
	// StakeKey is the hash of the stake verification key being registered.
	// Hashing the key belongs to the Hasher collaborator (spec §6);
	// RegKeyCert carries the already-hashed identity so the core stays
	// hash-scheme-agnostic.
	StakeKey HashKey `serialize:"true" json:"stakeKey"`
}

func (c *RegKeyCert) Visit(v CertVisitor) error { return v.RegKey(c) }

// DeRegKeyCert deregisters a stake key, crediting its decayed refund (spec
// §4.3).
type DeRegKeyCert struct {
	StakeKey HashKey `serialize:"true" json:"stakeKey"`
}

func (c *DeRegKeyCert) Visit(v CertVisitor) error { return v.DeRegKey(c) }

// DelegateCert delegates a registered stake key's stake to a pool (spec
// §4.3). The target pool need not yet be registered.
type DelegateCert struct {
	StakeKey HashKey `serialize:"true" json:"stakeKey"`
	PoolKey  HashKey `serialize:"true" json:"poolKey"`
}

func (c *DelegateCert) Visit(v CertVisitor) error { return v.Delegate(c) }

// PoolParams are the parameters of a stake pool (spec §4.5, §9 Pledge).
type PoolParams struct {
	// PoolKey is the pool's own verification-key hash; hash(poolKey(p)) in
	// spec §4.3's RegPool row.
	PoolKey HashKey `serialize:"true" json:"poolKey"`

	// Owners are the stake-key hashes whose delegated stake counts toward
	// this pool's pledge (spec glossary "Pledge").
	Owners []HashKey `serialize:"true" json:"owners"`

	// Pledge is the amount the operator commits to keep delegated to their
	// own pool.
	Pledge chain.Coin `serialize:"true" json:"pledge"`

	// Cost is the pool's fixed per-epoch operating cost, taken off the top
	// of poolR before the leader/member split (spec §4.5 step 5).
	Cost chain.Coin `serialize:"true" json:"cost"`

	// Margin is the pool's additional percentage cut of the
	// cost-exceeding remainder (spec §4.5 step 5).
	Margin chain.UnitInterval `serialize:"true" json:"margin"`

	// RewardAccount is where the pool leader's reward is credited.
	RewardAccount RewardAcnt `serialize:"true" json:"rewardAccount"`
}

// RegPoolCert registers a new stake pool, or updates the parameters of an
// already-registered one (spec §4.3).
type RegPoolCert struct {
	Params PoolParams `serialize:"true" json:"poolParams"`
}

func (c *RegPoolCert) Visit(v CertVisitor) error { return v.RegPool(c) }

// RetirePoolCert schedules a registered pool for retirement at a future
// epoch (spec §4.3).
type RetirePoolCert struct {
	PoolKey HashKey     `serialize:"true" json:"poolKey"`
	Epoch   chain.Epoch `serialize:"true" json:"epoch"`
}

func (c *RetirePoolCert) Visit(v CertVisitor) error { return v.RetirePool(c) }
