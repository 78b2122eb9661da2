// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

// Ptr is the triple (slot, txIndex, certIndex) assigned at the moment a
// registration certificate is committed (spec §3, glossary "Pointer"). An
// address may reference a stake key through a Ptr instead of embedding the
// key hash directly.
type Ptr struct {
	Slot     Slot   `json:"slot"`
	TxIndex  uint32 `json:"txIndex"`
	CertIndex uint32 `json:"certIndex"`
}

// Less gives Ptr values a canonical total order for deterministic iteration
// (spec §5).
func (p Ptr) Less(other Ptr) bool {
	if p.Slot != other.Slot {
		return p.Slot < other.Slot
	}
	if p.TxIndex != other.TxIndex {
		return p.TxIndex < other.TxIndex
	}
	return p.CertIndex < other.CertIndex
}
