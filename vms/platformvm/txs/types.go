// Copyright (C) 2024, The blinklabs-io/ledger Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import "github.com/blinklabs-io/ledger/ids"

// HashKey identifies a stake key, pool key, or genesis delegate (spec §3).
type HashKey = ids.HashKey

// TxID is the hash of a transaction's body.
type TxID = ids.TxID

// RewardAcnt is the reward account addressed by a stake key's hash. Spec §3
// defines DState.rewards as map[RewardAcnt]Coin; RewardAcnt is kept as a
// distinct name (rather than a bare HashKey) because it names a role, not
// an identity, the way the teacher's code distinguishes ids.NodeID from a
// bare ids.ID.
type RewardAcnt = HashKey
