// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package mempool

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/optakt/hsd-rosetta/codec/wire"
	"github.com/optakt/hsd-rosetta/models/hns"
)

// Mempool gives access to the unconfirmed transactions of the node. Coins
// spent by mempool transactions are resolved from the index first and from
// other mempool transactions second.
type Mempool struct {
	log   zerolog.Logger
	node  Node
	index Index
}

func New(log zerolog.Logger, node Node, index Index) *Mempool {

	m := Mempool{
		log:   log.With().Str("component", "mempool").Logger(),
		node:  node,
		index: index,
	}

	return &m
}

// Snapshot returns the hashes of all transactions currently in the mempool.
func (m *Mempool) Snapshot() ([]hns.Hash, error) {
	hashes, err := m.node.RawMempool()
	if err != nil {
		return nil, fmt.Errorf("could not get raw mempool: %w", err)
	}
	return hashes, nil
}

// Transaction returns a transaction of the mempool. Transactions that are not
// part of the mempool are reported as not found, even if the node knows them.
func (m *Mempool) Transaction(hash hns.Hash) (*hns.Transaction, error) {

	hashes, err := m.Snapshot()
	if err != nil {
		return nil, err
	}

	if !contains(hashes, hash) {
		return nil, fmt.Errorf("%w: transaction not in mempool (hash: %s)", hns.ErrNotFound, hash)
	}

	return m.transaction(hash)
}

// View resolves the coins spent by a mempool transaction. Inputs that can be
// resolved neither from the index nor from a parent in the mempool are left
// out of the view.
func (m *Mempool) View(tx *hns.Transaction) (hns.View, error) {

	view := hns.NewView()
	if tx.Coinbase() {
		return view, nil
	}

	var pool map[hns.Hash]struct{}
	parents := make(map[hns.Hash]*hns.Transaction)
	for _, input := range tx.Inputs {

		coin, err := m.index.Coin(input.Prevout)
		if err == nil {
			view[input.Prevout] = coin
			continue
		}
		if !errors.Is(err, hns.ErrNotFound) {
			return nil, fmt.Errorf("could not get coin (hash: %s, index: %d): %w", input.Prevout.Hash, input.Prevout.Index, err)
		}

		// The mempool is only listed once, when the first input is missing
		// from the index.
		if pool == nil {
			hashes, err := m.Snapshot()
			if err != nil {
				return nil, err
			}
			pool = make(map[hns.Hash]struct{}, len(hashes))
			for _, hash := range hashes {
				pool[hash] = struct{}{}
			}
		}
		_, ok := pool[input.Prevout.Hash]
		if !ok {
			m.log.Debug().Str("hash", input.Prevout.Hash.String()).Msg("skipping input with unknown parent")
			continue
		}

		parent, ok := parents[input.Prevout.Hash]
		if !ok {
			parent, err = m.transaction(input.Prevout.Hash)
			if err != nil {
				return nil, err
			}
			parents[input.Prevout.Hash] = parent
		}

		if int(input.Prevout.Index) >= len(parent.Outputs) {
			m.log.Warn().
				Str("hash", input.Prevout.Hash.String()).
				Uint32("index", input.Prevout.Index).
				Msg("skipping input with invalid output index")
			continue
		}

		view[input.Prevout] = hns.NewCoin(parent, input.Prevout.Index, 0)
	}

	return view, nil
}

// Submit decodes a hex encoded signed transaction and relays it through the
// node.
func (m *Mempool) Submit(raw string) (hns.Hash, error) {

	data, err := hex.DecodeString(raw)
	if err != nil {
		return hns.ZeroHash, fmt.Errorf("could not decode hex transaction: %w", err)
	}
	tx, err := wire.DecodeTransaction(data)
	if err != nil {
		return hns.ZeroHash, fmt.Errorf("could not decode transaction: %w", err)
	}

	hash, err := m.node.Relay(data)
	if err != nil {
		return hns.ZeroHash, fmt.Errorf("could not relay transaction (hash: %s): %w", tx.Hash, err)
	}

	m.log.Info().Str("hash", hash.String()).Msg("transaction relayed")

	return hash, nil
}

func (m *Mempool) transaction(hash hns.Hash) (*hns.Transaction, error) {
	data, err := m.node.RawTransaction(hash)
	if err != nil {
		return nil, fmt.Errorf("could not get raw transaction: %w", err)
	}
	tx, err := wire.DecodeTransaction(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction (hash: %s): %w", hash, err)
	}
	return tx, nil
}

func contains(hashes []hns.Hash, hash hns.Hash) bool {
	for _, candidate := range hashes {
		if candidate == hash {
			return true
		}
	}
	return false
}
