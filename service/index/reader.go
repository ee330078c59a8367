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

package index

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/dgraph-io/ristretto"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/service/storage"
)

// Reader provides read access to the chain index. Missing entries are reported
// with errors that wrap hns.ErrNotFound.
type Reader struct {
	db     *badger.DB
	lib    *storage.Library
	blocks *ristretto.Cache
}

// NewReader creates a new index reader on the given Badger database.
func NewReader(db *badger.DB, lib *storage.Library, options ...func(*Config)) (*Reader, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	// Blocks are cached by hash rather than height, so entries can never go
	// stale when a block is rolled back and replaced.
	blocks, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(10 * cfg.CacheSize),
		MaxCost:     int64(cfg.CacheSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create block cache: %w", err)
	}

	r := Reader{
		db:     db,
		lib:    lib,
		blocks: blocks,
	}

	return &r, nil
}

// First returns the height of the first indexed block.
func (r *Reader) First() (uint64, error) {
	var height uint64
	err := r.view(r.lib.RetrieveFirst(&height))
	return height, err
}

// Last returns the height of the last indexed block.
func (r *Reader) Last() (uint64, error) {
	var height uint64
	err := r.view(r.lib.RetrieveLast(&height))
	return height, err
}

// Tip returns the identity of the last indexed block.
func (r *Reader) Tip() (hns.Tip, error) {
	var height uint64
	var header hns.Header
	err := r.view(func(tx *badger.Txn) error {
		err := r.lib.RetrieveLast(&height)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve last height: %w", err)
		}
		err = r.lib.RetrieveHeader(height, &header)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve header: %w", err)
		}
		return nil
	})
	if err != nil {
		return hns.Tip{}, err
	}

	tip := hns.Tip{
		Height: height,
		Hash:   header.Hash,
		Time:   header.Time,
	}

	return tip, nil
}

// Genesis returns the hash of the genesis block.
func (r *Reader) Genesis() (hns.Hash, error) {
	var hash hns.Hash
	err := r.view(r.lib.RetrieveGenesis(&hash))
	return hash, err
}

// Header returns the header of the block at the given height.
func (r *Reader) Header(height uint64) (*hns.Header, error) {
	var header hns.Header
	err := r.view(r.lib.RetrieveHeader(height, &header))
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// Block returns the block at the given height with all its transactions.
func (r *Reader) Block(height uint64) (*hns.Block, error) {
	header, err := r.Header(height)
	if err != nil {
		return nil, err
	}

	cached, ok := r.blocks.Get(header.Hash[:])
	if ok {
		return cached.(*hns.Block), nil
	}

	block := hns.Block{
		Header: *header,
	}
	err = r.view(func(tx *badger.Txn) error {
		var hashes []hns.Hash
		err := r.lib.LookupTransactionsForHeight(height, &hashes)(tx)
		if err != nil {
			return fmt.Errorf("could not look up transactions: %w", err)
		}
		block.Transactions = make([]*hns.Transaction, 0, len(hashes))
		for _, hash := range hashes {
			var transaction hns.Transaction
			err := r.lib.RetrieveTransaction(hash, &transaction)(tx)
			if err != nil {
				return fmt.Errorf("could not retrieve transaction (hash: %s): %w", hash, err)
			}
			block.Transactions = append(block.Transactions, &transaction)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.blocks.Set(header.Hash[:], &block, 1)

	return &block, nil
}

// HeightForBlock returns the height of the block with the given hash.
func (r *Reader) HeightForBlock(hash hns.Hash) (uint64, error) {
	var height uint64
	err := r.view(r.lib.LookupHeightForBlock(hash, &height))
	return height, err
}

// View returns the coins spent by the block at the given height.
func (r *Reader) View(height uint64) (hns.View, error) {
	var coins []hns.Coin
	err := r.view(r.lib.RetrieveView(height, &coins))
	if err != nil {
		return nil, err
	}
	return hns.NewView(coins...), nil
}

// Transaction returns the transaction with the given hash and the height of
// the block that includes it.
func (r *Reader) Transaction(hash hns.Hash) (*hns.Transaction, uint64, error) {
	var transaction hns.Transaction
	var height uint64
	err := r.view(storage.Combine(
		r.lib.RetrieveTransaction(hash, &transaction),
		r.lib.LookupHeightForTransaction(hash, &height),
	))
	if err != nil {
		return nil, 0, err
	}
	return &transaction, height, nil
}

// Coin returns the unspent coin at the given outpoint.
func (r *Reader) Coin(outpoint hns.Outpoint) (hns.Coin, error) {
	var coin hns.Coin
	err := r.view(r.lib.RetrieveCoin(outpoint, &coin))
	return coin, err
}

// Coins returns all unspent coins of the given address.
func (r *Reader) Coins(address hns.Address) ([]hns.Coin, error) {
	var coins []hns.Coin
	err := r.view(func(tx *badger.Txn) error {
		var outpoints []hns.Outpoint
		err := r.lib.LookupCoinsForAddress(address, &outpoints)(tx)
		if err != nil {
			return fmt.Errorf("could not look up coins: %w", err)
		}
		coins = make([]hns.Coin, 0, len(outpoints))
		for _, outpoint := range outpoints {
			var coin hns.Coin
			err := r.lib.RetrieveCoin(outpoint, &coin)(tx)
			if err != nil {
				return fmt.Errorf("could not retrieve coin (hash: %s, index: %d): %w", outpoint.Hash, outpoint.Index, err)
			}
			coins = append(coins, coin)
		}
		return nil
	})
	return coins, err
}

func (r *Reader) view(op func(*badger.Txn) error) error {
	err := r.db.View(op)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", hns.ErrNotFound, err)
	}
	return err
}
