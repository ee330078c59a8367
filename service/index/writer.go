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

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/service/storage"
)

// Writer maintains the chain index. Every block is applied in a single Badger
// transaction, which updates the unspent coin set and records the coins the
// block spent, so that the block can later be rolled back.
type Writer struct {
	db  *badger.DB
	lib *storage.Library
}

// NewWriter creates a new index writer that writes to the given Badger database.
func NewWriter(db *badger.DB, lib *storage.Library) *Writer {

	w := Writer{
		db:  db,
		lib: lib,
	}

	return &w
}

// Genesis indexes the hash of the genesis block of the network.
func (w *Writer) Genesis(hash hns.Hash) error {
	return w.db.Update(w.lib.SaveGenesis(hash))
}

// Apply indexes the block at the given height. The height has to follow the
// last indexed height, unless the index is still empty.
func (w *Writer) Apply(height uint64, block *hns.Block) error {
	err := w.db.Update(func(tx *badger.Txn) error {

		var last uint64
		err := w.lib.RetrieveLast(&last)(tx)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
			err = w.lib.SaveFirst(height)(tx)
			if err != nil {
				return fmt.Errorf("could not save first height: %w", err)
			}
		case err != nil:
			return fmt.Errorf("could not retrieve last height: %w", err)
		case height != last+1:
			return fmt.Errorf("invalid height to apply (last: %d, height: %d)", last, height)
		}

		// Coins created and spent within the block end up in the view too; the
		// rollback skips them when restoring.
		var spent []hns.Coin
		hashes := make([]hns.Hash, 0, len(block.Transactions))
		for _, transaction := range block.Transactions {
			hashes = append(hashes, transaction.Hash)

			if !transaction.Coinbase() {
				for _, input := range transaction.Inputs {
					var coin hns.Coin
					err := w.lib.RetrieveCoin(input.Prevout, &coin)(tx)
					if errors.Is(err, badger.ErrKeyNotFound) {
						continue
					}
					if err != nil {
						return fmt.Errorf("could not retrieve spent coin (hash: %s, index: %d): %w", input.Prevout.Hash, input.Prevout.Index, err)
					}
					err = w.lib.DeleteCoin(coin)(tx)
					if err != nil {
						return fmt.Errorf("could not delete spent coin (hash: %s, index: %d): %w", input.Prevout.Hash, input.Prevout.Index, err)
					}
					spent = append(spent, coin)
				}
			}

			for index, output := range transaction.Outputs {
				if output.Address.Absent() || output.Unspendable() {
					continue
				}
				coin := hns.NewCoin(transaction, uint32(index), height)
				err := storage.Combine(
					w.lib.SaveCoin(coin),
					w.lib.IndexCoinForAddress(coin.Address, coin.Prevout),
				)(tx)
				if err != nil {
					return fmt.Errorf("could not save coin (hash: %s, index: %d): %w", transaction.Hash, index, err)
				}
			}

			err := storage.Combine(
				w.lib.SaveTransaction(transaction),
				w.lib.IndexHeightForTransaction(transaction.Hash, height),
			)(tx)
			if err != nil {
				return fmt.Errorf("could not save transaction (hash: %s): %w", transaction.Hash, err)
			}
		}

		err = storage.Combine(
			w.lib.SaveHeader(height, &block.Header),
			w.lib.IndexHeightForBlock(block.Header.Hash, height),
			w.lib.IndexTransactionsForHeight(height, hashes),
			w.lib.SaveView(height, spent),
			w.lib.SaveLast(height),
		)(tx)
		if err != nil {
			return fmt.Errorf("could not save block: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not apply block (height: %d): %w", height, err)
	}

	return nil
}

// Rollback removes the block at the given height from the index, which has to
// be the last indexed height, and restores the coins it spent.
func (w *Writer) Rollback(height uint64) error {
	err := w.db.Update(func(tx *badger.Txn) error {

		var first, last uint64
		err := storage.Combine(
			w.lib.RetrieveFirst(&first),
			w.lib.RetrieveLast(&last),
		)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve height range: %w", err)
		}
		if height != last {
			return fmt.Errorf("invalid height to roll back (last: %d, height: %d)", last, height)
		}

		var header hns.Header
		var hashes []hns.Hash
		var spent []hns.Coin
		err = storage.Combine(
			w.lib.RetrieveHeader(height, &header),
			w.lib.LookupTransactionsForHeight(height, &hashes),
			w.lib.RetrieveView(height, &spent),
		)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve block data: %w", err)
		}

		created := make(map[hns.Hash]struct{}, len(hashes))
		for _, hash := range hashes {
			created[hash] = struct{}{}

			var transaction hns.Transaction
			err := w.lib.RetrieveTransaction(hash, &transaction)(tx)
			if err != nil {
				return fmt.Errorf("could not retrieve transaction (hash: %s): %w", hash, err)
			}

			for index, output := range transaction.Outputs {
				if output.Address.Absent() || output.Unspendable() {
					continue
				}
				coin := hns.NewCoin(&transaction, uint32(index), height)
				err := w.lib.DeleteCoin(coin)(tx)
				if err != nil {
					return fmt.Errorf("could not delete coin (hash: %s, index: %d): %w", hash, index, err)
				}
			}

			err = w.lib.DeleteTransaction(hash)(tx)
			if err != nil {
				return fmt.Errorf("could not delete transaction (hash: %s): %w", hash, err)
			}
		}

		for _, coin := range spent {
			_, ok := created[coin.Prevout.Hash]
			if ok {
				continue
			}
			err := storage.Combine(
				w.lib.SaveCoin(coin),
				w.lib.IndexCoinForAddress(coin.Address, coin.Prevout),
			)(tx)
			if err != nil {
				return fmt.Errorf("could not restore coin (hash: %s, index: %d): %w", coin.Prevout.Hash, coin.Prevout.Index, err)
			}
		}

		err = storage.Combine(
			w.lib.DeleteHeader(height),
			w.lib.DeleteHeightForBlock(header.Hash),
			w.lib.DeleteTransactionsForHeight(height),
			w.lib.DeleteView(height),
		)(tx)
		if err != nil {
			return fmt.Errorf("could not delete block: %w", err)
		}

		if height == first {
			return storage.Combine(w.lib.DeleteFirst(), w.lib.DeleteLast())(tx)
		}

		return w.lib.SaveLast(height - 1)(tx)
	})
	if err != nil {
		return fmt.Errorf("could not roll back block (height: %d): %w", height, err)
	}

	return nil
}
