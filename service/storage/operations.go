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

package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/hsd-rosetta/models/hns"
)

// SaveFirst is an operation that writes the height of the first indexed block.
func (l *Library) SaveFirst(height uint64) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixFirst), height)
}

// SaveLast is an operation that writes the height of the last indexed block.
func (l *Library) SaveLast(height uint64) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixLast), height)
}

// SaveGenesis is an operation that writes the hash of the genesis block.
func (l *Library) SaveGenesis(hash hns.Hash) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixGenesis), hash)
}

// SaveHeader is an operation that writes the header of the block at a height.
func (l *Library) SaveHeader(height uint64, header *hns.Header) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixHeader, height), header)
}

// IndexHeightForBlock is an operation that indexes the given height for its block hash.
func (l *Library) IndexHeightForBlock(hash hns.Hash, height uint64) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixHeightForBlock, hash), height)
}

// IndexTransactionsForHeight is an operation that indexes the ordered transaction
// hashes of the block at a height.
func (l *Library) IndexTransactionsForHeight(height uint64, hashes []hns.Hash) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixTransactionsForHeight, height), hashes)
}

// SaveTransaction is an operation that writes the given transaction.
func (l *Library) SaveTransaction(tx *hns.Transaction) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixTransaction, tx.Hash), tx)
}

// IndexHeightForTransaction is an operation that indexes the height of a transaction hash.
func (l *Library) IndexHeightForTransaction(hash hns.Hash, height uint64) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixHeightForTransaction, hash), height)
}

// SaveView is an operation that writes the coins spent by the block at a height.
func (l *Library) SaveView(height uint64, coins []hns.Coin) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixView, height), coins)
}

// SaveCoin is an operation that adds the given coin to the unspent coin set.
func (l *Library) SaveCoin(coin hns.Coin) func(*badger.Txn) error {
	return l.save(EncodeKey(PrefixCoin, coin.Prevout), coin)
}

// IndexCoinForAddress is an operation that adds the outpoint of a coin to the set
// of coins of its address.
func (l *Library) IndexCoinForAddress(address hns.Address, outpoint hns.Outpoint) func(*badger.Txn) error {
	return l.mark(EncodeKey(PrefixCoinsForAddress, address, outpoint))
}

// RetrieveFirst retrieves the first indexed height.
func (l *Library) RetrieveFirst(height *uint64) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixFirst), height)
}

// RetrieveLast retrieves the last indexed height.
func (l *Library) RetrieveLast(height *uint64) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixLast), height)
}

// RetrieveGenesis retrieves the hash of the genesis block.
func (l *Library) RetrieveGenesis(hash *hns.Hash) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixGenesis), hash)
}

// RetrieveHeader retrieves the header of the block at a height.
func (l *Library) RetrieveHeader(height uint64, header *hns.Header) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixHeader, height), header)
}

// LookupHeightForBlock retrieves the height of the given block hash.
func (l *Library) LookupHeightForBlock(hash hns.Hash, height *uint64) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixHeightForBlock, hash), height)
}

// LookupTransactionsForHeight retrieves the ordered transaction hashes of the
// block at a height.
func (l *Library) LookupTransactionsForHeight(height uint64, hashes *[]hns.Hash) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixTransactionsForHeight, height), hashes)
}

// RetrieveTransaction retrieves the transaction with the given hash.
func (l *Library) RetrieveTransaction(hash hns.Hash, tx *hns.Transaction) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixTransaction, hash), tx)
}

// LookupHeightForTransaction retrieves the height of the given transaction hash.
func (l *Library) LookupHeightForTransaction(hash hns.Hash, height *uint64) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixHeightForTransaction, hash), height)
}

// RetrieveView retrieves the coins spent by the block at a height.
func (l *Library) RetrieveView(height uint64, coins *[]hns.Coin) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixView, height), coins)
}

// RetrieveCoin retrieves the unspent coin for the given outpoint.
func (l *Library) RetrieveCoin(outpoint hns.Outpoint, coin *hns.Coin) func(*badger.Txn) error {
	return l.retrieve(EncodeKey(PrefixCoin, outpoint), coin)
}

// LookupCoinsForAddress retrieves the outpoints of all unspent coins of an address.
func (l *Library) LookupCoinsForAddress(address hns.Address, outpoints *[]hns.Outpoint) func(*badger.Txn) error {
	prefix := EncodeKey(PrefixCoinsForAddress, address)
	return func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			if len(key) != len(prefix)+OutpointSize {
				return fmt.Errorf("invalid address key length (key: %x)", key)
			}
			outpoint, err := DecodeOutpoint(key)
			if err != nil {
				return fmt.Errorf("could not decode outpoint: %w", err)
			}
			*outpoints = append(*outpoints, outpoint)
		}

		return nil
	}
}

// DeleteFirst is an operation that removes the first indexed height.
func (l *Library) DeleteFirst() func(*badger.Txn) error {
	return l.delete(EncodeKey(PrefixFirst))
}

// DeleteLast is an operation that removes the last indexed height.
func (l *Library) DeleteLast() func(*badger.Txn) error {
	return l.delete(EncodeKey(PrefixLast))
}

// DeleteHeader is an operation that removes the header at a height.
func (l *Library) DeleteHeader(height uint64) func(*badger.Txn) error {
	return l.delete(EncodeKey(PrefixHeader, height))
}

// DeleteHeightForBlock is an operation that removes the height index of a block hash.
func (l *Library) DeleteHeightForBlock(hash hns.Hash) func(*badger.Txn) error {
	return l.delete(EncodeKey(PrefixHeightForBlock, hash))
}

// DeleteTransactionsForHeight is an operation that removes the transaction list of a height.
func (l *Library) DeleteTransactionsForHeight(height uint64) func(*badger.Txn) error {
	return l.delete(EncodeKey(PrefixTransactionsForHeight, height))
}

// DeleteTransaction is an operation that removes a transaction and its height index.
func (l *Library) DeleteTransaction(hash hns.Hash) func(*badger.Txn) error {
	return Combine(
		l.delete(EncodeKey(PrefixTransaction, hash)),
		l.delete(EncodeKey(PrefixHeightForTransaction, hash)),
	)
}

// DeleteView is an operation that removes the spent coins of a height.
func (l *Library) DeleteView(height uint64) func(*badger.Txn) error {
	return l.delete(EncodeKey(PrefixView, height))
}

// DeleteCoin is an operation that removes a coin from the unspent coin set,
// together with its entry in the coins of its address.
func (l *Library) DeleteCoin(coin hns.Coin) func(*badger.Txn) error {
	return Combine(
		l.delete(EncodeKey(PrefixCoin, coin.Prevout)),
		l.delete(EncodeKey(PrefixCoinsForAddress, coin.Address, coin.Prevout)),
	)
}
