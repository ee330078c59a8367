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

package storage_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/codec/zbor"
	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/service/storage"
	"github.com/optakt/hsd-rosetta/testing/helpers"
)

func TestLibrary_Heights(t *testing.T) {
	db := helpers.InMemoryDB(t)
	lib := storage.New(zbor.NewCodec(zstd.SpeedFastest))

	t.Run("save first and last height", func(t *testing.T) {
		err := db.Update(storage.Combine(lib.SaveFirst(7), lib.SaveLast(42)))
		require.NoError(t, err)
	})

	t.Run("retrieve first and last height", func(t *testing.T) {
		var first, last uint64
		err := db.View(storage.Combine(lib.RetrieveFirst(&first), lib.RetrieveLast(&last)))

		require.NoError(t, err)
		assert.Equal(t, uint64(7), first)
		assert.Equal(t, uint64(42), last)
	})

	t.Run("delete last height", func(t *testing.T) {
		err := db.Update(lib.DeleteLast())
		require.NoError(t, err)

		var last uint64
		err = db.View(lib.RetrieveLast(&last))
		assert.ErrorIs(t, err, badger.ErrKeyNotFound)
	})
}

func TestLibrary_Blocks(t *testing.T) {
	db := helpers.InMemoryDB(t)
	lib := storage.New(zbor.NewCodec(zstd.SpeedFastest))

	header := &hns.Header{
		Hash:       hns.Hash{0x01},
		PrevBlock:  hns.Hash{0x02},
		MerkleRoot: hns.Hash{0x03},
		Time:       1580745078,
		Bits:       0x1c00ffff,
	}
	tx := &hns.Transaction{
		Hash:     hns.Hash{0x04},
		Outputs:  []hns.Output{{Value: 10, Address: hns.Address{Hash: []byte{1, 2}}}},
		LockTime: 3,
		Size:     120,
	}

	err := db.Update(storage.Combine(
		lib.SaveHeader(12, header),
		lib.IndexHeightForBlock(header.Hash, 12),
		lib.IndexTransactionsForHeight(12, []hns.Hash{tx.Hash}),
		lib.SaveTransaction(tx),
		lib.IndexHeightForTransaction(tx.Hash, 12),
	))
	require.NoError(t, err)

	t.Run("retrieve header", func(t *testing.T) {
		t.Parallel()

		var got hns.Header
		err := db.View(lib.RetrieveHeader(12, &got))

		require.NoError(t, err)
		assert.Equal(t, *header, got)
	})

	t.Run("lookup height for block", func(t *testing.T) {
		t.Parallel()

		var got uint64
		err := db.View(lib.LookupHeightForBlock(header.Hash, &got))

		require.NoError(t, err)
		assert.Equal(t, uint64(12), got)
	})

	t.Run("lookup transactions for height", func(t *testing.T) {
		t.Parallel()

		var got []hns.Hash
		err := db.View(lib.LookupTransactionsForHeight(12, &got))

		require.NoError(t, err)
		assert.Equal(t, []hns.Hash{tx.Hash}, got)
	})

	t.Run("retrieve transaction and height", func(t *testing.T) {
		t.Parallel()

		var got hns.Transaction
		var height uint64
		err := db.View(storage.Combine(
			lib.RetrieveTransaction(tx.Hash, &got),
			lib.LookupHeightForTransaction(tx.Hash, &height),
		))

		require.NoError(t, err)
		assert.Equal(t, *tx, got)
		assert.Equal(t, uint64(12), height)
	})

	t.Run("handles missing header", func(t *testing.T) {
		t.Parallel()

		var got hns.Header
		err := db.View(lib.RetrieveHeader(13, &got))

		assert.ErrorIs(t, err, badger.ErrKeyNotFound)
	})
}

func TestLibrary_Coins(t *testing.T) {
	db := helpers.InMemoryDB(t)
	lib := storage.New(zbor.NewCodec(zstd.SpeedFastest))

	address := hns.Address{Version: 0, Hash: []byte{0xaa, 0xbb}}
	longer := hns.Address{Version: 0, Hash: []byte{0xaa, 0xbb, 0xcc}}
	coin1 := hns.Coin{Prevout: hns.Outpoint{Hash: hns.Hash{0x01}, Index: 0}, Value: 1000, Address: address}
	coin2 := hns.Coin{Prevout: hns.Outpoint{Hash: hns.Hash{0x02}, Index: 5}, Value: 2000, Address: address}
	coin3 := hns.Coin{Prevout: hns.Outpoint{Hash: hns.Hash{0x03}, Index: 1}, Value: 3000, Address: longer}

	var ops []func(*badger.Txn) error
	for _, coin := range []hns.Coin{coin1, coin2, coin3} {
		ops = append(ops, lib.SaveCoin(coin), lib.IndexCoinForAddress(coin.Address, coin.Prevout))
	}
	err := db.Update(storage.Combine(ops...))
	require.NoError(t, err)

	t.Run("retrieve coin", func(t *testing.T) {
		var got hns.Coin
		err := db.View(lib.RetrieveCoin(coin2.Prevout, &got))

		require.NoError(t, err)
		assert.Equal(t, coin2, got)
	})

	t.Run("lookup coins for address", func(t *testing.T) {
		var got []hns.Outpoint
		err := db.View(lib.LookupCoinsForAddress(address, &got))

		require.NoError(t, err)
		assert.ElementsMatch(t, []hns.Outpoint{coin1.Prevout, coin2.Prevout}, got)
	})

	t.Run("delete coin", func(t *testing.T) {
		err := db.Update(lib.DeleteCoin(coin1))
		require.NoError(t, err)

		var got []hns.Outpoint
		err = db.View(lib.LookupCoinsForAddress(address, &got))
		require.NoError(t, err)
		assert.Equal(t, []hns.Outpoint{coin2.Prevout}, got)

		var coin hns.Coin
		err = db.View(lib.RetrieveCoin(coin1.Prevout, &coin))
		assert.ErrorIs(t, err, badger.ErrKeyNotFound)
	})

	t.Run("save and retrieve view", func(t *testing.T) {
		err := db.Update(lib.SaveView(3, []hns.Coin{coin1, coin3}))
		require.NoError(t, err)

		var got []hns.Coin
		err = db.View(lib.RetrieveView(3, &got))
		require.NoError(t, err)
		assert.Equal(t, []hns.Coin{coin1, coin3}, got)
	})
}
