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

package index_test

import (
	"math"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/codec/zbor"
	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/service/index"
	"github.com/optakt/hsd-rosetta/service/storage"
	"github.com/optakt/hsd-rosetta/testing/helpers"
)

var (
	addressX = hns.Address{Version: 0, Hash: []byte{0x0a, 0x0a, 0x0a, 0x0a}}
	addressY = hns.Address{Version: 0, Hash: []byte{0x0b, 0x0b, 0x0b, 0x0b}}
)

func coinbase(hash byte, outputs ...hns.Output) *hns.Transaction {
	return &hns.Transaction{
		Hash:    hns.Hash{hash},
		Inputs:  []hns.Input{{Prevout: hns.Outpoint{Hash: hns.ZeroHash, Index: math.MaxUint32}}},
		Outputs: outputs,
	}
}

func spend(hash byte, prevouts []hns.Outpoint, outputs ...hns.Output) *hns.Transaction {
	inputs := make([]hns.Input, 0, len(prevouts))
	for _, prevout := range prevouts {
		inputs = append(inputs, hns.Input{Prevout: prevout, Witness: hns.Witness{{0x01}}})
	}
	return &hns.Transaction{
		Hash:    hns.Hash{hash},
		Inputs:  inputs,
		Outputs: outputs,
	}
}

func testChain() (*hns.Block, *hns.Block) {
	txA := coinbase(0xa0,
		hns.Output{Value: 1000, Address: addressX},
		hns.Output{Value: 2000, Address: addressY},
		hns.Output{Value: 0, Address: hns.Address{Version: hns.NulldataVersion, Hash: []byte{0xff, 0xff}}},
	)
	block0 := &hns.Block{
		Header:       hns.Header{Hash: hns.Hash{0x10}, Time: 100},
		Transactions: []*hns.Transaction{txA},
	}

	txB := coinbase(0xb0, hns.Output{Value: 50, Address: addressY})
	txC := spend(0xc0, []hns.Outpoint{{Hash: txA.Hash, Index: 0}},
		hns.Output{Value: 500, Address: addressY},
		hns.Output{Value: 400, Address: addressX},
	)
	txD := spend(0xd0, []hns.Outpoint{{Hash: txC.Hash, Index: 1}, {Hash: hns.Hash{0xee}, Index: 9}},
		hns.Output{Value: 300, Address: addressY},
	)
	block1 := &hns.Block{
		Header:       hns.Header{Hash: hns.Hash{0x11}, PrevBlock: block0.Header.Hash, Time: 200},
		Transactions: []*hns.Transaction{txB, txC, txD},
	}

	return block0, block1
}

func values(coins []hns.Coin) []uint64 {
	vals := make([]uint64, 0, len(coins))
	for _, coin := range coins {
		vals = append(vals, coin.Value)
	}
	return vals
}

func TestIndex(t *testing.T) {
	db := helpers.InMemoryDB(t)
	lib := storage.New(zbor.NewCodec(zstd.SpeedFastest))
	write := index.NewWriter(db, lib)
	read, err := index.NewReader(db, lib, index.WithCacheSize(16))
	require.NoError(t, err)

	block0, block1 := testChain()

	t.Run("empty index", func(t *testing.T) {
		_, err := read.Tip()
		assert.ErrorIs(t, err, hns.ErrNotFound)
	})

	t.Run("apply first block", func(t *testing.T) {
		require.NoError(t, write.Genesis(block0.Header.Hash))
		require.NoError(t, write.Apply(0, block0))

		tip, err := read.Tip()
		require.NoError(t, err)
		assert.Equal(t, hns.Tip{Height: 0, Hash: block0.Header.Hash, Time: 100}, tip)

		genesis, err := read.Genesis()
		require.NoError(t, err)
		assert.Equal(t, block0.Header.Hash, genesis)

		coins, err := read.Coins(addressX)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1000}, values(coins))
	})

	t.Run("reject non-sequential height", func(t *testing.T) {
		err := write.Apply(5, block1)
		assert.Error(t, err)
	})

	t.Run("apply second block", func(t *testing.T) {
		require.NoError(t, write.Apply(1, block1))

		last, err := read.Last()
		require.NoError(t, err)
		assert.Equal(t, uint64(1), last)

		coins, err := read.Coins(addressX)
		require.NoError(t, err)
		assert.Empty(t, coins)

		coins, err = read.Coins(addressY)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint64{2000, 50, 500, 300}, values(coins))

		view, err := read.View(1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint64{1000, 400}, values(view.Coins()))

		height, err := read.HeightForBlock(block1.Header.Hash)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), height)

		tx, height, err := read.Transaction(hns.Hash{0xc0})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), height)
		assert.Len(t, tx.Outputs, 2)

		block, err := read.Block(1)
		require.NoError(t, err)
		require.Len(t, block.Transactions, 3)
		assert.Equal(t, hns.Hash{0xb0}, block.Transactions[0].Hash)
		assert.Equal(t, hns.Hash{0xd0}, block.Transactions[2].Hash)
	})

	t.Run("reject rollback below tip", func(t *testing.T) {
		err := write.Rollback(0)
		assert.Error(t, err)
	})

	t.Run("roll back second block", func(t *testing.T) {
		require.NoError(t, write.Rollback(1))

		tip, err := read.Tip()
		require.NoError(t, err)
		assert.Equal(t, uint64(0), tip.Height)

		coins, err := read.Coins(addressX)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1000}, values(coins))

		coins, err = read.Coins(addressY)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2000}, values(coins))

		_, _, err = read.Transaction(hns.Hash{0xc0})
		assert.ErrorIs(t, err, hns.ErrNotFound)

		_, err = read.Block(1)
		assert.ErrorIs(t, err, hns.ErrNotFound)

		_, err = read.HeightForBlock(block1.Header.Hash)
		assert.ErrorIs(t, err, hns.ErrNotFound)
	})

	t.Run("roll back first block", func(t *testing.T) {
		require.NoError(t, write.Rollback(0))

		_, err := read.Last()
		assert.ErrorIs(t, err, hns.ErrNotFound)

		coins, err := read.Coins(addressX)
		require.NoError(t, err)
		assert.Empty(t, coins)
	})
}

func TestMetricsWriter(t *testing.T) {
	db := helpers.InMemoryDB(t)
	lib := storage.New(zbor.NewCodec(zstd.SpeedFastest))
	registry := prometheus.NewRegistry()
	write := index.NewMetricsWriter(index.NewWriter(db, lib), registry)

	block0, block1 := testChain()

	require.NoError(t, write.Apply(0, block0))
	require.NoError(t, write.Apply(1, block1))
	require.NoError(t, write.Rollback(1))

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
	got := make(map[string]float64)
	for _, family := range families {
		metric := family.GetMetric()[0]
		if metric.GetCounter() != nil {
			got[family.GetName()] = metric.GetCounter().GetValue()
		}
		if metric.GetGauge() != nil {
			got[family.GetName()] = metric.GetGauge().GetValue()
		}
	}
	assert.Equal(t, float64(2), got["indexed_blocks"])
	assert.Equal(t, float64(4), got["indexed_transactions"])
	assert.Equal(t, float64(1), got["rolled_back_blocks"])
	assert.Equal(t, float64(0), got["indexed_height"])
}
