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

package wire_test

import (
	"bytes"
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/optakt/hsd-rosetta/codec/wire"
	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/testing/helpers"
)

func coinbaseHex() string {
	parts := []string{
		"00000000", // version
		"01",       // input count
		strings.Repeat("00", 32), "ffffffff", // prevout
		"ffffffff",                 // sequence
		"01",                       // output count
		"d007000000000000",         // value
		"00", "14", strings.Repeat("11", 20), // address
		"00", "00", // covenant
		"00000000", // lock time
		"01", "02", "abcd", // witness
	}
	return strings.Join(parts, "")
}

func TestDecodeTransaction(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		data, err := hex.DecodeString(coinbaseHex())
		require.NoError(t, err)

		tx, err := wire.DecodeTransaction(data)
		require.NoError(t, err)

		assert.True(t, tx.Coinbase())
		require.Len(t, tx.Inputs, 1)
		assert.Equal(t, uint32(math.MaxUint32), tx.Inputs[0].Prevout.Index)
		assert.Equal(t, hns.Witness{{0xab, 0xcd}}, tx.Inputs[0].Witness)
		require.Len(t, tx.Outputs, 1)
		assert.Equal(t, uint64(2000), tx.Outputs[0].Value)
		assert.Equal(t, bytes.Repeat([]byte{0x11}, 20), tx.Outputs[0].Address.Hash)
		assert.Equal(t, hns.CovenantNone, tx.Outputs[0].Covenant.Type)
		assert.Equal(t, uint64(len(data)), tx.Size)

		// The identifier excludes the four bytes of witness data.
		want := blake2b.Sum256(data[:len(data)-4])
		assert.Equal(t, hns.Hash(want), tx.Hash)
	})

	t.Run("handles truncated data", func(t *testing.T) {
		t.Parallel()

		data, err := hex.DecodeString(coinbaseHex())
		require.NoError(t, err)

		_, err = wire.DecodeTransaction(data[:len(data)-10])
		assert.Error(t, err)
	})

	t.Run("handles trailing data", func(t *testing.T) {
		t.Parallel()

		data, err := hex.DecodeString(coinbaseHex() + "00")
		require.NoError(t, err)

		_, err = wire.DecodeTransaction(data)
		assert.Error(t, err)
	})

	t.Run("handles oversized counts", func(t *testing.T) {
		t.Parallel()

		data, err := hex.DecodeString("00000000" + "fdffff")
		require.NoError(t, err)

		_, err = wire.DecodeTransaction(data)
		assert.Error(t, err)
	})

	t.Run("handles oversized address", func(t *testing.T) {
		t.Parallel()

		raw := strings.Replace(coinbaseHex(), "0014"+strings.Repeat("11", 20), "0029"+strings.Repeat("11", 41), 1)
		data, err := hex.DecodeString(raw)
		require.NoError(t, err)

		_, err = wire.DecodeTransaction(data)
		assert.Error(t, err)
	})
}

func TestEncodeTransaction(t *testing.T) {
	tx := &hns.Transaction{
		Version: 0,
		Inputs: []hns.Input{
			{
				Prevout:  hns.Outpoint{Hash: hns.Hash{0x01}, Index: 2},
				Sequence: math.MaxUint32,
				Witness:  hns.Witness{{0x30, 0x44}, {0x02, 0x03}},
			},
		},
		Outputs: []hns.Output{
			{Value: 3000, Address: hns.Address{Version: 0, Hash: bytes.Repeat([]byte{0x22}, 20)}},
			{Value: 1900, Address: hns.Address{Version: 0, Hash: bytes.Repeat([]byte{0x33}, 32)}, Covenant: hns.Covenant{
				Type:  hns.CovenantRegister,
				Items: [][]byte{{0x01}, bytes.Repeat([]byte{0x44}, 32)},
			}},
		},
		LockTime: 12,
	}

	data := helpers.EncodeTransaction(tx)
	got, err := wire.DecodeTransaction(data)
	require.NoError(t, err)

	assert.Equal(t, hns.Hash(blake2b.Sum256(helpers.EncodeBase(tx))), got.Hash)
	assert.Equal(t, uint64(len(data)), got.Size)
	assert.Equal(t, tx.Inputs, got.Inputs)
	assert.Equal(t, tx.Outputs, got.Outputs)
	assert.Equal(t, tx.LockTime, got.LockTime)
}

func TestDecodeBlock(t *testing.T) {
	coinbase, err := hex.DecodeString(coinbaseHex())
	require.NoError(t, err)
	tx, err := wire.DecodeTransaction(coinbase)
	require.NoError(t, err)

	header := hns.Header{
		PrevBlock:  hns.Hash{0xaa},
		MerkleRoot: hns.Hash{0xbb},
		TreeRoot:   hns.Hash{0xcc},
		Time:       1580745078,
		Bits:       0x1c00ffff,
		Nonce:      7,
	}
	block := &hns.Block{
		Header:       header,
		Transactions: []*hns.Transaction{tx},
	}
	data := helpers.EncodeBlock(block)
	hash := hns.Hash{0xdd}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		got, err := wire.DecodeBlock(hash, data)
		require.NoError(t, err)

		assert.Equal(t, hash, got.Header.Hash)
		assert.Equal(t, header.PrevBlock, got.Header.PrevBlock)
		assert.Equal(t, header.MerkleRoot, got.Header.MerkleRoot)
		assert.Equal(t, header.TreeRoot, got.Header.TreeRoot)
		assert.Equal(t, header.Time, got.Header.Time)
		assert.Equal(t, header.Bits, got.Header.Bits)
		assert.Equal(t, header.Nonce, got.Header.Nonce)
		require.Len(t, got.Transactions, 1)
		assert.Equal(t, tx.Hash, got.Transactions[0].Hash)
	})

	t.Run("handles short header", func(t *testing.T) {
		t.Parallel()

		_, err := wire.DecodeBlock(hash, data[:wire.HeaderSize-1])
		assert.Error(t, err)
	})

	t.Run("handles missing transactions", func(t *testing.T) {
		t.Parallel()

		_, err := wire.DecodeBlock(hash, data[:len(data)-1])
		assert.Error(t, err)
	})
}
