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

package hns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoin(t *testing.T) {
	address := Address{Hash: []byte{1, 2, 3, 4}}
	tx := &Transaction{
		Hash:    Hash{7},
		Version: 0,
		Inputs:  []Input{{Prevout: Outpoint{Hash: Hash{6}}}},
		Outputs: []Output{
			{Value: 1},
			{Value: 42, Address: address, Covenant: Covenant{Type: CovenantOpen}},
		},
	}

	coin := NewCoin(tx, 1, 99)

	assert.Equal(t, Outpoint{Hash: Hash{7}, Index: 1}, coin.Prevout)
	assert.Equal(t, uint64(42), coin.Value)
	assert.Equal(t, uint64(99), coin.Height)
	assert.Equal(t, CovenantOpen, coin.Covenant.Type)
	assert.False(t, coin.Coinbase)
	assert.True(t, coin.Spendable())
}

func TestView_CoinFor(t *testing.T) {
	coin := Coin{Prevout: Outpoint{Hash: Hash{1}, Index: 3}, Value: 5}
	view := NewView(coin)

	got, ok := view.CoinFor(Input{Prevout: Outpoint{Hash: Hash{1}, Index: 3}})
	assert.True(t, ok)
	assert.Equal(t, coin, got)

	_, ok = view.CoinFor(Input{Prevout: Outpoint{Hash: Hash{1}, Index: 4}})
	assert.False(t, ok)

	assert.Len(t, view.Coins(), 1)
}
