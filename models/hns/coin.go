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

// Coin is an output together with the context of its creation.
type Coin struct {
	Prevout  Outpoint
	Version  uint32
	Height   uint64
	Value    uint64
	Address  Address
	Covenant Covenant
	Coinbase bool
}

// NewCoin creates the coin for the output at the given index of a transaction.
func NewCoin(tx *Transaction, index uint32, height uint64) Coin {
	output := tx.Outputs[index]
	coin := Coin{
		Prevout:  Outpoint{Hash: tx.Hash, Index: index},
		Version:  tx.Version,
		Height:   height,
		Value:    output.Value,
		Address:  output.Address,
		Covenant: output.Covenant,
		Coinbase: tx.Coinbase(),
	}
	return coin
}

// Spendable returns whether the coin can be counted towards a balance.
func (c Coin) Spendable() bool {
	return !c.Address.Absent() && !c.Address.Null() && !c.Address.Unspendable() && !c.Covenant.Unspendable()
}

// View maps the outpoints spent by one or more transactions to their coins.
type View map[Outpoint]Coin

// NewView creates a view holding the given coins.
func NewView(coins ...Coin) View {
	view := make(View, len(coins))
	for _, coin := range coins {
		view[coin.Prevout] = coin
	}
	return view
}

// CoinFor returns the coin spent by the given input, if the view holds it.
func (v View) CoinFor(input Input) (Coin, bool) {
	coin, ok := v[input.Prevout]
	return coin, ok
}

// Coins returns the coins of the view as a slice.
func (v View) Coins() []Coin {
	coins := make([]Coin, 0, len(v))
	for _, coin := range v {
		coins = append(coins, coin)
	}
	return coins
}
