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

package retriever

import (
	"github.com/optakt/hsd-rosetta/models/hns"
)

// Spendable sums the value of all coins that can be spent by their owner.
// Burned coins, nulldata coins and coins locked by an administrative
// covenant do not count.
func Spendable(coins []hns.Coin) uint64 {
	var total uint64
	for _, coin := range coins {
		if !coin.Spendable() {
			continue
		}
		total += coin.Value
	}
	return total
}
