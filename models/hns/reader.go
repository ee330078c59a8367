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

// Reader represents something that can read from the chain index.
type Reader interface {
	First() (uint64, error)
	Last() (uint64, error)
	Tip() (Tip, error)
	Genesis() (Hash, error)

	Header(height uint64) (*Header, error)
	Block(height uint64) (*Block, error)
	HeightForBlock(hash Hash) (uint64, error)
	View(height uint64) (View, error)

	Transaction(hash Hash) (*Transaction, uint64, error)
	Coin(outpoint Outpoint) (Coin, error)
	Coins(address Address) ([]Coin, error)
}
