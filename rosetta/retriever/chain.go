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

type Chain interface {
	Tip() (hns.Tip, error)
	Genesis() (hns.Hash, error)
	Block(height uint64) (*hns.Block, error)
	HeightForBlock(hash hns.Hash) (uint64, error)
	View(height uint64) (hns.View, error)
	Transaction(hash hns.Hash) (*hns.Transaction, uint64, error)
	Coins(address hns.Address) ([]hns.Coin, error)
}
