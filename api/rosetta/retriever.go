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

package rosetta

import (
	"time"

	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

// Retriever provides the Rosetta objects that the endpoints return.
type Retriever interface {
	Current() (identifier.Block, time.Time, error)
	Genesis() (identifier.Block, error)
	Peers() ([]identifier.Peer, error)
	Agent() (string, error)
	Balance(account identifier.Account, block *identifier.Block) (identifier.Block, []object.Amount, error)
	Block(id identifier.Block) (*object.Block, error)
	Transaction(blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error)
	Mempool() ([]identifier.Transaction, error)
	MempoolTransaction(txID identifier.Transaction) (*object.Transaction, error)
	Submit(raw string) (identifier.Transaction, error)
}
