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

package response

import (
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/meta"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

type Networks struct {
	NetworkIDs []identifier.Network `json:"network_identifiers"`
}

type Options struct {
	Version meta.Version `json:"version"`
	Allow   OptionsAllow `json:"allow"`
}

type OptionsAllow struct {
	OperationStatuses       []meta.StatusDefinition `json:"operation_statuses"`
	OperationTypes          []string                `json:"operation_types"`
	Errors                  []meta.ErrorDefinition  `json:"errors"`
	HistoricalBalanceLookup bool                    `json:"historical_balance_lookup"`
	MempoolCoins            bool                    `json:"mempool_coins"`
}

type Status struct {
	CurrentBlockID        identifier.Block  `json:"current_block_identifier"`
	CurrentBlockTimestamp int64              `json:"current_block_timestamp"`
	GenesisBlockID        identifier.Block  `json:"genesis_block_identifier"`
	Peers                 []identifier.Peer `json:"peers"`
}

type Balance struct {
	BlockID  identifier.Block `json:"block_identifier"`
	Balances []object.Amount  `json:"balances"`
}

type Block struct {
	Block *object.Block `json:"block"`
}

type Transaction struct {
	Transaction *object.Transaction `json:"transaction"`
}

type Metadata struct {
	Metadata object.Metadata `json:"metadata"`
}

type Submit struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

type Mempool struct {
	TransactionIDs []identifier.Transaction `json:"transaction_identifiers"`
}
