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

package request

import (
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
)

// Optional identifiers are pointers, so that a missing object can be told
// apart from an empty one during validation.

type Networks struct {
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type Options struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

type Status struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

type Balance struct {
	NetworkID identifier.Network  `json:"network_identifier"`
	AccountID *identifier.Account `json:"account_identifier"`
	BlockID   *identifier.Block   `json:"block_identifier,omitempty"`
}

type Block struct {
	NetworkID identifier.Network `json:"network_identifier"`
	BlockID   *identifier.Block  `json:"block_identifier"`
}

type Transaction struct {
	NetworkID     identifier.Network      `json:"network_identifier"`
	BlockID       *identifier.Block       `json:"block_identifier"`
	TransactionID *identifier.Transaction `json:"transaction_identifier"`
}

type Metadata struct {
	NetworkID identifier.Network     `json:"network_identifier"`
	Options   map[string]interface{} `json:"options,omitempty"`
}

type Submit struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction"`
}

type Mempool struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

type MempoolTransaction struct {
	NetworkID     identifier.Network      `json:"network_identifier"`
	TransactionID *identifier.Transaction `json:"transaction_identifier"`
}
