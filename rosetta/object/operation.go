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

package object

import (
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
)

// Operation is one debit or credit against an address inside a transaction.
// Debits carry the spending witness in their metadata; credits carry an
// empty metadata object.
type Operation struct {
	ID       identifier.Operation `json:"operation_identifier"`
	Type     string               `json:"type"`
	Status   string               `json:"status"`
	Account  identifier.Account   `json:"account"`
	Amount   Amount               `json:"amount"`
	Metadata map[string]string    `json:"metadata"`
}

// Witness metadata keys of a debit operation.
const (
	MetadataASM = "asm"
	MetadataHex = "hex"
)
