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

package configuration

import (
	"github.com/optakt/hsd-rosetta/rosetta/meta"
)

// Rosetta errors of the Handshake middleware. Codes and messages are stable
// and exposed through the network options.
var (
	ErrorTxRequired          = meta.ErrorDefinition{Code: 1, Message: "Transaction is required.", Retriable: true}
	ErrorTxHashRequired      = meta.ErrorDefinition{Code: 2, Message: "Transaction hash is required.", Retriable: true}
	ErrorBlockRequired       = meta.ErrorDefinition{Code: 3, Message: "Block is required.", Retriable: true}
	ErrorBlockHeightRequired = meta.ErrorDefinition{Code: 4, Message: "Block height is required.", Retriable: true}
	ErrorBlockHashMismatch   = meta.ErrorDefinition{Code: 5, Message: "Block hash mismatch.", Retriable: true}
	ErrorAccountRequired     = meta.ErrorDefinition{Code: 6, Message: "Account is required.", Retriable: true}
	ErrorAddressRequired     = meta.ErrorDefinition{Code: 7, Message: "Address is required.", Retriable: true}
	ErrorNetworkRequired     = meta.ErrorDefinition{Code: 8, Message: "Network is required.", Retriable: true}
	ErrorOptionsRequired     = meta.ErrorDefinition{Code: 9, Message: "Options is required.", Retriable: true}
	ErrorInvalidNetwork      = meta.ErrorDefinition{Code: 10, Message: "Invalid network.", Retriable: true}
	ErrorInvalidBlockchain   = meta.ErrorDefinition{Code: 11, Message: "Invalid blockchain.", Retriable: true}
	ErrorSignedTxRequired    = meta.ErrorDefinition{Code: 12, Message: "Signed transaction required", Retriable: true}
	ErrorBlockNotFound       = meta.ErrorDefinition{Code: 13, Message: "Block not found.", Retriable: true}
	ErrorTxNotFound          = meta.ErrorDefinition{Code: 14, Message: "Transaction not found.", Retriable: true}
	ErrorViewNotFound        = meta.ErrorDefinition{Code: 15, Message: "Coin view not found.", Retriable: true}
	ErrorTxRelay             = meta.ErrorDefinition{Code: 16, Message: "Error relaying transaction.", Retriable: false}
	ErrorQueryNotSupported   = meta.ErrorDefinition{Code: 17, Message: "Query not supported", Retriable: false}
	ErrorInvalidFormat       = meta.ErrorDefinition{Code: 18, Message: "Invalid request format.", Retriable: true}
	ErrorUnknown             = meta.ErrorDefinition{Code: 32, Message: "Unknown error.", Retriable: false}
)
