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

package failure

import (
	"fmt"
)

// Names of the request fields whose absence has a dedicated error.
const (
	FieldNetwork           = "network_identifier"
	FieldAccount           = "account_identifier"
	FieldAddress           = "address"
	FieldBlock             = "block_identifier"
	FieldBlockIndex        = "index"
	FieldTransaction       = "transaction_identifier"
	FieldTransactionHash   = "hash"
	FieldSignedTransaction = "signed_transaction"
)

// MissingField is the error for a mandatory request field that is absent or empty.
type MissingField struct {
	Description Description
	Field       string
}

// Error implements the error interface.
func (m MissingField) Error() string {
	return fmt.Sprintf("missing request field (field: %s): %s", m.Field, m.Description)
}
