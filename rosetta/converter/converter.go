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

package converter

import (
	"fmt"
	"strconv"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/configuration"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

// Converter turns Handshake transactions into Rosetta operations.
type Converter struct {
	params   hns.Params
	currency identifier.Currency
}

// New creates a converter that renders addresses with the given network
// parameters and amounts in the given currency.
func New(params hns.Params, currency identifier.Currency) *Converter {

	c := Converter{
		params:   params,
		currency: currency,
	}

	return &c
}

// Operations builds the operations of a transaction. The coins spent by its
// inputs are resolved through the view. Debits of the inputs come first, in
// input order, followed by credits of the outputs, in output order. Inputs
// and outputs that do not move spendable value are skipped and do not consume
// an index.
func (c *Converter) Operations(tx *hns.Transaction, view hns.View) ([]object.Operation, error) {

	operations := make([]object.Operation, 0, len(tx.Inputs)+len(tx.Outputs))

	if !tx.Coinbase() {
		for _, input := range tx.Inputs {

			// A coin missing from the view has no address we could debit.
			coin, ok := view.CoinFor(input)
			if !ok {
				continue
			}
			if coin.Address.Absent() || coin.Covenant.Unspendable() {
				continue
			}

			address, err := c.params.EncodeAddress(coin.Address)
			if err != nil {
				return nil, fmt.Errorf("could not encode input address (prevout: %s/%d): %w", input.Prevout.Hash, input.Prevout.Index, err)
			}

			metadata := map[string]string{
				object.MetadataASM: input.Witness.ASM(),
				object.MetadataHex: input.Witness.Hex(),
			}

			value := "-" + strconv.FormatUint(coin.Value, 10)
			operation := c.operation(uint(len(operations)), address, value, metadata)
			operations = append(operations, operation)
		}
	}

	for index, output := range tx.Outputs {

		if output.Unspendable() || output.Address.Absent() || output.Covenant.Unspendable() {
			continue
		}

		address, err := c.params.EncodeAddress(output.Address)
		if err != nil {
			return nil, fmt.Errorf("could not encode output address (index: %d): %w", index, err)
		}

		value := strconv.FormatUint(output.Value, 10)
		operation := c.operation(uint(len(operations)), address, value, map[string]string{})
		operations = append(operations, operation)
	}

	return operations, nil
}

func (c *Converter) operation(index uint, address string, value string, metadata map[string]string) object.Operation {
	return object.Operation{
		ID: identifier.Operation{
			Index: index,
		},
		Type:   configuration.OperationTransfer,
		Status: configuration.StatusSuccess,
		Account: identifier.Account{
			Address: address,
		},
		Amount: object.Amount{
			Value:    value,
			Currency: c.currency,
		},
		Metadata: metadata,
	}
}
