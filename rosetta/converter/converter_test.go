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

package converter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/configuration"
	"github.com/optakt/hsd-rosetta/rosetta/converter"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/object"
	"github.com/optakt/hsd-rosetta/testing/mocks"
)

func TestConverter_Operations(t *testing.T) {
	convert := converter.New(mocks.GenericParams, mocks.GenericCurrency)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		operations, err := convert.Operations(mocks.GenericTransaction, mocks.GenericView)
		require.NoError(t, err)
		require.Len(t, operations, 3)

		want := []struct {
			value   string
			address string
		}{
			{value: "-5000", address: mocks.GenericEncodedAddress(0)},
			{value: "3000", address: mocks.GenericEncodedAddress(1)},
			{value: "1900", address: mocks.GenericEncodedAddress(2)},
		}
		for i, operation := range operations {
			assert.Equal(t, identifier.Operation{Index: uint(i), NetworkIndex: 0}, operation.ID)
			assert.Equal(t, want[i].value, operation.Amount.Value)
			assert.Equal(t, want[i].address, operation.Account.Address)
			assert.Equal(t, mocks.GenericCurrency, operation.Amount.Currency)
			assert.Equal(t, configuration.OperationTransfer, operation.Type)
			assert.Equal(t, configuration.StatusSuccess, operation.Status)
		}

		assert.Equal(t, mocks.GenericWitness.ASM(), operations[0].Metadata[object.MetadataASM])
		assert.Equal(t, mocks.GenericWitness.Hex(), operations[0].Metadata[object.MetadataHex])
		assert.NotNil(t, operations[1].Metadata)
		assert.Empty(t, operations[1].Metadata)
	})

	t.Run("coinbase emits no debits", func(t *testing.T) {
		t.Parallel()

		// Even a view holding a coin for the null outpoint must be ignored.
		view := hns.NewView(hns.Coin{
			Prevout: mocks.GenericCoinbase.Inputs[0].Prevout,
			Value:   1234,
			Address: mocks.GenericAddress(5),
		})

		operations, err := convert.Operations(mocks.GenericCoinbase, view)
		require.NoError(t, err)
		require.Len(t, operations, 1)
		assert.Equal(t, uint(0), operations[0].ID.Index)
		assert.Equal(t, "2000000000", operations[0].Amount.Value)
	})

	t.Run("skips inputs missing from view", func(t *testing.T) {
		t.Parallel()

		operations, err := convert.Operations(mocks.GenericTransaction, hns.NewView())
		require.NoError(t, err)
		require.Len(t, operations, 2)
		assert.Equal(t, uint(0), operations[0].ID.Index)
		assert.Equal(t, "3000", operations[0].Amount.Value)
		assert.Equal(t, uint(1), operations[1].ID.Index)
	})

	t.Run("skips coins without address or with unspendable covenant", func(t *testing.T) {
		t.Parallel()

		tx := &hns.Transaction{
			Hash: mocks.GenericHash(7),
			Inputs: []hns.Input{
				{Prevout: hns.Outpoint{Hash: mocks.GenericHash(8), Index: 0}},
				{Prevout: hns.Outpoint{Hash: mocks.GenericHash(8), Index: 1}},
				{Prevout: hns.Outpoint{Hash: mocks.GenericHash(8), Index: 2}},
			},
		}
		view := hns.NewView(
			hns.Coin{Prevout: tx.Inputs[0].Prevout, Value: 10},
			hns.Coin{Prevout: tx.Inputs[1].Prevout, Value: 20, Address: mocks.GenericAddress(1), Covenant: hns.Covenant{Type: hns.CovenantRegister}},
			hns.Coin{Prevout: tx.Inputs[2].Prevout, Value: 30, Address: mocks.GenericAddress(2), Covenant: hns.Covenant{Type: hns.CovenantRedeem}},
		)

		operations, err := convert.Operations(tx, view)
		require.NoError(t, err)
		require.Len(t, operations, 1)
		assert.Equal(t, "-30", operations[0].Amount.Value)
		assert.Equal(t, uint(0), operations[0].ID.Index)
	})

	t.Run("skips unspendable outputs", func(t *testing.T) {
		t.Parallel()

		tx := &hns.Transaction{
			Hash: mocks.GenericHash(9),
			Outputs: []hns.Output{
				{Value: 1, Address: hns.Address{Version: hns.NulldataVersion, Hash: []byte{0x01, 0x02}}},
				{Value: 2},
				{Value: 3, Address: mocks.GenericAddress(1), Covenant: hns.Covenant{Type: hns.CovenantRevoke}},
				{Value: 4, Address: mocks.GenericAddress(2), Covenant: hns.Covenant{Type: hns.CovenantBid}},
				{Value: 5, Address: mocks.GenericAddress(3), Covenant: hns.Covenant{Type: hns.CovenantFinalize}},
			},
		}

		operations, err := convert.Operations(tx, hns.NewView())
		require.NoError(t, err)
		require.Len(t, operations, 1)
		assert.Equal(t, "4", operations[0].Amount.Value)
		assert.Equal(t, mocks.GenericEncodedAddress(2), operations[0].Account.Address)
	})

	t.Run("indices have no gaps", func(t *testing.T) {
		t.Parallel()

		tx := &hns.Transaction{
			Hash: mocks.GenericHash(10),
			Inputs: []hns.Input{
				{Prevout: hns.Outpoint{Hash: mocks.GenericHash(11), Index: 0}},
				{Prevout: hns.Outpoint{Hash: mocks.GenericHash(11), Index: 1}},
				{Prevout: hns.Outpoint{Hash: mocks.GenericHash(11), Index: 2}},
			},
			Outputs: []hns.Output{
				{Value: 1, Address: mocks.GenericAddress(1)},
				{Value: 2, Address: mocks.GenericAddress(2), Covenant: hns.Covenant{Type: hns.CovenantUpdate}},
				{Value: 3, Address: mocks.GenericAddress(3)},
			},
		}
		view := hns.NewView(
			hns.Coin{Prevout: tx.Inputs[0].Prevout, Value: 10, Address: mocks.GenericAddress(4)},
			hns.Coin{Prevout: tx.Inputs[2].Prevout, Value: 30, Address: mocks.GenericAddress(5)},
		)

		operations, err := convert.Operations(tx, view)
		require.NoError(t, err)

		values := make([]string, 0, len(operations))
		for i, operation := range operations {
			assert.Equal(t, uint(i), operation.ID.Index)
			values = append(values, operation.Amount.Value)
		}
		assert.Equal(t, []string{"-10", "-30", "1", "3"}, values)
	})
}
