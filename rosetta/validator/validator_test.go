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

package validator_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/request"
	"github.com/optakt/hsd-rosetta/rosetta/validator"
	"github.com/optakt/hsd-rosetta/testing/helpers"
	"github.com/optakt/hsd-rosetta/testing/mocks"
)

func assertMissing(t *testing.T, err error, field string) {
	t.Helper()

	var missing failure.MissingField
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, field, missing.Field)
}

func TestValidator_Balance(t *testing.T) {
	validate := validator.New(mocks.GenericParams)
	block := mocks.GenericBlockID

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Balance{
			NetworkID: mocks.GenericNetwork,
			AccountID: &mocks.GenericAccount,
			BlockID:   &block,
		})
		assert.NoError(t, err)
	})

	t.Run("nominal case without block", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Balance{
			NetworkID: mocks.GenericNetwork,
			AccountID: &mocks.GenericAccount,
		})
		assert.NoError(t, err)
	})

	t.Run("missing account", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Balance{NetworkID: mocks.GenericNetwork})
		assertMissing(t, err, failure.FieldAccount)
	})

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Balance{
			NetworkID: mocks.GenericNetwork,
			AccountID: &identifier.Account{},
		})
		assertMissing(t, err, failure.FieldAddress)
	})

	t.Run("address of other network", func(t *testing.T) {
		t.Parallel()

		address := strings.Replace(mocks.GenericEncodedAddress(0), "rs1", "hs1", 1)
		err := validate.Request(request.Balance{
			NetworkID: mocks.GenericNetwork,
			AccountID: &identifier.Account{Address: address},
		})
		assert.ErrorAs(t, err, &failure.InvalidFormat{})
	})

	t.Run("invalid block hash", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Balance{
			NetworkID: mocks.GenericNetwork,
			AccountID: &mocks.GenericAccount,
			BlockID:   &identifier.Block{Hash: "abcd"},
		})
		assert.ErrorAs(t, err, &failure.InvalidFormat{})
	})
}

func TestValidator_Block(t *testing.T) {
	validate := validator.New(mocks.GenericParams)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		block := mocks.GenericBlockID
		err := validate.Request(request.Block{NetworkID: mocks.GenericNetwork, BlockID: &block})
		assert.NoError(t, err)
	})

	t.Run("nominal case without hash", func(t *testing.T) {
		t.Parallel()

		block := identifier.NewBlock(0, "")
		err := validate.Request(&request.Block{NetworkID: mocks.GenericNetwork, BlockID: &block})
		assert.NoError(t, err)
	})

	t.Run("missing block", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Block{NetworkID: mocks.GenericNetwork})
		assertMissing(t, err, failure.FieldBlock)
	})

	t.Run("missing index", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Block{
			NetworkID: mocks.GenericNetwork,
			BlockID:   &identifier.Block{Hash: mocks.GenericBlockID.Hash},
		})
		assertMissing(t, err, failure.FieldBlockIndex)
	})

	t.Run("hash is not hex", func(t *testing.T) {
		t.Parallel()

		block := identifier.NewBlock(1, strings.Repeat("z", validator.HexHashSize))
		err := validate.Request(request.Block{NetworkID: mocks.GenericNetwork, BlockID: &block})
		assert.ErrorAs(t, err, &failure.InvalidFormat{})
	})
}

func TestValidator_Transaction(t *testing.T) {
	validate := validator.New(mocks.GenericParams)
	block := mocks.GenericBlockID

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Transaction{
			NetworkID:     mocks.GenericNetwork,
			BlockID:       &block,
			TransactionID: &mocks.GenericTransactionID,
		})
		assert.NoError(t, err)
	})

	t.Run("missing transaction", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Transaction{
			NetworkID: mocks.GenericNetwork,
			BlockID:   &block,
		})
		assertMissing(t, err, failure.FieldTransaction)
	})

	t.Run("missing transaction hash", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Transaction{
			NetworkID:     mocks.GenericNetwork,
			BlockID:       &block,
			TransactionID: &identifier.Transaction{},
		})
		assertMissing(t, err, failure.FieldTransactionHash)
	})

	t.Run("existence is checked before shape", func(t *testing.T) {
		t.Parallel()

		malformed := identifier.NewBlock(1, "abcd")
		err := validate.Request(request.Transaction{
			NetworkID: mocks.GenericNetwork,
			BlockID:   &malformed,
		})
		assertMissing(t, err, failure.FieldTransaction)
	})

	t.Run("transaction hash too short", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Transaction{
			NetworkID:     mocks.GenericNetwork,
			BlockID:       &block,
			TransactionID: &identifier.Transaction{Hash: "abcd"},
		})
		assert.ErrorAs(t, err, &failure.InvalidFormat{})
	})
}

func TestValidator_Submit(t *testing.T) {
	validate := validator.New(mocks.GenericParams)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		raw := hex.EncodeToString(helpers.EncodeTransaction(mocks.GenericTransaction))
		err := validate.Request(request.Submit{NetworkID: mocks.GenericNetwork, SignedTransaction: raw})
		assert.NoError(t, err)
	})

	t.Run("missing signed transaction", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Submit{NetworkID: mocks.GenericNetwork})
		assertMissing(t, err, failure.FieldSignedTransaction)
	})

	t.Run("signed transaction is not hex", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Submit{NetworkID: mocks.GenericNetwork, SignedTransaction: "xyz"})
		assert.ErrorAs(t, err, &failure.InvalidFormat{})
	})

	t.Run("signed transaction does not decode", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.Submit{NetworkID: mocks.GenericNetwork, SignedTransaction: "deadbeef"})
		assert.ErrorAs(t, err, &failure.InvalidFormat{})
	})
}

func TestValidator_MempoolTransaction(t *testing.T) {
	validate := validator.New(mocks.GenericParams)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.MempoolTransaction{
			NetworkID:     mocks.GenericNetwork,
			TransactionID: &mocks.GenericTransactionID,
		})
		assert.NoError(t, err)
	})

	t.Run("missing transaction", func(t *testing.T) {
		t.Parallel()

		err := validate.Request(request.MempoolTransaction{NetworkID: mocks.GenericNetwork})
		assertMissing(t, err, failure.FieldTransaction)
	})
}

func TestValidator_Unchecked(t *testing.T) {
	validate := validator.New(mocks.GenericParams)

	err := validate.Request(request.Status{NetworkID: mocks.GenericNetwork})
	assert.NoError(t, err)

	err = validate.Request(request.Networks{})
	assert.NoError(t, err)
}
