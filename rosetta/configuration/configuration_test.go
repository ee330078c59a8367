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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
)

func TestNew(t *testing.T) {
	params := hns.Networks[hns.HandshakeTestnet]

	config := New(params)

	assert.Equal(t, identifier.Network{Blockchain: "handshake", Network: "testnet"}, config.Network())
	assert.Equal(t, "HNS", config.Currency().Symbol)
	assert.Equal(t, uint(6), config.Currency().Decimals)
	assert.Equal(t, "handshake-org", config.Currency().Metadata.Issuer)
	assert.Equal(t, []string{OperationTransfer}, config.Operations())
	assert.Equal(t, RosettaVersion, config.Version().RosettaVersion)
	assert.Equal(t, "0.0.1", config.Version().MiddlewareVersion)
	assert.Empty(t, config.Version().NodeVersion)
	assert.Equal(t, params, config.Params())

	codes := make(map[uint]struct{})
	for _, definition := range config.Errors() {
		codes[definition.Code] = struct{}{}
	}
	assert.Len(t, codes, len(config.Errors()))
	assert.Contains(t, codes, uint(17))
	assert.Contains(t, codes, uint(32))
}

func TestConfiguration_Check(t *testing.T) {
	config := New(hns.Networks[hns.HandshakeRegtest])

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		err := config.Check(identifier.Network{Blockchain: "handshake", Network: "regtest"})
		assert.NoError(t, err)
	})

	t.Run("missing network identifier", func(t *testing.T) {
		t.Parallel()

		err := config.Check(identifier.Network{})
		var missing failure.MissingField
		if assert.ErrorAs(t, err, &missing) {
			assert.Equal(t, failure.FieldNetwork, missing.Field)
		}
	})

	t.Run("empty network field", func(t *testing.T) {
		t.Parallel()

		err := config.Check(identifier.Network{Blockchain: "handshake"})
		assert.ErrorAs(t, err, &failure.MissingField{})
	})

	t.Run("wrong blockchain", func(t *testing.T) {
		t.Parallel()

		err := config.Check(identifier.Network{Blockchain: "bitcoin", Network: "regtest"})
		var invalid failure.InvalidBlockchain
		if assert.ErrorAs(t, err, &invalid) {
			assert.Equal(t, "bitcoin", invalid.Blockchain)
		}
	})

	t.Run("wrong network", func(t *testing.T) {
		t.Parallel()

		err := config.Check(identifier.Network{Blockchain: "handshake", Network: "main"})
		var invalid failure.InvalidNetwork
		if assert.ErrorAs(t, err, &invalid) {
			assert.Equal(t, "main", invalid.Network)
		}
	})
}
