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
	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/meta"
)

// Versions reported by the network options.
const (
	RosettaVersion    = "1.3.1"
	MiddlewareVersion = "0.0.1"
)

// Operation types and statuses produced by the middleware.
const (
	OperationTransfer = "TRANSFER"
	StatusSuccess     = "SUCCESS"
)

// Configuration is the Rosetta view of one Handshake network: its identifier,
// its currency, the supported operations and the error table.
type Configuration struct {
	params     hns.Params
	network    identifier.Network
	currency   identifier.Currency
	version    meta.Version
	statuses   []meta.StatusDefinition
	operations []string
	errors     []meta.ErrorDefinition
}

// New creates the configuration for the given network parameters.
func New(params hns.Params) *Configuration {

	network := identifier.Network{
		Blockchain: hns.HandshakeBlockchain,
		Network:    params.Name,
	}

	currency := identifier.Currency{
		Symbol:   hns.HandshakeSymbol,
		Decimals: hns.HandshakeDecimals,
		Metadata: identifier.CurrencyMetadata{
			Issuer: hns.HandshakeIssuer,
		},
	}

	// The node version is only known once the node answers, so it is filled
	// in when the options are requested.
	version := meta.Version{
		RosettaVersion:    RosettaVersion,
		MiddlewareVersion: MiddlewareVersion,
	}

	statuses := []meta.StatusDefinition{
		{Status: StatusSuccess, Successful: true},
	}

	operations := []string{
		OperationTransfer,
	}

	errors := []meta.ErrorDefinition{
		ErrorTxRequired,
		ErrorTxHashRequired,
		ErrorBlockRequired,
		ErrorBlockHeightRequired,
		ErrorBlockHashMismatch,
		ErrorAccountRequired,
		ErrorAddressRequired,
		ErrorNetworkRequired,
		ErrorOptionsRequired,
		ErrorInvalidNetwork,
		ErrorInvalidBlockchain,
		ErrorSignedTxRequired,
		ErrorBlockNotFound,
		ErrorTxNotFound,
		ErrorViewNotFound,
		ErrorTxRelay,
		ErrorQueryNotSupported,
		ErrorInvalidFormat,
		ErrorUnknown,
	}

	c := Configuration{
		params:     params,
		network:    network,
		currency:   currency,
		version:    version,
		statuses:   statuses,
		operations: operations,
		errors:     errors,
	}

	return &c
}

func (c *Configuration) Params() hns.Params {
	return c.params
}

func (c *Configuration) Network() identifier.Network {
	return c.network
}

func (c *Configuration) Currency() identifier.Currency {
	return c.currency
}

func (c *Configuration) Version() meta.Version {
	return c.version
}

func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

func (c *Configuration) Operations() []string {
	return c.operations
}

func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// Check verifies that a request targets the configured network. It does not
// touch any chain data.
func (c *Configuration) Check(network identifier.Network) error {

	if network.Blockchain == "" || network.Network == "" {
		return failure.MissingField{
			Description: failure.NewDescription("network identifier needs both blockchain and network fields"),
			Field:       failure.FieldNetwork,
		}
	}

	if network.Blockchain != c.network.Blockchain {
		return failure.InvalidBlockchain{
			Description: failure.NewDescription("network identifier has unknown blockchain",
				failure.WithString("want", c.network.Blockchain),
			),
			Blockchain: network.Blockchain,
		}
	}

	if network.Network != c.network.Network {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("network identifier has unknown network",
				failure.WithString("want", c.network.Network),
			),
			Network: network.Network,
		}
	}

	return nil
}
