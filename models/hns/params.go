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

package hns

import (
	"fmt"
)

const (
	HandshakeBlockchain = "handshake"
	HandshakeMainnet    = "main"
	HandshakeTestnet    = "testnet"
	HandshakeRegtest    = "regtest"
	HandshakeSimnet     = "simnet"
	HandshakeSymbol     = "HNS"
	HandshakeDecimals   = 6
	HandshakeIssuer     = "handshake-org"
)

// Networks contains the parameters of every known Handshake network, keyed by
// the name the node uses for it.
var Networks = make(map[string]Params)

// Params are the network parameters needed to render and parse addresses for
// one Handshake network.
type Params struct {
	Name string
	HRP  string
}

// ParamsFor returns the parameters for the network with the given name.
func ParamsFor(name string) (Params, error) {
	params, ok := Networks[name]
	if !ok {
		return Params{}, fmt.Errorf("unknown network (name: %s)", name)
	}
	return params, nil
}

func init() {

	// Human-readable address prefixes are taken from the hsd network
	// definitions (lib/protocol/networks.js).
	Networks[HandshakeMainnet] = Params{Name: HandshakeMainnet, HRP: "hs"}
	Networks[HandshakeTestnet] = Params{Name: HandshakeTestnet, HRP: "ts"}
	Networks[HandshakeRegtest] = Params{Name: HandshakeRegtest, HRP: "rs"}
	Networks[HandshakeSimnet] = Params{Name: HandshakeSimnet, HRP: "ss"}
}
