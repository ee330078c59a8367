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

package mocks

import (
	"testing"

	"github.com/optakt/hsd-rosetta/models/hns"
)

type Network struct {
	PeersFunc func() ([]hns.Peer, error)
	AgentFunc func() (string, error)
}

func BaselineNetwork(t *testing.T) *Network {
	t.Helper()

	n := Network{
		PeersFunc: func() ([]hns.Peer, error) {
			return GenericPeers, nil
		},
		AgentFunc: func() (string, error) {
			return GenericAgent, nil
		},
	}

	return &n
}

func (n *Network) Peers() ([]hns.Peer, error) {
	return n.PeersFunc()
}

func (n *Network) Agent() (string, error) {
	return n.AgentFunc()
}
