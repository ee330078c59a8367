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

package node_test

import (
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/service/node"
	"github.com/optakt/hsd-rosetta/testing/mocks"
)

func TestMetricsRequester_RawRequest(t *testing.T) {
	registry := prometheus.NewRegistry()

	calls := 0
	rpc := mocks.BaselineRequester(t)
	rpc.RawRequestFunc = func(method string, params []json.RawMessage) (json.RawMessage, error) {
		calls++
		if calls == 2 {
			return nil, mocks.GenericError
		}
		return json.RawMessage(`7`), nil
	}

	requester := node.NewMetricsRequester(rpc, registry)

	res, err := requester.RawRequest("getblockcount", nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`7`), res)

	_, err = requester.RawRequest("getblockcount", nil)
	assert.ErrorIs(t, err, mocks.GenericError)

	families, err := registry.Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != "node_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "status" {
					counts[label.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}

	assert.Equal(t, map[string]float64{"success": 1, "error": 1}, counts)
}
