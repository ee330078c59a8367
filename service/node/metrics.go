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

package node

import (
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRequester wraps a requester and records the count and duration of
// the requests sent to the node.
type MetricsRequester struct {
	rpc Requester

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewMetricsRequester creates a requester that registers its metrics with the
// given registerer.
func NewMetricsRequester(rpc Requester, registerer prometheus.Registerer) *MetricsRequester {
	factory := promauto.With(registerer)

	requests := factory.NewCounterVec(prometheus.CounterOpts{
		Name: "node_requests_total",
		Help: "the number of requests sent to the node",
	}, []string{"method", "status"})
	durations := factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "node_request_duration_seconds",
		Help:    "the duration of requests sent to the node",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})

	m := MetricsRequester{
		rpc:       rpc,
		requests:  requests,
		durations: durations,
	}

	return &m
}

// RawRequest forwards the request and observes its outcome.
func (m *MetricsRequester) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	started := time.Now()
	res, err := m.rpc.RawRequest(method, params)
	status := "success"
	if err != nil {
		status = "error"
	}
	m.requests.WithLabelValues(method, status).Inc()
	m.durations.WithLabelValues(method, status).Observe(time.Since(started).Seconds())
	return res, err
}
