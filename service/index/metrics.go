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

package index

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/hsd-rosetta/models/hns"
)

// MetricsWriter wraps the writer and records metrics for the blocks it applies
// and rolls back.
type MetricsWriter struct {
	write hns.Writer

	blocks       prometheus.Counter
	transactions prometheus.Counter
	rollbacks    prometheus.Counter
	height       prometheus.Gauge
}

// NewMetricsWriter creates a new index writer that registers its metrics with
// the given registerer.
func NewMetricsWriter(write hns.Writer, registerer prometheus.Registerer) *MetricsWriter {
	factory := promauto.With(registerer)

	blocks := factory.NewCounter(prometheus.CounterOpts{
		Name: "indexed_blocks",
		Help: "the number of indexed blocks",
	})
	transactions := factory.NewCounter(prometheus.CounterOpts{
		Name: "indexed_transactions",
		Help: "the number of indexed transactions",
	})
	rollbacks := factory.NewCounter(prometheus.CounterOpts{
		Name: "rolled_back_blocks",
		Help: "the number of blocks removed from the index by reorganizations",
	})
	height := factory.NewGauge(prometheus.GaugeOpts{
		Name: "indexed_height",
		Help: "the height of the last indexed block",
	})

	w := MetricsWriter{
		write: write,

		blocks:       blocks,
		transactions: transactions,
		rollbacks:    rollbacks,
		height:       height,
	}

	return &w
}

// Genesis indexes the hash of the genesis block.
func (w *MetricsWriter) Genesis(hash hns.Hash) error {
	return w.write.Genesis(hash)
}

// Apply indexes the block at the given height.
func (w *MetricsWriter) Apply(height uint64, block *hns.Block) error {
	err := w.write.Apply(height, block)
	if err != nil {
		return err
	}
	w.blocks.Inc()
	w.transactions.Add(float64(len(block.Transactions)))
	w.height.Set(float64(height))
	return nil
}

// Rollback removes the block at the given height from the index.
func (w *MetricsWriter) Rollback(height uint64) error {
	err := w.write.Rollback(height)
	if err != nil {
		return err
	}
	w.rollbacks.Inc()
	if height > 0 {
		w.height.Set(float64(height - 1))
	}
	return nil
}
