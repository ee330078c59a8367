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

package indexer

import (
	"time"
)

// DefaultConfig is the default configuration for the indexer.
var DefaultConfig = Config{
	StartHeight: 0,
	Interval:    5 * time.Second,
	Depth:       100,
}

// Config contains the configuration options for the indexer.
type Config struct {
	StartHeight uint64
	Interval    time.Duration
	Depth       uint
}

// WithStartHeight sets the height of the first block indexed into an empty
// index.
func WithStartHeight(height uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.StartHeight = height
	}
}

// WithInterval sets the interval at which the node is polled for new blocks.
func WithInterval(interval time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Interval = interval
	}
}

// WithDepth sets the number of blocks that can be rolled back during a single
// reorganization.
func WithDepth(depth uint) func(*Config) {
	return func(cfg *Config) {
		cfg.Depth = depth
	}
}
