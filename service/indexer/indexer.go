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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog"

	"github.com/optakt/hsd-rosetta/codec/wire"
	"github.com/optakt/hsd-rosetta/models/hns"
)

// Indexer follows the best chain of the node and writes its blocks into the
// index, unwinding blocks that were reorganized out of the chain.
type Indexer struct {
	log    zerolog.Logger
	cfg    Config
	node   Node
	index  Index
	write  hns.Writer
	recent *deque.Deque
	known  bool
}

type record struct {
	height uint64
	hash   hns.Hash
}

// New creates an indexer that downloads blocks from the node and applies them
// through the writer.
func New(log zerolog.Logger, node Node, index Index, write hns.Writer, options ...func(*Config)) *Indexer {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	i := Indexer{
		log:    log.With().Str("component", "indexer").Logger(),
		cfg:    cfg,
		node:   node,
		index:  index,
		write:  write,
		recent: deque.New(),
	}

	return &i
}

// Run synchronizes the index with the node until the context is canceled.
// Failures to reach the node or the index are logged and retried on the next
// poll, while invalid block data and reorganizations beyond the configured
// depth stop it.
func (i *Indexer) Run(ctx context.Context) error {

	ticker := time.NewTicker(i.cfg.Interval)
	defer ticker.Stop()

	for {
		err := i.sync(ctx)
		if errors.Is(err, ErrInvalidBlock) || errors.Is(err, ErrReorgDepth) {
			return err
		}
		if err != nil {
			i.log.Error().Err(err).Msg("could not synchronize index")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (i *Indexer) sync(ctx context.Context) error {

	err := i.genesis()
	if err != nil {
		return fmt.Errorf("could not index genesis hash: %w", err)
	}

	count, err := i.node.BlockCount()
	if err != nil {
		return fmt.Errorf("could not get block count: %w", err)
	}

	var rolled uint
	for ctx.Err() == nil {

		previous, ok, err := i.previous()
		if err != nil {
			return fmt.Errorf("could not get previous block: %w", err)
		}

		height := i.cfg.StartHeight
		if ok {
			height = previous.height + 1
		}

		// Once caught up, the last indexed block can still have been replaced
		// by a block at the same height.
		if height > count {
			if !ok {
				return nil
			}
			// A best chain shorter than the index orphans every block above its tip.
			if previous.height > count {
				err = i.rollback(previous, &rolled)
				if err != nil {
					return err
				}
				continue
			}
			hash, err := i.node.BlockHash(count)
			if err != nil {
				return fmt.Errorf("could not get block hash (height: %d): %w", count, err)
			}
			if hash == previous.hash {
				return nil
			}
			err = i.rollback(previous, &rolled)
			if err != nil {
				return err
			}
			continue
		}

		hash, err := i.node.BlockHash(height)
		if err != nil {
			return fmt.Errorf("could not get block hash (height: %d): %w", height, err)
		}
		data, err := i.node.RawBlock(hash)
		if err != nil {
			return fmt.Errorf("could not get raw block (height: %d): %w", height, err)
		}
		block, err := wire.DecodeBlock(hash, data)
		if err != nil {
			return fmt.Errorf("%w (height: %d, hash: %s): %s", ErrInvalidBlock, height, hash, err)
		}

		// A block that does not build on the last indexed block means the last
		// indexed block is no longer part of the best chain.
		if ok && block.Header.PrevBlock != previous.hash {
			err = i.rollback(previous, &rolled)
			if err != nil {
				return err
			}
			continue
		}

		err = i.write.Apply(height, block)
		if err != nil {
			return fmt.Errorf("could not apply block (height: %d): %w", height, err)
		}

		i.recent.PushBack(record{height: height, hash: hash})
		for uint(i.recent.Len()) > i.cfg.Depth {
			i.recent.PopFront()
		}
		rolled = 0

		i.log.Info().
			Uint64("height", height).
			Str("hash", hash.String()).
			Int("transactions", len(block.Transactions)).
			Msg("block indexed")
	}

	return nil
}

func (i *Indexer) rollback(previous record, rolled *uint) error {

	if *rolled >= i.cfg.Depth {
		return fmt.Errorf("%w (height: %d, depth: %d)", ErrReorgDepth, previous.height, *rolled)
	}

	err := i.write.Rollback(previous.height)
	if err != nil {
		return fmt.Errorf("could not roll back block (height: %d): %w", previous.height, err)
	}
	if i.recent.Len() > 0 {
		i.recent.PopBack()
	}
	*rolled++

	i.log.Warn().
		Uint64("height", previous.height).
		Str("hash", previous.hash.String()).
		Msg("rolled back reorganized block")

	return nil
}

// genesis makes sure the hash of the genesis block is in the index, even when
// indexing starts above it.
func (i *Indexer) genesis() error {

	if i.known {
		return nil
	}

	_, err := i.index.Genesis()
	if err == nil {
		i.known = true
		return nil
	}
	if !errors.Is(err, hns.ErrNotFound) {
		return fmt.Errorf("could not get genesis hash: %w", err)
	}

	hash, err := i.node.BlockHash(0)
	if err != nil {
		return fmt.Errorf("could not get genesis hash from node: %w", err)
	}
	err = i.write.Genesis(hash)
	if err != nil {
		return fmt.Errorf("could not write genesis hash: %w", err)
	}

	i.known = true

	return nil
}

// previous returns the last indexed block. When the window of recent blocks
// is exhausted, it falls back to the index itself.
func (i *Indexer) previous() (record, bool, error) {

	if i.recent.Len() > 0 {
		return i.recent.Back().(record), true, nil
	}

	last, err := i.index.Last()
	if errors.Is(err, hns.ErrNotFound) {
		return record{}, false, nil
	}
	if err != nil {
		return record{}, false, fmt.Errorf("could not get last height: %w", err)
	}
	header, err := i.index.Header(last)
	if err != nil {
		return record{}, false, fmt.Errorf("could not get last header: %w", err)
	}

	previous := record{height: last, hash: header.Hash}
	i.recent.PushBack(previous)

	return previous, true, nil
}
