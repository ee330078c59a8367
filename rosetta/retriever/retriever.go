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

package retriever

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

// Retriever projects chain and mempool data into Rosetta objects.
type Retriever struct {
	params   hns.Params
	currency identifier.Currency
	chain    Chain
	mempool  Mempool
	network  Network
	convert  Converter
}

func New(params hns.Params, currency identifier.Currency, chain Chain, mempool Mempool, network Network, convert Converter) *Retriever {

	r := Retriever{
		params:   params,
		currency: currency,
		chain:    chain,
		mempool:  mempool,
		network:  network,
		convert:  convert,
	}

	return &r
}

// Current returns the identifier and timestamp of the last indexed block.
func (r *Retriever) Current() (identifier.Block, time.Time, error) {

	tip, err := r.chain.Tip()
	if errors.Is(err, hns.ErrNotFound) {
		return identifier.Block{}, time.Time{}, failure.UnknownBlock{
			Description: failure.NewDescription("no block indexed yet", failure.WithErr(err)),
		}
	}
	if err != nil {
		return identifier.Block{}, time.Time{}, fmt.Errorf("could not get chain tip: %w", err)
	}

	block := identifier.NewBlock(tip.Height, tip.Hash.String())
	timestamp := time.Unix(int64(tip.Time), 0).UTC()

	return block, timestamp, nil
}

func (r *Retriever) Genesis() (identifier.Block, error) {

	hash, err := r.chain.Genesis()
	if errors.Is(err, hns.ErrNotFound) {
		return identifier.Block{}, failure.UnknownBlock{
			Description: failure.NewDescription("genesis block not indexed", failure.WithErr(err)),
		}
	}
	if err != nil {
		return identifier.Block{}, fmt.Errorf("could not get genesis hash: %w", err)
	}

	return identifier.NewBlock(0, hash.String()), nil
}

// Peers returns the connected peers of the node, in the order the node
// reports them.
func (r *Retriever) Peers() ([]identifier.Peer, error) {

	peers, err := r.network.Peers()
	if err != nil {
		return nil, fmt.Errorf("could not get peers: %w", err)
	}

	ids := make([]identifier.Peer, 0, len(peers))
	for _, peer := range peers {
		ids = append(ids, identifier.Peer{PeerID: peer.Host})
	}

	return ids, nil
}

// Agent returns the user agent of the node.
func (r *Retriever) Agent() (string, error) {
	agent, err := r.network.Agent()
	if err != nil {
		return "", fmt.Errorf("could not get node agent: %w", err)
	}
	return agent, nil
}

// Balance sums the spendable coins of an account. Only the current coin set
// is available, so the block identifier, when given, has to point at the
// chain tip.
func (r *Retriever) Balance(account identifier.Account, block *identifier.Block) (identifier.Block, []object.Amount, error) {

	address, err := r.params.DecodeAddress(account.Address)
	if err != nil {
		return identifier.Block{}, nil, failure.InvalidFormat{
			Description: failure.NewDescription("account address is invalid",
				failure.WithString("address", account.Address),
				failure.WithErr(err),
			),
		}
	}

	tip, err := r.chain.Tip()
	if errors.Is(err, hns.ErrNotFound) {
		return identifier.Block{}, nil, failure.UnknownBlock{
			Description: failure.NewDescription("no block indexed yet", failure.WithErr(err)),
		}
	}
	if err != nil {
		return identifier.Block{}, nil, fmt.Errorf("could not get chain tip: %w", err)
	}

	if block != nil && (block.Index != nil || block.Hash != "") {
		err = r.current(tip, *block)
		if err != nil {
			return identifier.Block{}, nil, err
		}
	}

	coins, err := r.chain.Coins(address)
	if err != nil {
		return identifier.Block{}, nil, fmt.Errorf("could not get coins: %w", err)
	}

	amount := object.Amount{
		Value:    strconv.FormatUint(Spendable(coins), 10),
		Currency: r.currency,
	}

	return identifier.NewBlock(tip.Height, tip.Hash.String()), []object.Amount{amount}, nil
}

// current checks that a block identifier refers to the chain tip.
func (r *Retriever) current(tip hns.Tip, block identifier.Block) error {

	if block.Index == nil {
		hash, err := hns.HashFromString(block.Hash)
		if err != nil {
			return failure.InvalidFormat{
				Description: failure.NewDescription("block hash is invalid", failure.WithErr(err)),
			}
		}
		if hash == tip.Hash {
			return nil
		}
		_, err = r.chain.HeightForBlock(hash)
		if errors.Is(err, hns.ErrNotFound) {
			return failure.UnknownBlock{
				Description: failure.NewDescription("block hash is not indexed", failure.WithErr(err)),
				Hash:        block.Hash,
			}
		}
		if err != nil {
			return fmt.Errorf("could not look up block height: %w", err)
		}
		return failure.UnsupportedQuery{
			Description: failure.NewDescription("balance lookup only supported at the chain tip",
				failure.WithString("hash", block.Hash),
				failure.WithUint64("tip", tip.Height),
			),
		}
	}

	height := *block.Index
	if height > tip.Height {
		return failure.UnknownBlock{
			Description: failure.NewDescription("block height is beyond the chain tip",
				failure.WithUint64("tip", tip.Height),
			),
			Index: height,
			Hash:  block.Hash,
		}
	}
	if height != tip.Height {
		return failure.UnsupportedQuery{
			Description: failure.NewDescription("balance lookup only supported at the chain tip",
				failure.WithUint64("height", height),
				failure.WithUint64("tip", tip.Height),
			),
		}
	}
	if block.Hash != "" && !matches(block.Hash, tip.Hash) {
		return failure.BlockMismatch{
			Description: failure.NewDescription("block hash does not match chain tip",
				failure.WithString("want", tip.Hash.String()),
			),
			Index: height,
			Hash:  block.Hash,
		}
	}

	return nil
}

// Block projects the indexed block at the given height, with the operations
// of each of its transactions.
func (r *Retriever) Block(id identifier.Block) (*object.Block, error) {

	height := id.Height()
	block, err := r.block(id)
	if err != nil {
		return nil, err
	}

	view, err := r.view(height)
	if err != nil {
		return nil, err
	}

	parent, err := r.parent(height, block.Header)
	if err != nil {
		return nil, err
	}

	transactions := make([]object.Transaction, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		transaction, err := r.transaction(tx, view)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}

	projection := object.Block{
		ID:           identifier.NewBlock(height, block.Header.Hash.String()),
		ParentID:     parent,
		Timestamp:    int64(block.Header.Time) * 1000,
		Transactions: transactions,
		Metadata: object.BlockMetadata{
			TransactionsRoot: block.Header.MerkleRoot.String(),
			Difficulty:       Difficulty(block.Header.Bits),
		},
	}

	return &projection, nil
}

// Transaction projects one transaction of an indexed block.
func (r *Retriever) Transaction(blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error) {

	hash, err := hns.HashFromString(txID.Hash)
	if err != nil {
		return nil, failure.InvalidFormat{
			Description: failure.NewDescription("transaction hash is invalid", failure.WithErr(err)),
		}
	}

	_, err = r.block(blockID)
	if err != nil {
		return nil, err
	}

	tx, height, err := r.chain.Transaction(hash)
	if errors.Is(err, hns.ErrNotFound) {
		return nil, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not indexed", failure.WithErr(err)),
			Hash:        txID.Hash,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get transaction: %w", err)
	}

	if height != blockID.Height() {
		return nil, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not part of block",
				failure.WithUint64("index", blockID.Height()),
				failure.WithUint64("height", height),
			),
			Hash: txID.Hash,
		}
	}

	view, err := r.view(height)
	if err != nil {
		return nil, err
	}

	return r.transaction(tx, view)
}

// Mempool lists the hashes of all transactions in the node mempool.
func (r *Retriever) Mempool() ([]identifier.Transaction, error) {

	hashes, err := r.mempool.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("could not get mempool snapshot: %w", err)
	}

	ids := make([]identifier.Transaction, 0, len(hashes))
	for _, hash := range hashes {
		ids = append(ids, identifier.Transaction{Hash: hash.String()})
	}

	return ids, nil
}

// MempoolTransaction projects a transaction that is waiting in the mempool.
func (r *Retriever) MempoolTransaction(txID identifier.Transaction) (*object.Transaction, error) {

	hash, err := hns.HashFromString(txID.Hash)
	if err != nil {
		return nil, failure.InvalidFormat{
			Description: failure.NewDescription("transaction hash is invalid", failure.WithErr(err)),
		}
	}

	tx, err := r.mempool.Transaction(hash)
	if errors.Is(err, hns.ErrNotFound) {
		return nil, failure.UnknownTransaction{
			Description: failure.NewDescription("transaction is not in mempool", failure.WithErr(err)),
			Hash:        txID.Hash,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get mempool transaction: %w", err)
	}

	view, err := r.mempool.View(tx)
	if err != nil {
		return nil, fmt.Errorf("could not get mempool coin view: %w", err)
	}

	return r.transaction(tx, view)
}

// Submit relays a signed transaction to the network.
func (r *Retriever) Submit(raw string) (identifier.Transaction, error) {

	hash, err := r.mempool.Submit(raw)
	if err != nil {
		return identifier.Transaction{}, failure.RelayFailure{
			Description: failure.NewDescription("node rejected transaction", failure.WithErr(err)),
		}
	}

	return identifier.Transaction{Hash: hash.String()}, nil
}

func (r *Retriever) block(id identifier.Block) (*hns.Block, error) {

	height := id.Height()
	block, err := r.chain.Block(height)
	if errors.Is(err, hns.ErrNotFound) {
		return nil, failure.UnknownBlock{
			Description: failure.NewDescription("block is not indexed", failure.WithErr(err)),
			Index:       height,
			Hash:        id.Hash,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get block: %w", err)
	}

	if id.Hash != "" && !matches(id.Hash, block.Header.Hash) {
		return nil, failure.BlockMismatch{
			Description: failure.NewDescription("block hash does not match indexed block",
				failure.WithString("want", block.Header.Hash.String()),
			),
			Index: height,
			Hash:  id.Hash,
		}
	}

	return block, nil
}

// matches checks whether a hash from a request refers to the given hash. Hex
// digits are not case sensitive.
func matches(id string, hash hns.Hash) bool {
	parsed, err := hns.HashFromString(id)
	return err == nil && parsed == hash
}

func (r *Retriever) view(height uint64) (hns.View, error) {

	view, err := r.chain.View(height)
	if errors.Is(err, hns.ErrNotFound) {
		return nil, failure.UnknownView{
			Description: failure.NewDescription("coin view is not indexed", failure.WithErr(err)),
			Index:       height,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get coin view: %w", err)
	}

	return view, nil
}

// parent identifies the predecessor of a block. The genesis block is its own
// parent.
func (r *Retriever) parent(height uint64, header hns.Header) (identifier.Block, error) {

	if height == 0 {
		return identifier.NewBlock(0, header.Hash.String()), nil
	}

	// The first indexed block can have a parent that was never indexed.
	parent, err := r.chain.HeightForBlock(header.PrevBlock)
	if errors.Is(err, hns.ErrNotFound) {
		return identifier.NewBlock(height-1, header.PrevBlock.String()), nil
	}
	if err != nil {
		return identifier.Block{}, fmt.Errorf("could not get parent height: %w", err)
	}

	return identifier.NewBlock(parent, header.PrevBlock.String()), nil
}

func (r *Retriever) transaction(tx *hns.Transaction, view hns.View) (*object.Transaction, error) {

	operations, err := r.convert.Operations(tx, view)
	if err != nil {
		return nil, fmt.Errorf("could not convert transaction (hash: %s): %w", tx.Hash, err)
	}

	transaction := object.Transaction{
		ID:         identifier.Transaction{Hash: tx.Hash.String()},
		Operations: operations,
		Metadata: object.TransactionMetadata{
			Size:     tx.Size,
			LockTime: tx.LockTime,
		},
	}

	return &transaction, nil
}
