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
	"time"

	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

type Retriever struct {
	CurrentFunc            func() (identifier.Block, time.Time, error)
	GenesisFunc            func() (identifier.Block, error)
	PeersFunc              func() ([]identifier.Peer, error)
	AgentFunc              func() (string, error)
	BalanceFunc            func(account identifier.Account, block *identifier.Block) (identifier.Block, []object.Amount, error)
	BlockFunc              func(id identifier.Block) (*object.Block, error)
	TransactionFunc        func(blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error)
	MempoolFunc            func() ([]identifier.Transaction, error)
	MempoolTransactionFunc func(txID identifier.Transaction) (*object.Transaction, error)
	SubmitFunc             func(raw string) (identifier.Transaction, error)
}

func BaselineRetriever(t *testing.T) *Retriever {
	t.Helper()

	r := Retriever{
		CurrentFunc: func() (identifier.Block, time.Time, error) {
			return GenericBlockID, time.Unix(int64(GenericHeader.Time), 0).UTC(), nil
		},
		GenesisFunc: func() (identifier.Block, error) {
			return identifier.NewBlock(0, GenericHash(0).String()), nil
		},
		PeersFunc: func() ([]identifier.Peer, error) {
			return []identifier.Peer{{PeerID: GenericPeers[0].Host}}, nil
		},
		AgentFunc: func() (string, error) {
			return GenericAgent, nil
		},
		BalanceFunc: func(account identifier.Account, block *identifier.Block) (identifier.Block, []object.Amount, error) {
			amount := object.Amount{Value: "5000", Currency: GenericCurrency}
			return GenericBlockID, []object.Amount{amount}, nil
		},
		BlockFunc: func(id identifier.Block) (*object.Block, error) {
			return GenericObjectBlock(), nil
		},
		TransactionFunc: func(blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error) {
			return GenericObjectTransaction(), nil
		},
		MempoolFunc: func() ([]identifier.Transaction, error) {
			return []identifier.Transaction{GenericTransactionID}, nil
		},
		MempoolTransactionFunc: func(txID identifier.Transaction) (*object.Transaction, error) {
			return GenericObjectTransaction(), nil
		},
		SubmitFunc: func(raw string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
	}

	return &r
}

func (r *Retriever) Current() (identifier.Block, time.Time, error) {
	return r.CurrentFunc()
}

func (r *Retriever) Genesis() (identifier.Block, error) {
	return r.GenesisFunc()
}

func (r *Retriever) Peers() ([]identifier.Peer, error) {
	return r.PeersFunc()
}

func (r *Retriever) Agent() (string, error) {
	return r.AgentFunc()
}

func (r *Retriever) Balance(account identifier.Account, block *identifier.Block) (identifier.Block, []object.Amount, error) {
	return r.BalanceFunc(account, block)
}

func (r *Retriever) Block(id identifier.Block) (*object.Block, error) {
	return r.BlockFunc(id)
}

func (r *Retriever) Transaction(blockID identifier.Block, txID identifier.Transaction) (*object.Transaction, error) {
	return r.TransactionFunc(blockID, txID)
}

func (r *Retriever) Mempool() ([]identifier.Transaction, error) {
	return r.MempoolFunc()
}

func (r *Retriever) MempoolTransaction(txID identifier.Transaction) (*object.Transaction, error) {
	return r.MempoolTransactionFunc(txID)
}

func (r *Retriever) Submit(raw string) (identifier.Transaction, error) {
	return r.SubmitFunc(raw)
}
