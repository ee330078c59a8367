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

type Node struct {
	BlockCountFunc     func() (uint64, error)
	BlockHashFunc      func(height uint64) (hns.Hash, error)
	RawBlockFunc       func(hash hns.Hash) ([]byte, error)
	RawMempoolFunc     func() ([]hns.Hash, error)
	RawTransactionFunc func(hash hns.Hash) ([]byte, error)
	RelayFunc          func(data []byte) (hns.Hash, error)
}

func BaselineNode(t *testing.T) *Node {
	t.Helper()

	n := Node{
		BlockCountFunc: func() (uint64, error) {
			return GenericHeight, nil
		},
		BlockHashFunc: func(height uint64) (hns.Hash, error) {
			return GenericHash(int(height)), nil
		},
		RawBlockFunc: func(hash hns.Hash) ([]byte, error) {
			return nil, GenericError
		},
		RawMempoolFunc: func() ([]hns.Hash, error) {
			return []hns.Hash{GenericTransaction.Hash}, nil
		},
		RawTransactionFunc: func(hash hns.Hash) ([]byte, error) {
			return nil, GenericError
		},
		RelayFunc: func(data []byte) (hns.Hash, error) {
			return GenericTransaction.Hash, nil
		},
	}

	return &n
}

func (n *Node) BlockCount() (uint64, error) {
	return n.BlockCountFunc()
}

func (n *Node) BlockHash(height uint64) (hns.Hash, error) {
	return n.BlockHashFunc(height)
}

func (n *Node) RawBlock(hash hns.Hash) ([]byte, error) {
	return n.RawBlockFunc(hash)
}

func (n *Node) RawMempool() ([]hns.Hash, error) {
	return n.RawMempoolFunc()
}

func (n *Node) RawTransaction(hash hns.Hash) ([]byte, error) {
	return n.RawTransactionFunc(hash)
}

func (n *Node) Relay(data []byte) (hns.Hash, error) {
	return n.RelayFunc(data)
}
