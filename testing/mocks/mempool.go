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

type Mempool struct {
	SnapshotFunc    func() ([]hns.Hash, error)
	TransactionFunc func(hash hns.Hash) (*hns.Transaction, error)
	ViewFunc        func(tx *hns.Transaction) (hns.View, error)
	SubmitFunc      func(raw string) (hns.Hash, error)
}

func BaselineMempool(t *testing.T) *Mempool {
	t.Helper()

	m := Mempool{
		SnapshotFunc: func() ([]hns.Hash, error) {
			return []hns.Hash{GenericHash(101), GenericHash(102)}, nil
		},
		TransactionFunc: func(hash hns.Hash) (*hns.Transaction, error) {
			return GenericTransaction, nil
		},
		ViewFunc: func(tx *hns.Transaction) (hns.View, error) {
			return GenericView, nil
		},
		SubmitFunc: func(raw string) (hns.Hash, error) {
			return GenericTransaction.Hash, nil
		},
	}

	return &m
}

func (m *Mempool) Snapshot() ([]hns.Hash, error) {
	return m.SnapshotFunc()
}

func (m *Mempool) Transaction(hash hns.Hash) (*hns.Transaction, error) {
	return m.TransactionFunc(hash)
}

func (m *Mempool) View(tx *hns.Transaction) (hns.View, error) {
	return m.ViewFunc(tx)
}

func (m *Mempool) Submit(raw string) (hns.Hash, error) {
	return m.SubmitFunc(raw)
}
