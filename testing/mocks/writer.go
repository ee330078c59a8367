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

type Writer struct {
	GenesisFunc  func(hash hns.Hash) error
	ApplyFunc    func(height uint64, block *hns.Block) error
	RollbackFunc func(height uint64) error
}

func BaselineWriter(t *testing.T) *Writer {
	t.Helper()

	w := Writer{
		GenesisFunc: func(hns.Hash) error {
			return nil
		},
		ApplyFunc: func(uint64, *hns.Block) error {
			return nil
		},
		RollbackFunc: func(uint64) error {
			return nil
		},
	}

	return &w
}

func (w *Writer) Genesis(hash hns.Hash) error {
	return w.GenesisFunc(hash)
}

func (w *Writer) Apply(height uint64, block *hns.Block) error {
	return w.ApplyFunc(height, block)
}

func (w *Writer) Rollback(height uint64) error {
	return w.RollbackFunc(height)
}
