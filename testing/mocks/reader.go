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

type Reader struct {
	FirstFunc          func() (uint64, error)
	LastFunc           func() (uint64, error)
	TipFunc            func() (hns.Tip, error)
	GenesisFunc        func() (hns.Hash, error)
	HeaderFunc         func(height uint64) (*hns.Header, error)
	BlockFunc          func(height uint64) (*hns.Block, error)
	HeightForBlockFunc func(hash hns.Hash) (uint64, error)
	ViewFunc           func(height uint64) (hns.View, error)
	TransactionFunc    func(hash hns.Hash) (*hns.Transaction, uint64, error)
	CoinFunc           func(outpoint hns.Outpoint) (hns.Coin, error)
	CoinsFunc          func(address hns.Address) ([]hns.Coin, error)
}

func BaselineReader(t *testing.T) *Reader {
	t.Helper()

	r := Reader{
		FirstFunc: func() (uint64, error) {
			return 0, nil
		},
		LastFunc: func() (uint64, error) {
			return GenericHeight, nil
		},
		TipFunc: func() (hns.Tip, error) {
			return GenericTip, nil
		},
		GenesisFunc: func() (hns.Hash, error) {
			return GenericHash(0), nil
		},
		HeaderFunc: func(height uint64) (*hns.Header, error) {
			header := GenericHeader
			return &header, nil
		},
		BlockFunc: func(height uint64) (*hns.Block, error) {
			return GenericBlock, nil
		},
		HeightForBlockFunc: func(hash hns.Hash) (uint64, error) {
			return GenericHeight - 1, nil
		},
		ViewFunc: func(height uint64) (hns.View, error) {
			return GenericView, nil
		},
		TransactionFunc: func(hash hns.Hash) (*hns.Transaction, uint64, error) {
			return GenericTransaction, GenericHeight, nil
		},
		CoinFunc: func(outpoint hns.Outpoint) (hns.Coin, error) {
			return GenericCoin, nil
		},
		CoinsFunc: func(address hns.Address) ([]hns.Coin, error) {
			return []hns.Coin{GenericCoin}, nil
		},
	}

	return &r
}

func (r *Reader) First() (uint64, error) {
	return r.FirstFunc()
}

func (r *Reader) Last() (uint64, error) {
	return r.LastFunc()
}

func (r *Reader) Tip() (hns.Tip, error) {
	return r.TipFunc()
}

func (r *Reader) Genesis() (hns.Hash, error) {
	return r.GenesisFunc()
}

func (r *Reader) Header(height uint64) (*hns.Header, error) {
	return r.HeaderFunc(height)
}

func (r *Reader) Block(height uint64) (*hns.Block, error) {
	return r.BlockFunc(height)
}

func (r *Reader) HeightForBlock(hash hns.Hash) (uint64, error) {
	return r.HeightForBlockFunc(hash)
}

func (r *Reader) View(height uint64) (hns.View, error) {
	return r.ViewFunc(height)
}

func (r *Reader) Transaction(hash hns.Hash) (*hns.Transaction, uint64, error) {
	return r.TransactionFunc(hash)
}

func (r *Reader) Coin(outpoint hns.Outpoint) (hns.Coin, error) {
	return r.CoinFunc(outpoint)
}

func (r *Reader) Coins(address hns.Address) ([]hns.Coin, error) {
	return r.CoinsFunc(address)
}
