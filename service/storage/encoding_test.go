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

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/models/hns"
)

func TestEncodeKey(t *testing.T) {
	t.Run("combined segments", func(t *testing.T) {
		t.Parallel()

		outpoint := hns.Outpoint{Hash: hns.Hash{0xaa}, Index: 258}
		address := hns.Address{Version: 1, Hash: []byte{0xbb, 0xcc}}

		key := EncodeKey(PrefixCoinsForAddress, address, outpoint)

		want := []byte{PrefixCoinsForAddress, 0x01, 0x02, 0xbb, 0xcc, 0xaa}
		want = append(want, make([]byte, 31)...)
		want = append(want, 0x00, 0x00, 0x01, 0x02)
		assert.Equal(t, want, key)
	})

	t.Run("heights are big-endian", func(t *testing.T) {
		t.Parallel()

		key := EncodeKey(PrefixHeader, uint64(42))
		assert.Equal(t, []byte{PrefixHeader, 0, 0, 0, 0, 0, 0, 0, 0x2a}, key)
	})

	t.Run("no segments", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []byte{PrefixLast}, EncodeKey(PrefixLast))
	})

	t.Run("unknown segment type", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			EncodeKey(PrefixLast, "text")
		})
	})
}

func TestDecodeOutpoint(t *testing.T) {
	outpoint := hns.Outpoint{Hash: hns.Hash{0x01, 0x02}, Index: 7}
	key := EncodeKey(PrefixCoin, outpoint)

	got, err := DecodeOutpoint(key)
	require.NoError(t, err)
	assert.Equal(t, outpoint, got)

	_, err = DecodeOutpoint([]byte{PrefixCoin})
	assert.Error(t, err)
}
