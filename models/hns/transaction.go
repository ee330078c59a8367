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

package hns

import (
	"bytes"
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/wire"
)

// Outpoint references an output by the hash of its transaction and its index.
type Outpoint struct {
	Hash  Hash
	Index uint32
}

// Null returns whether the outpoint is the one used by coinbase inputs.
func (o Outpoint) Null() bool {
	return o.Hash == ZeroHash && o.Index == math.MaxUint32
}

// Witness is the ordered list of stack items unlocking an input.
type Witness [][]byte

// ASM renders the witness items as pushes separated by spaces.
func (w Witness) ASM() string {
	parts := make([]string, 0, len(w))
	for _, item := range w {
		switch {
		case len(item) == 0:
			parts = append(parts, "0")
		case len(item) == 1 && item[0] >= 1 && item[0] <= 16:
			parts = append(parts, strconv.Itoa(int(item[0])))
		case len(item) == 1 && item[0] == 0x81:
			parts = append(parts, "-1")
		default:
			parts = append(parts, hex.EncodeToString(item))
		}
	}
	return strings.Join(parts, " ")
}

// Hex renders the wire serialization of the witness as hexadecimal string.
func (w Witness) Hex() string {
	buf := &bytes.Buffer{}
	_ = wire.WriteVarInt(buf, 0, uint64(len(w)))
	for _, item := range w {
		_ = wire.WriteVarBytes(buf, 0, item)
	}
	return hex.EncodeToString(buf.Bytes())
}

// Input spends a previous output.
type Input struct {
	Prevout  Outpoint
	Sequence uint32
	Witness  Witness
}

// Output assigns a value to an address, optionally with a covenant.
type Output struct {
	Value    uint64
	Address  Address
	Covenant Covenant
}

// Unspendable returns whether the output can never be spent.
func (o Output) Unspendable() bool {
	return o.Address.Unspendable()
}

// Transaction is a decoded Handshake transaction.
type Transaction struct {
	Hash     Hash
	Version  uint32
	Inputs   []Input
	Outputs  []Output
	LockTime uint32
	Size     uint64
}

// Coinbase returns whether the transaction mints new coins.
func (t *Transaction) Coinbase() bool {
	return len(t.Inputs) > 0 && t.Inputs[0].Prevout.Null()
}
