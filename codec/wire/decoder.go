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

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	btcwire "github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/blake2b"

	"github.com/optakt/hsd-rosetta/models/hns"
)

// Limits applied while decoding, mirroring the consensus limits of the node.
const (
	HeaderSize     = 236
	MaxBlockSize   = 8_000_000
	MaxItemSize    = 10_000
	MaxAddressSize = 40
)

// DecodeBlock decodes a raw serialized block. The block hash is provided by the
// caller, as it is part of the data the node hands out with the block.
func DecodeBlock(hash hns.Hash, data []byte) (*hns.Block, error) {
	if len(data) > MaxBlockSize {
		return nil, fmt.Errorf("block too big (size: %d, max: %d)", len(data), MaxBlockSize)
	}

	d := newDecoder(data)
	header, err := d.header()
	if err != nil {
		return nil, fmt.Errorf("could not decode header: %w", err)
	}
	header.Hash = hash

	count, err := d.count(10)
	if err != nil {
		return nil, fmt.Errorf("could not decode transaction count: %w", err)
	}

	block := hns.Block{
		Header:       header,
		Transactions: make([]*hns.Transaction, 0, count),
	}
	for i := uint64(0); i < count; i++ {
		tx, err := d.transaction()
		if err != nil {
			return nil, fmt.Errorf("could not decode transaction (index: %d): %w", i, err)
		}
		block.Transactions = append(block.Transactions, tx)
	}

	if d.r.Len() != 0 {
		return nil, fmt.Errorf("trailing data after block (bytes: %d)", d.r.Len())
	}

	return &block, nil
}

// DecodeTransaction decodes a raw serialized transaction, witnesses included.
func DecodeTransaction(data []byte) (*hns.Transaction, error) {
	d := newDecoder(data)
	tx, err := d.transaction()
	if err != nil {
		return nil, err
	}
	if d.r.Len() != 0 {
		return nil, fmt.Errorf("trailing data after transaction (bytes: %d)", d.r.Len())
	}
	return tx, nil
}

type decoder struct {
	data []byte
	r    *bytes.Reader
}

func newDecoder(data []byte) *decoder {
	d := decoder{
		data: data,
		r:    bytes.NewReader(data),
	}
	return &d
}

func (d *decoder) offset() int {
	return len(d.data) - d.r.Len()
}

func (d *decoder) header() (hns.Header, error) {
	var header hns.Header
	if d.r.Len() < HeaderSize {
		return hns.Header{}, fmt.Errorf("header too short (have: %d, want: %d)", d.r.Len(), HeaderSize)
	}

	header.Nonce, _ = d.uint32()
	header.Time, _ = d.uint64()
	_, _ = io.ReadFull(d.r, header.PrevBlock[:])
	_, _ = io.ReadFull(d.r, header.TreeRoot[:])
	_, _ = io.ReadFull(d.r, header.ExtraNonce[:])
	_, _ = io.ReadFull(d.r, header.ReservedRoot[:])
	_, _ = io.ReadFull(d.r, header.WitnessRoot[:])
	_, _ = io.ReadFull(d.r, header.MerkleRoot[:])
	header.Version, _ = d.uint32()
	header.Bits, _ = d.uint32()
	_, _ = io.ReadFull(d.r, header.Mask[:])

	return header, nil
}

func (d *decoder) transaction() (*hns.Transaction, error) {
	start := d.offset()

	var tx hns.Transaction
	var err error
	tx.Version, err = d.uint32()
	if err != nil {
		return nil, fmt.Errorf("could not read version: %w", err)
	}

	// Every input takes at least 40 bytes, which bounds the count.
	inputs, err := d.count(40)
	if err != nil {
		return nil, fmt.Errorf("could not read input count: %w", err)
	}
	tx.Inputs = make([]hns.Input, 0, inputs)
	for i := uint64(0); i < inputs; i++ {
		var input hns.Input
		_, err = io.ReadFull(d.r, input.Prevout.Hash[:])
		if err != nil {
			return nil, fmt.Errorf("could not read prevout hash (input: %d): %w", i, err)
		}
		input.Prevout.Index, err = d.uint32()
		if err != nil {
			return nil, fmt.Errorf("could not read prevout index (input: %d): %w", i, err)
		}
		input.Sequence, err = d.uint32()
		if err != nil {
			return nil, fmt.Errorf("could not read sequence (input: %d): %w", i, err)
		}
		tx.Inputs = append(tx.Inputs, input)
	}

	// Every output takes at least 11 bytes.
	outputs, err := d.count(11)
	if err != nil {
		return nil, fmt.Errorf("could not read output count: %w", err)
	}
	tx.Outputs = make([]hns.Output, 0, outputs)
	for i := uint64(0); i < outputs; i++ {
		output, err := d.output()
		if err != nil {
			return nil, fmt.Errorf("could not read output (index: %d): %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, output)
	}

	tx.LockTime, err = d.uint32()
	if err != nil {
		return nil, fmt.Errorf("could not read lock time: %w", err)
	}

	// The transaction identifier commits to everything but the witnesses.
	base := d.offset()
	tx.Hash = blake2b.Sum256(d.data[start:base])

	for i := range tx.Inputs {
		witness, err := d.witness()
		if err != nil {
			return nil, fmt.Errorf("could not read witness (input: %d): %w", i, err)
		}
		tx.Inputs[i].Witness = witness
	}

	tx.Size = uint64(d.offset() - start)

	return &tx, nil
}

func (d *decoder) output() (hns.Output, error) {
	var output hns.Output
	var err error
	output.Value, err = d.uint64()
	if err != nil {
		return hns.Output{}, fmt.Errorf("could not read value: %w", err)
	}

	output.Address.Version, err = d.r.ReadByte()
	if err != nil {
		return hns.Output{}, fmt.Errorf("could not read address version: %w", err)
	}
	size, err := d.r.ReadByte()
	if err != nil {
		return hns.Output{}, fmt.Errorf("could not read address size: %w", err)
	}
	if size > MaxAddressSize {
		return hns.Output{}, fmt.Errorf("address too long (size: %d, max: %d)", size, MaxAddressSize)
	}
	output.Address.Hash = make([]byte, size)
	_, err = io.ReadFull(d.r, output.Address.Hash)
	if err != nil {
		return hns.Output{}, fmt.Errorf("could not read address hash: %w", err)
	}

	typ, err := d.r.ReadByte()
	if err != nil {
		return hns.Output{}, fmt.Errorf("could not read covenant type: %w", err)
	}
	output.Covenant.Type = hns.CovenantType(typ)
	output.Covenant.Items, err = d.items()
	if err != nil {
		return hns.Output{}, fmt.Errorf("could not read covenant items: %w", err)
	}

	return output, nil
}

func (d *decoder) witness() (hns.Witness, error) {
	items, err := d.items()
	if err != nil {
		return nil, err
	}
	return hns.Witness(items), nil
}

func (d *decoder) items() ([][]byte, error) {
	count, err := d.count(1)
	if err != nil {
		return nil, fmt.Errorf("could not read item count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	items := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		item, err := btcwire.ReadVarBytes(d.r, 0, MaxItemSize, "item")
		if err != nil {
			return nil, fmt.Errorf("could not read item (index: %d): %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// count reads a varint element count and checks that the remaining data can
// hold that many elements of the given minimum size.
func (d *decoder) count(size int) (uint64, error) {
	count, err := btcwire.ReadVarInt(d.r, 0)
	if err != nil {
		return 0, err
	}
	if count > uint64(d.r.Len()/size) {
		return 0, fmt.Errorf("count exceeds remaining data (count: %d, remaining: %d)", count, d.r.Len())
	}
	return count, nil
}

func (d *decoder) uint32() (uint32, error) {
	var buf [4]byte
	_, err := io.ReadFull(d.r, buf[:])
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (d *decoder) uint64() (uint64, error) {
	var buf [8]byte
	_, err := io.ReadFull(d.r, buf[:])
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
