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

package helpers

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcd/wire"

	"github.com/optakt/hsd-rosetta/models/hns"
)

// EncodeBlock serializes a block the way the node does, so tests can feed
// decoders with realistic payloads.
func EncodeBlock(block *hns.Block) []byte {
	buf := &bytes.Buffer{}
	encodeHeader(buf, block.Header)
	_ = wire.WriteVarInt(buf, 0, uint64(len(block.Transactions)))
	for _, tx := range block.Transactions {
		encodeTransaction(buf, tx, true)
	}
	return buf.Bytes()
}

// EncodeTransaction serializes a transaction with its witnesses.
func EncodeTransaction(tx *hns.Transaction) []byte {
	buf := &bytes.Buffer{}
	encodeTransaction(buf, tx, true)
	return buf.Bytes()
}

// EncodeBase serializes a transaction without its witnesses, which is the data
// its identifier commits to.
func EncodeBase(tx *hns.Transaction) []byte {
	buf := &bytes.Buffer{}
	encodeTransaction(buf, tx, false)
	return buf.Bytes()
}

func encodeHeader(buf *bytes.Buffer, header hns.Header) {
	putUint32(buf, header.Nonce)
	putUint64(buf, header.Time)
	buf.Write(header.PrevBlock[:])
	buf.Write(header.TreeRoot[:])
	buf.Write(header.ExtraNonce[:])
	buf.Write(header.ReservedRoot[:])
	buf.Write(header.WitnessRoot[:])
	buf.Write(header.MerkleRoot[:])
	putUint32(buf, header.Version)
	putUint32(buf, header.Bits)
	buf.Write(header.Mask[:])
}

func encodeTransaction(buf *bytes.Buffer, tx *hns.Transaction, witness bool) {
	putUint32(buf, tx.Version)

	_ = wire.WriteVarInt(buf, 0, uint64(len(tx.Inputs)))
	for _, input := range tx.Inputs {
		buf.Write(input.Prevout.Hash[:])
		putUint32(buf, input.Prevout.Index)
		putUint32(buf, input.Sequence)
	}

	_ = wire.WriteVarInt(buf, 0, uint64(len(tx.Outputs)))
	for _, output := range tx.Outputs {
		putUint64(buf, output.Value)
		buf.WriteByte(output.Address.Version)
		buf.WriteByte(uint8(len(output.Address.Hash)))
		buf.Write(output.Address.Hash)
		buf.WriteByte(uint8(output.Covenant.Type))
		encodeItems(buf, output.Covenant.Items)
	}

	putUint32(buf, tx.LockTime)

	if !witness {
		return
	}
	for _, input := range tx.Inputs {
		encodeItems(buf, input.Witness)
	}
}

func encodeItems(buf *bytes.Buffer, items [][]byte) {
	_ = wire.WriteVarInt(buf, 0, uint64(len(items)))
	for _, item := range items {
		_ = wire.WriteVarBytes(buf, 0, item)
	}
}

func putUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}
