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

// Header is a decoded Handshake block header.
type Header struct {
	Hash         Hash
	PrevBlock    Hash
	MerkleRoot   Hash
	WitnessRoot  Hash
	TreeRoot     Hash
	ReservedRoot Hash
	ExtraNonce   [24]byte
	Mask         Hash
	Time         uint64
	Bits         uint32
	Nonce        uint32
	Version      uint32
}

// Block is a decoded Handshake block.
type Block struct {
	Header       Header
	Transactions []*Transaction
}

// Tip is the most recent indexed block.
type Tip struct {
	Height uint64
	Hash   Hash
	Time   uint64
}

// Peer is a peer the node is connected to.
type Peer struct {
	Host string
}
