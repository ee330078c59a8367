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
	"encoding/binary"
	"fmt"

	"github.com/optakt/hsd-rosetta/models/hns"
)

// OutpointSize is the length of an encoded outpoint segment.
const OutpointSize = 36

// EncodeKey builds a key from the prefix and the big-endian encoding of each
// segment. Addresses are encoded with their version and length, so that the
// keys of an address never share a prefix with those of a longer address.
func EncodeKey(prefix uint8, segments ...interface{}) []byte {
	key := []byte{prefix}
	var val []byte
	for _, segment := range segments {
		switch s := segment.(type) {
		case uint64:
			val = make([]byte, 8)
			binary.BigEndian.PutUint64(val, s)
		case hns.Hash:
			val = make([]byte, 32)
			copy(val, s[:])
		case hns.Outpoint:
			val = make([]byte, OutpointSize)
			copy(val, s.Hash[:])
			binary.BigEndian.PutUint32(val[32:], s.Index)
		case hns.Address:
			val = make([]byte, 0, 2+len(s.Hash))
			val = append(val, s.Version, uint8(len(s.Hash)))
			val = append(val, s.Hash...)
		default:
			panic(fmt.Sprintf("unknown type (%T)", segment))
		}
		key = append(key, val...)
	}

	return key
}

// DecodeOutpoint reads the outpoint at the end of a key.
func DecodeOutpoint(key []byte) (hns.Outpoint, error) {
	if len(key) < OutpointSize {
		return hns.Outpoint{}, fmt.Errorf("key too short for outpoint (length: %d)", len(key))
	}
	tail := key[len(key)-OutpointSize:]
	var outpoint hns.Outpoint
	copy(outpoint.Hash[:], tail[:32])
	outpoint.Index = binary.BigEndian.Uint32(tail[32:])
	return outpoint, nil
}
