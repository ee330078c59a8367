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
	"encoding/hex"
	"fmt"
)

// Hash is a 32-byte Handshake hash, used for block and transaction identifiers.
type Hash [32]byte

// ZeroHash is the hash with all bytes set to zero.
var ZeroHash Hash

// HashFromString parses a hash from its hexadecimal representation.
func HashFromString(s string) (Hash, error) {
	var hash Hash
	if len(s) != 2*len(hash) {
		return ZeroHash, fmt.Errorf("invalid hash length (have: %d, want: %d)", len(s), 2*len(hash))
	}
	_, err := hex.Decode(hash[:], []byte(s))
	if err != nil {
		return ZeroHash, fmt.Errorf("could not decode hash: %w", err)
	}
	return hash, nil
}

// String returns the lower-case hexadecimal representation of the hash. Unlike
// Bitcoin, Handshake displays hashes in the order they are serialized.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
