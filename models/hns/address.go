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
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// NulldataVersion is the address version reserved for provably unspendable
// outputs.
const NulldataVersion = 31

// Address is a witness program: a version and a hash of the locking data.
type Address struct {
	Version uint8
	Hash    []byte
}

// Absent returns whether the address carries no hash at all.
func (a Address) Absent() bool {
	return len(a.Hash) == 0
}

// Null returns whether the address is the burn address, meaning a hash that
// consists only of zero bytes.
func (a Address) Null() bool {
	if a.Absent() {
		return false
	}
	for _, b := range a.Hash {
		if b != 0 {
			return false
		}
	}
	return true
}

// Unspendable returns whether the address marks a nulldata output.
func (a Address) Unspendable() bool {
	return a.Version == NulldataVersion
}

// Equal returns whether both addresses have the same version and hash.
func (a Address) Equal(b Address) bool {
	return a.Version == b.Version && string(a.Hash) == string(b.Hash)
}

// EncodeAddress renders the address as bech32 string with the human-readable
// part of the network.
func (p Params) EncodeAddress(address Address) (string, error) {
	program, err := bech32.ConvertBits(address.Hash, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("could not convert program: %w", err)
	}
	data := make([]byte, 0, len(program)+1)
	data = append(data, address.Version)
	data = append(data, program...)
	encoded, err := bech32.Encode(p.HRP, data)
	if err != nil {
		return "", fmt.Errorf("could not encode address: %w", err)
	}
	return encoded, nil
}

// DecodeAddress parses a bech32 address string and checks that it belongs to
// the network.
func (p Params) DecodeAddress(s string) (Address, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("could not decode address: %w", err)
	}
	if hrp != p.HRP {
		return Address{}, fmt.Errorf("invalid address prefix (have: %s, want: %s)", hrp, p.HRP)
	}
	if len(data) < 1 {
		return Address{}, fmt.Errorf("missing address version")
	}
	version := data[0]
	if version > NulldataVersion {
		return Address{}, fmt.Errorf("invalid address version (%d)", version)
	}
	hash, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("could not convert program: %w", err)
	}
	if len(hash) < 2 || len(hash) > 40 {
		return Address{}, fmt.Errorf("invalid address hash length (%d)", len(hash))
	}
	address := Address{
		Version: version,
		Hash:    hash,
	}
	return address, nil
}
