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

package identifier

// Block identifies a block by its height and hash. Requests might leave out
// either of them.
type Block struct {
	Index *uint64 `json:"index,omitempty"`
	Hash  string  `json:"hash,omitempty"`
}

// NewBlock returns a block identifier with both fields set.
func NewBlock(index uint64, hash string) Block {
	return Block{
		Index: &index,
		Hash:  hash,
	}
}

// Height returns the index of the block identifier, or zero if it is missing.
func (b Block) Height() uint64 {
	if b.Index == nil {
		return 0
	}
	return *b.Index
}
