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

package zbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// Codec encodes index values with canonical CBOR and compresses them with
// Zstandard.
type Codec struct {
	encoder      cbor.EncMode
	decoder      cbor.DecMode
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewCodec creates a new Codec with the given compression level.
func NewCodec(level zstd.EncoderLevel) *Codec {

	// The options are static, so failing to build the modes or the zstd
	// encoders is a programming error.
	encoder, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decoder, err := cbor.DecOptions{MaxArrayElements: 1 << 24, MaxMapPairs: 1 << 24}.DecMode()
	if err != nil {
		panic(err)
	}
	compressor, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(level),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		panic(err)
	}
	decompressor, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
	)
	if err != nil {
		panic(err)
	}

	c := Codec{
		encoder:      encoder,
		decoder:      decoder,
		compressor:   compressor,
		decompressor: decompressor,
	}

	return &c
}

// Marshal encodes and compresses the given value.
func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	data, err := c.encoder.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("could not encode value: %w", err)
	}
	compressed := c.compressor.EncodeAll(data, nil)
	return compressed, nil
}

// Unmarshal decompresses and decodes the given data into the value.
func (c *Codec) Unmarshal(compressed []byte, value interface{}) error {
	data, err := c.decompressor.DecodeAll(compressed, nil)
	if err != nil {
		return fmt.Errorf("could not decompress data: %w", err)
	}
	err = c.decoder.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not decode value: %w", err)
	}
	return nil
}
