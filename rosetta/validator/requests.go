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

package validator

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/hsd-rosetta/codec/wire"
	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/request"
)

// Validation error tags.
const (
	tagMissing = "missing"
	tagFormat  = "format"
)

// HexHashSize is the length of a hash in hexadecimal notation.
const HexHashSize = 64

// Request validates the given request. Missing fields are reported as
// failure.MissingField, malformed ones as failure.InvalidFormat.
func (v *Validator) Request(req interface{}) error {

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate request: %w", err)
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("could not validate request: %w", err)
	}

	first := errs[0]
	switch first.Tag() {
	case tagMissing:
		return failure.MissingField{
			Description: failure.NewDescription("required field is missing"),
			Field:       first.Field(),
		}
	default:
		return failure.InvalidFormat{
			Description: failure.NewDescription(first.Param(),
				failure.WithString("field", first.Field()),
			),
		}
	}
}

func (v *Validator) balance(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Balance)

	if req.AccountID == nil {
		missing(sl, failure.FieldAccount)
		return
	}
	if req.AccountID.Address == "" {
		missing(sl, failure.FieldAddress)
		return
	}

	_, err := v.params.DecodeAddress(req.AccountID.Address)
	if err != nil {
		malformed(sl, failure.FieldAddress, fmt.Sprintf("address is not a %s address: %s", v.params.Name, err))
		return
	}
	if req.BlockID != nil {
		checkHash(sl, failure.FieldBlock, req.BlockID.Hash, true)
	}
}

func (v *Validator) block(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Block)

	if !requireBlock(sl, req.BlockID) {
		return
	}

	checkHash(sl, failure.FieldBlock, req.BlockID.Hash, true)
}

func (v *Validator) transaction(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Transaction)

	if !requireBlock(sl, req.BlockID) {
		return
	}
	if !requireTransaction(sl, req.TransactionID) {
		return
	}

	if !checkHash(sl, failure.FieldBlock, req.BlockID.Hash, true) {
		return
	}
	checkHash(sl, failure.FieldTransaction, req.TransactionID.Hash, false)
}

func (v *Validator) submit(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.Submit)

	if req.SignedTransaction == "" {
		missing(sl, failure.FieldSignedTransaction)
		return
	}

	data, err := hex.DecodeString(req.SignedTransaction)
	if err != nil {
		malformed(sl, failure.FieldSignedTransaction, fmt.Sprintf("signed transaction is not hex: %s", err))
		return
	}
	_, err = wire.DecodeTransaction(data)
	if err != nil {
		malformed(sl, failure.FieldSignedTransaction, fmt.Sprintf("signed transaction does not decode: %s", err))
	}
}

func (v *Validator) mempoolTransaction(sl validator.StructLevel) {
	req := sl.Current().Interface().(request.MempoolTransaction)

	if !requireTransaction(sl, req.TransactionID) {
		return
	}

	checkHash(sl, failure.FieldTransaction, req.TransactionID.Hash, false)
}

func requireBlock(sl validator.StructLevel, block *identifier.Block) bool {
	if block == nil {
		missing(sl, failure.FieldBlock)
		return false
	}
	if block.Index == nil {
		missing(sl, failure.FieldBlockIndex)
		return false
	}
	return true
}

func requireTransaction(sl validator.StructLevel, transaction *identifier.Transaction) bool {
	if transaction == nil {
		missing(sl, failure.FieldTransaction)
		return false
	}
	if transaction.Hash == "" {
		missing(sl, failure.FieldTransactionHash)
		return false
	}
	return true
}

// checkHash reports a hash that is not 64 hexadecimal characters. An empty
// hash passes when it is optional.
func checkHash(sl validator.StructLevel, field string, hash string, optional bool) bool {
	if hash == "" && optional {
		return true
	}
	if len(hash) != HexHashSize {
		malformed(sl, field, fmt.Sprintf("hash has wrong length (have: %d, want: %d)", len(hash), HexHashSize))
		return false
	}
	_, err := hex.DecodeString(hash)
	if err != nil {
		malformed(sl, field, fmt.Sprintf("hash is not hex: %s", err))
		return false
	}
	return true
}

func missing(sl validator.StructLevel, field string) {
	sl.ReportError("", field, field, tagMissing, "")
}

func malformed(sl validator.StructLevel, field string, reason string) {
	sl.ReportError("", field, field, tagFormat, reason)
}
