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

package mocks

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/meta"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericHeight = uint64(42)

	GenericParams = hns.Params{Name: hns.HandshakeRegtest, HRP: "rs"}

	GenericNetwork = identifier.Network{
		Blockchain: hns.HandshakeBlockchain,
		Network:    hns.HandshakeRegtest,
	}

	GenericCurrency = identifier.Currency{
		Symbol:   hns.HandshakeSymbol,
		Decimals: hns.HandshakeDecimals,
		Metadata: identifier.CurrencyMetadata{
			Issuer: hns.HandshakeIssuer,
		},
	}

	GenericWitness = hns.Witness{
		{0x30, 0x44, 0x02, 0x20},
		{0x02, 0x8a, 0x1b},
	}

	GenericCoinbase = &hns.Transaction{
		Hash:    GenericHash(100),
		Version: 0,
		Inputs: []hns.Input{
			{
				Prevout:  hns.Outpoint{Hash: hns.ZeroHash, Index: 0xffffffff},
				Sequence: 0xffffffff,
				Witness:  hns.Witness{{0x2a}},
			},
		},
		Outputs: []hns.Output{
			{Value: 2000_000_000, Address: GenericAddress(0)},
		},
		LockTime: uint32(GenericHeight),
		Size:     120,
	}

	GenericCoin = hns.Coin{
		Prevout: hns.Outpoint{Hash: GenericHash(200), Index: 1},
		Height:  GenericHeight - 1,
		Value:   5000,
		Address: GenericAddress(0),
	}

	// GenericTransaction spends GenericCoin into two outputs, leaving a fee
	// of 100.
	GenericTransaction = &hns.Transaction{
		Hash:    GenericHash(101),
		Version: 0,
		Inputs: []hns.Input{
			{
				Prevout:  GenericCoin.Prevout,
				Sequence: 0xffffffff,
				Witness:  GenericWitness,
			},
		},
		Outputs: []hns.Output{
			{Value: 3000, Address: GenericAddress(1)},
			{Value: 1900, Address: GenericAddress(2)},
		},
		LockTime: 0,
		Size:     240,
	}

	GenericView = hns.NewView(GenericCoin)

	GenericHeader = hns.Header{
		Hash:       GenericHash(1),
		PrevBlock:  GenericHash(0),
		MerkleRoot: GenericHash(2),
		Time:       1_600_000_000,
		Bits:       0x1d00ffff,
		Nonce:      7,
	}

	GenericBlock = &hns.Block{
		Header:       GenericHeader,
		Transactions: []*hns.Transaction{GenericCoinbase, GenericTransaction},
	}

	GenericTip = hns.Tip{
		Height: GenericHeight,
		Hash:   GenericHeader.Hash,
		Time:   GenericHeader.Time,
	}

	GenericPeers = []hns.Peer{
		{Host: "127.0.0.1:14038"},
		{Host: "10.0.0.2:14038"},
	}

	GenericAgent = "/hsd:3.0.1/"

	GenericBlockID = identifier.NewBlock(GenericHeight, GenericHeader.Hash.String())

	GenericTransactionID = identifier.Transaction{Hash: GenericTransaction.Hash.String()}

	GenericAccount = identifier.Account{Address: GenericEncodedAddress(0)}

	GenericVersion = meta.Version{
		RosettaVersion:    "1.3.1",
		NodeVersion:       GenericAgent,
		MiddlewareVersion: "0.0.1",
	}

	GenericErrors = []meta.ErrorDefinition{
		{Code: 1, Message: "first", Retriable: true},
		{Code: 2, Message: "second", Retriable: false},
	}
)

// GenericHash returns a deterministic hash whose bytes all hold the index.
func GenericHash(index int) hns.Hash {
	var hash hns.Hash
	for i := range hash {
		hash[i] = byte(index)
	}
	return hash
}

// GenericAddress returns a deterministic version 0 address with a 20 byte
// hash derived from the index.
func GenericAddress(index int) hns.Address {
	hash := make([]byte, 20)
	for i := range hash {
		hash[i] = byte(index + 1)
	}
	return hns.Address{Version: 0, Hash: hash}
}

// GenericEncodedAddress returns the regtest string form of GenericAddress.
func GenericEncodedAddress(index int) string {
	address, err := GenericParams.EncodeAddress(GenericAddress(index))
	if err != nil {
		panic(err)
	}
	return address
}

// GenericOperations returns the given number of sequential credit operations.
func GenericOperations(number int) []object.Operation {
	operations := make([]object.Operation, 0, number)
	for i := 0; i < number; i++ {
		operation := object.Operation{
			ID:      identifier.Operation{Index: uint(i)},
			Type:    "TRANSFER",
			Status:  "SUCCESS",
			Account: identifier.Account{Address: GenericEncodedAddress(i)},
			Amount: object.Amount{
				Value:    "1000",
				Currency: GenericCurrency,
			},
			Metadata: map[string]string{},
		}
		operations = append(operations, operation)
	}
	return operations
}

// GenericObjectTransaction returns a projected transaction with two operations.
func GenericObjectTransaction() *object.Transaction {
	return &object.Transaction{
		ID:         GenericTransactionID,
		Operations: GenericOperations(2),
		Metadata: object.TransactionMetadata{
			Size:     GenericTransaction.Size,
			LockTime: GenericTransaction.LockTime,
		},
	}
}

// GenericObjectBlock returns a projected block holding one transaction.
func GenericObjectBlock() *object.Block {
	return &object.Block{
		ID:           GenericBlockID,
		ParentID:     identifier.NewBlock(GenericHeight-1, GenericHeader.PrevBlock.String()),
		Timestamp:    int64(GenericHeader.Time) * 1000,
		Transactions: []object.Transaction{*GenericObjectTransaction()},
		Metadata: object.BlockMetadata{
			TransactionsRoot: GenericHeader.MerkleRoot.String(),
			Difficulty:       1,
		},
	}
}
