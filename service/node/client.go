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

package node

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/rs/zerolog"

	"github.com/optakt/hsd-rosetta/models/hns"
)

// Client wraps the JSON-RPC interface of an hsd full node.
type Client struct {
	log zerolog.Logger
	rpc Requester
}

// NewClient creates a client that sends its requests through the given requester.
func NewClient(log zerolog.Logger, rpc Requester) *Client {

	c := Client{
		log: log.With().Str("component", "node_client").Logger(),
		rpc: rpc,
	}

	return &c
}

// BlockCount returns the height of the best block known to the node.
func (c *Client) BlockCount() (uint64, error) {
	var count uint64
	err := c.call("getblockcount", &count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// BlockHash returns the hash of the block at the given height of the best chain.
func (c *Client) BlockHash(height uint64) (hns.Hash, error) {
	var hash string
	err := c.call("getblockhash", &hash, height)
	if err != nil {
		return hns.ZeroHash, err
	}
	return hns.HashFromString(hash)
}

// RawBlock returns the serialized block with the given hash.
func (c *Client) RawBlock(hash hns.Hash) ([]byte, error) {
	var data string
	err := c.call("getblock", &data, hash.String(), false)
	if err != nil {
		return nil, err
	}
	return decodeHex(data)
}

// RawMempool returns the hashes of the transactions in the mempool, in the
// order the node lists them.
func (c *Client) RawMempool() ([]hns.Hash, error) {
	var list []string
	err := c.call("getrawmempool", &list, false)
	if err != nil {
		return nil, err
	}
	hashes := make([]hns.Hash, 0, len(list))
	for _, entry := range list {
		hash, err := hns.HashFromString(entry)
		if err != nil {
			return nil, fmt.Errorf("could not parse mempool hash (%s): %w", entry, err)
		}
		hashes = append(hashes, hash)
	}
	return hashes, nil
}

// RawTransaction returns the serialized transaction with the given hash.
func (c *Client) RawTransaction(hash hns.Hash) ([]byte, error) {
	var data string
	err := c.call("getrawtransaction", &data, hash.String(), false)
	if err != nil {
		return nil, err
	}
	return decodeHex(data)
}

// Relay submits a serialized transaction to the node and returns the hash the
// node reports for it.
func (c *Client) Relay(data []byte) (hns.Hash, error) {
	var hash string
	err := c.call("sendrawtransaction", &hash, hex.EncodeToString(data))
	if err != nil {
		return hns.ZeroHash, err
	}
	return hns.HashFromString(hash)
}

// Peers returns the peers the node is connected to. Brontide peers are
// listed by the node as `key@host`, and only the host is kept.
func (c *Client) Peers() ([]hns.Peer, error) {
	var infos []struct {
		Addr     string `json:"addr"`
		ConnTime int64  `json:"conntime"`
		Version  uint32 `json:"version"`
	}
	err := c.call("getpeerinfo", &infos)
	if err != nil {
		return nil, err
	}
	peers := make([]hns.Peer, 0, len(infos))
	for _, info := range infos {
		// Peers that are still dialing have neither a connection time nor a
		// negotiated version.
		if info.ConnTime == 0 && info.Version == 0 {
			continue
		}
		host := info.Addr
		if i := strings.LastIndexByte(host, '@'); i >= 0 {
			host = host[i+1:]
		}
		peers = append(peers, hns.Peer{Host: host})
	}
	return peers, nil
}

// Agent returns the user agent of the node.
func (c *Client) Agent() (string, error) {
	var info struct {
		Subversion string `json:"subversion"`
	}
	err := c.call("getnetworkinfo", &info)
	if err != nil {
		return "", err
	}
	return info.Subversion, nil
}

func (c *Client) call(method string, result interface{}, params ...interface{}) error {
	raws := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		raw, err := json.Marshal(param)
		if err != nil {
			return fmt.Errorf("could not encode parameter (method: %s): %w", method, err)
		}
		raws = append(raws, raw)
	}

	c.log.Trace().Str("method", method).Int("params", len(raws)).Msg("sending request to node")

	res, err := c.rpc.RawRequest(method, raws)
	var rpcErr *btcjson.RPCError
	if errors.As(err, &rpcErr) && notFound(rpcErr.Code) {
		return fmt.Errorf("%w: %s (method: %s)", hns.ErrNotFound, rpcErr.Message, method)
	}
	if err != nil {
		return fmt.Errorf("could not execute request (method: %s): %w", method, err)
	}
	if len(res) == 0 || string(res) == "null" {
		return fmt.Errorf("%w: empty result (method: %s)", hns.ErrNotFound, method)
	}

	err = json.Unmarshal(res, result)
	if err != nil {
		return fmt.Errorf("could not decode result (method: %s): %w", method, err)
	}

	return nil
}

func notFound(code btcjson.RPCErrorCode) bool {
	return code == btcjson.ErrRPCInvalidAddressOrKey || code == btcjson.ErrRPCInvalidParameter
}

func decodeHex(data string) ([]byte, error) {
	raw, err := hex.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("could not decode hex data: %w", err)
	}
	return raw, nil
}
