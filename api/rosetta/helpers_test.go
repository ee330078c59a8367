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

package rosetta_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/api/rosetta"
	"github.com/optakt/hsd-rosetta/rosetta/identifier"
	"github.com/optakt/hsd-rosetta/rosetta/object"
	"github.com/optakt/hsd-rosetta/testing/mocks"
)

const invalidJSON = `{"network_identifier": `

// setupRecorder creates an echo context around a POST request whose body is
// the JSON encoding of the payload, or the payload itself for raw strings.
func setupRecorder(t *testing.T, endpoint string, payload interface{}) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	return rec, ctx
}

// assertError checks that the handler returned the Rosetta error with the
// given code, with the given HTTP status.
func assertError(t *testing.T, err error, status int, code uint) rosetta.Error {
	t.Helper()

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Code)

	rosErr, ok := httpErr.Message.(rosetta.Error)
	require.True(t, ok)
	assert.Equal(t, code, rosErr.Code)

	return rosErr
}

// failingRetriever fails the test on any call, for requests that must be
// rejected before anything is looked up.
func failingRetriever(t *testing.T) *mocks.Retriever {
	t.Helper()

	retrieve := mocks.BaselineRetriever(t)
	retrieve.CurrentFunc = func() (identifier.Block, time.Time, error) {
		t.Fatal("unexpected current block lookup")
		return identifier.Block{}, time.Time{}, nil
	}
	retrieve.GenesisFunc = func() (identifier.Block, error) {
		t.Fatal("unexpected genesis lookup")
		return identifier.Block{}, nil
	}
	retrieve.PeersFunc = func() ([]identifier.Peer, error) {
		t.Fatal("unexpected peers lookup")
		return nil, nil
	}
	retrieve.AgentFunc = func() (string, error) {
		t.Fatal("unexpected agent lookup")
		return "", nil
	}
	retrieve.BalanceFunc = func(identifier.Account, *identifier.Block) (identifier.Block, []object.Amount, error) {
		t.Fatal("unexpected balance lookup")
		return identifier.Block{}, nil, nil
	}
	retrieve.BlockFunc = func(identifier.Block) (*object.Block, error) {
		t.Fatal("unexpected block lookup")
		return nil, nil
	}
	retrieve.TransactionFunc = func(identifier.Block, identifier.Transaction) (*object.Transaction, error) {
		t.Fatal("unexpected transaction lookup")
		return nil, nil
	}
	retrieve.MempoolFunc = func() ([]identifier.Transaction, error) {
		t.Fatal("unexpected mempool lookup")
		return nil, nil
	}
	retrieve.MempoolTransactionFunc = func(identifier.Transaction) (*object.Transaction, error) {
		t.Fatal("unexpected mempool transaction lookup")
		return nil, nil
	}
	retrieve.SubmitFunc = func(string) (identifier.Transaction, error) {
		t.Fatal("unexpected submission")
		return identifier.Transaction{}, nil
	}

	return retrieve
}
