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
	"encoding/json"
	"testing"
)

type Requester struct {
	RawRequestFunc func(method string, params []json.RawMessage) (json.RawMessage, error)
}

func BaselineRequester(t *testing.T) *Requester {
	t.Helper()

	r := Requester{
		RawRequestFunc: func(method string, params []json.RawMessage) (json.RawMessage, error) {
			return json.RawMessage(`null`), nil
		},
	}

	return &r
}

func (r *Requester) RawRequest(method string, params []json.RawMessage) (json.RawMessage, error) {
	return r.RawRequestFunc(method, params)
}
