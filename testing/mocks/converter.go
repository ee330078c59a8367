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
	"testing"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/object"
)

type Converter struct {
	OperationsFunc func(tx *hns.Transaction, view hns.View) ([]object.Operation, error)
}

func BaselineConverter(t *testing.T) *Converter {
	t.Helper()

	c := Converter{
		OperationsFunc: func(tx *hns.Transaction, view hns.View) ([]object.Operation, error) {
			return GenericOperations(2), nil
		},
	}

	return &c
}

func (c *Converter) Operations(tx *hns.Transaction, view hns.View) ([]object.Operation, error) {
	return c.OperationsFunc(tx, view)
}
