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
	"github.com/go-playground/validator/v10"

	"github.com/optakt/hsd-rosetta/models/hns"
	"github.com/optakt/hsd-rosetta/rosetta/request"
)

// Validator checks the endpoint specific fields of Rosetta requests. The
// network identifier is checked separately by the configuration.
type Validator struct {
	params   hns.Params
	validate *validator.Validate
}

// New creates a validator that decodes addresses with the given network
// parameters.
func New(params hns.Params) *Validator {

	v := Validator{
		params: params,
	}

	// Each request type gets a single struct level validation, which reports
	// at most one error, so the first failure is always the one returned.
	validate := validator.New()
	validate.RegisterStructValidation(v.balance, request.Balance{})
	validate.RegisterStructValidation(v.block, request.Block{})
	validate.RegisterStructValidation(v.transaction, request.Transaction{})
	validate.RegisterStructValidation(v.submit, request.Submit{})
	validate.RegisterStructValidation(v.mempoolTransaction, request.MempoolTransaction{})

	v.validate = validate

	return &v
}
