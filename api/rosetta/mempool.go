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

package rosetta

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/hsd-rosetta/rosetta/request"
	"github.com/optakt/hsd-rosetta/rosetta/response"
)

// Mempool implements the /mempool endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/MempoolApi.html#mempool
func (d *Data) Mempool(ctx echo.Context) error {

	var req request.Mempool
	err := ctx.Bind(&req)
	if err != nil {
		return convertError(d.log, invalidEncoding(err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return convertError(d.log, err)
	}

	transactionIDs, err := d.retrieve.Mempool()
	if err != nil {
		return convertError(d.log, err)
	}

	res := response.Mempool{
		TransactionIDs: transactionIDs,
	}

	return ctx.JSON(http.StatusOK, res)
}

// MempoolTransaction implements the /mempool/transaction endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/MempoolApi.html#mempooltransaction
func (d *Data) MempoolTransaction(ctx echo.Context) error {

	var req request.MempoolTransaction
	err := ctx.Bind(&req)
	if err != nil {
		return convertError(d.log, invalidEncoding(err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return convertError(d.log, err)
	}

	err = d.validate.Request(req)
	if err != nil {
		return convertError(d.log, err)
	}

	transaction, err := d.retrieve.MempoolTransaction(*req.TransactionID)
	if err != nil {
		return convertError(d.log, err)
	}

	res := response.Transaction{
		Transaction: transaction,
	}

	return ctx.JSON(http.StatusOK, res)
}
