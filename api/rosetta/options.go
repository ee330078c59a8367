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

// Options implements the /network/options endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkoptions
func (d *Data) Options(ctx echo.Context) error {

	var req request.Options
	err := ctx.Bind(&req)
	if err != nil {
		return convertError(d.log, invalidEncoding(err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return convertError(d.log, err)
	}

	agent, err := d.retrieve.Agent()
	if err != nil {
		return convertError(d.log, err)
	}

	version := d.config.Version()
	version.NodeVersion = agent

	// Balances are only known for the current coin set, and coins created by
	// mempool transactions are not tracked.
	res := response.Options{
		Version: version,
		Allow: response.OptionsAllow{
			OperationStatuses:       d.config.Statuses(),
			OperationTypes:          d.config.Operations(),
			Errors:                  d.config.Errors(),
			HistoricalBalanceLookup: false,
			MempoolCoins:            false,
		},
	}

	return ctx.JSON(http.StatusOK, res)
}
