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

// Status implements the /network/status endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkstatus
func (d *Data) Status(ctx echo.Context) error {

	var req request.Status
	err := ctx.Bind(&req)
	if err != nil {
		return convertError(d.log, invalidEncoding(err))
	}

	err = d.config.Check(req.NetworkID)
	if err != nil {
		return convertError(d.log, err)
	}

	current, timestamp, err := d.retrieve.Current()
	if err != nil {
		return convertError(d.log, err)
	}
	genesis, err := d.retrieve.Genesis()
	if err != nil {
		return convertError(d.log, err)
	}
	peers, err := d.retrieve.Peers()
	if err != nil {
		return convertError(d.log, err)
	}

	res := response.Status{
		CurrentBlockID:        current,
		CurrentBlockTimestamp: timestamp.UnixNano() / 1_000_000,
		GenesisBlockID:        genesis,
		Peers:                 peers,
	}

	return ctx.JSON(http.StatusOK, res)
}
