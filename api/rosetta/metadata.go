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

	"github.com/optakt/hsd-rosetta/rosetta/object"
	"github.com/optakt/hsd-rosetta/rosetta/request"
	"github.com/optakt/hsd-rosetta/rosetta/response"
)

// Metadata implements the /construction/metadata endpoint of the Rosetta Construction API.
// It returns the hash of the last indexed block, which clients use as a
// reference when building transactions.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionmetadata
func (c *Construction) Metadata(ctx echo.Context) error {

	var req request.Metadata
	err := ctx.Bind(&req)
	if err != nil {
		return convertError(c.log, invalidEncoding(err))
	}

	err = c.config.Check(req.NetworkID)
	if err != nil {
		return convertError(c.log, err)
	}

	current, _, err := c.retrieve.Current()
	if err != nil {
		return convertError(c.log, err)
	}

	res := response.Metadata{
		Metadata: object.Metadata{
			RecentBlockHash: current.Hash,
		},
	}

	return ctx.JSON(http.StatusOK, res)
}
