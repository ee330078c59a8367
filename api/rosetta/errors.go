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
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/optakt/hsd-rosetta/rosetta/configuration"
	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/meta"
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	meta.ErrorDefinition
	Description string                 `json:"description,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Each missing field has its own error code.
var requiredErrors = map[string]meta.ErrorDefinition{
	failure.FieldNetwork:           configuration.ErrorNetworkRequired,
	failure.FieldAccount:           configuration.ErrorAccountRequired,
	failure.FieldAddress:           configuration.ErrorAddressRequired,
	failure.FieldBlock:             configuration.ErrorBlockRequired,
	failure.FieldBlockIndex:        configuration.ErrorBlockHeightRequired,
	failure.FieldTransaction:       configuration.ErrorTxRequired,
	failure.FieldTransactionHash:   configuration.ErrorTxHashRequired,
	failure.FieldSignedTransaction: configuration.ErrorSignedTxRequired,
}

// invalidEncoding wraps an error from binding the request body.
func invalidEncoding(err error) error {
	return failure.InvalidFormat{
		Description: failure.NewDescription("request body is not valid JSON", failure.WithErr(err)),
	}
}

// convertError maps a failure onto the Rosetta error it stands for, along with
// the matching HTTP status code. Errors that are not failures are logged and
// hidden behind the unknown error, so that internals do not leak to clients.
func convertError(log zerolog.Logger, err error) error {

	var (
		missingField       failure.MissingField
		invalidFormat      failure.InvalidFormat
		invalidBlockchain  failure.InvalidBlockchain
		invalidNetwork     failure.InvalidNetwork
		blockMismatch      failure.BlockMismatch
		unsupportedQuery   failure.UnsupportedQuery
		unknownBlock       failure.UnknownBlock
		unknownTransaction failure.UnknownTransaction
		unknownView        failure.UnknownView
		relayFailure       failure.RelayFailure
	)

	switch {

	case errors.As(err, &missingField):
		definition, ok := requiredErrors[missingField.Field]
		if !ok {
			definition = configuration.ErrorInvalidFormat
		}
		return rosettaError(http.StatusBadRequest, definition, missingField.Description,
			failure.WithString("field", missingField.Field),
		)

	case errors.As(err, &invalidFormat):
		return rosettaError(http.StatusBadRequest, configuration.ErrorInvalidFormat, invalidFormat.Description)

	case errors.As(err, &invalidBlockchain):
		return rosettaError(http.StatusUnprocessableEntity, configuration.ErrorInvalidBlockchain, invalidBlockchain.Description,
			failure.WithString("blockchain", invalidBlockchain.Blockchain),
		)

	case errors.As(err, &invalidNetwork):
		return rosettaError(http.StatusUnprocessableEntity, configuration.ErrorInvalidNetwork, invalidNetwork.Description,
			failure.WithString("network", invalidNetwork.Network),
		)

	case errors.As(err, &blockMismatch):
		return rosettaError(http.StatusUnprocessableEntity, configuration.ErrorBlockHashMismatch, blockMismatch.Description,
			failure.WithUint64("index", blockMismatch.Index),
			failure.WithString("hash", blockMismatch.Hash),
		)

	case errors.As(err, &unsupportedQuery):
		return rosettaError(http.StatusUnprocessableEntity, configuration.ErrorQueryNotSupported, unsupportedQuery.Description)

	case errors.As(err, &unknownBlock):
		return rosettaError(http.StatusNotFound, configuration.ErrorBlockNotFound, unknownBlock.Description,
			failure.WithUint64("index", unknownBlock.Index),
			failure.WithString("hash", unknownBlock.Hash),
		)

	case errors.As(err, &unknownTransaction):
		return rosettaError(http.StatusNotFound, configuration.ErrorTxNotFound, unknownTransaction.Description,
			failure.WithString("hash", unknownTransaction.Hash),
		)

	case errors.As(err, &unknownView):
		return rosettaError(http.StatusNotFound, configuration.ErrorViewNotFound, unknownView.Description,
			failure.WithUint64("index", unknownView.Index),
		)

	case errors.As(err, &relayFailure):
		return rosettaError(http.StatusInternalServerError, configuration.ErrorTxRelay, relayFailure.Description)

	default:
		log.Error().Err(err).Msg("unexpected error while handling request")
		return rosettaError(http.StatusInternalServerError, configuration.ErrorUnknown, failure.NewDescription("internal error"))
	}
}

func rosettaError(status int, definition meta.ErrorDefinition, description failure.Description, extra ...failure.FieldFunc) *echo.HTTPError {

	fields := make(failure.Fields, 0, len(description.Fields)+len(extra))
	fields = append(fields, description.Fields...)
	for _, field := range extra {
		field(&fields)
	}

	var details map[string]interface{}
	fields.Iterate(func(key string, val interface{}) {
		if val == "" {
			return
		}
		if details == nil {
			details = make(map[string]interface{})
		}
		details[key] = val
	})

	e := Error{
		ErrorDefinition: definition,
		Description:     description.Text,
		Details:         details,
	}

	return echo.NewHTTPError(status, e)
}
