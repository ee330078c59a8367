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
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/hsd-rosetta/rosetta/configuration"
	"github.com/optakt/hsd-rosetta/rosetta/failure"
	"github.com/optakt/hsd-rosetta/rosetta/meta"
	"github.com/optakt/hsd-rosetta/testing/mocks"
)

func TestConvertError(t *testing.T) {
	desc := failure.NewDescription("reason", failure.WithString("key", "value"))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  meta.ErrorDefinition
	}{
		{
			name:       "missing network",
			err:        failure.MissingField{Description: desc, Field: failure.FieldNetwork},
			wantStatus: http.StatusBadRequest,
			wantError:  configuration.ErrorNetworkRequired,
		},
		{
			name:       "missing block",
			err:        failure.MissingField{Description: desc, Field: failure.FieldBlock},
			wantStatus: http.StatusBadRequest,
			wantError:  configuration.ErrorBlockRequired,
		},
		{
			name:       "missing field without dedicated code",
			err:        failure.MissingField{Description: desc, Field: "currency"},
			wantStatus: http.StatusBadRequest,
			wantError:  configuration.ErrorInvalidFormat,
		},
		{
			name:       "wrapped invalid format",
			err:        fmt.Errorf("could not validate: %w", failure.InvalidFormat{Description: desc}),
			wantStatus: http.StatusBadRequest,
			wantError:  configuration.ErrorInvalidFormat,
		},
		{
			name:       "block mismatch",
			err:        failure.BlockMismatch{Description: desc, Index: 1, Hash: "ab"},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  configuration.ErrorBlockHashMismatch,
		},
		{
			name:       "unsupported query",
			err:        failure.UnsupportedQuery{Description: desc},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  configuration.ErrorQueryNotSupported,
		},
		{
			name:       "unknown view",
			err:        failure.UnknownView{Description: desc, Index: 3},
			wantStatus: http.StatusNotFound,
			wantError:  configuration.ErrorViewNotFound,
		},
		{
			name:       "relay failure",
			err:        failure.RelayFailure{Description: desc},
			wantStatus: http.StatusInternalServerError,
			wantError:  configuration.ErrorTxRelay,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := convertError(mocks.NoopLogger, test.err)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, test.wantStatus, httpErr.Code)

			rosErr, ok := httpErr.Message.(Error)
			require.True(t, ok)
			assert.Equal(t, test.wantError, rosErr.ErrorDefinition)
			assert.Equal(t, "reason", rosErr.Description)
			assert.Equal(t, "value", rosErr.Details["key"])
		})
	}

	t.Run("unknown error is not exposed", func(t *testing.T) {
		t.Parallel()

		err := convertError(mocks.NoopLogger, mocks.GenericError)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Code)

		rosErr, ok := httpErr.Message.(Error)
		require.True(t, ok)
		assert.Equal(t, configuration.ErrorUnknown, rosErr.ErrorDefinition)
		assert.Empty(t, rosErr.Details)
	})
}
