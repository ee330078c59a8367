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
	"github.com/rs/zerolog"
)

// Construction implements the subset of the Rosetta Construction API that an
// online node-backed middleware serves: metadata and submission.
// See https://www.rosetta-api.org/docs/construction_api_introduction.html
type Construction struct {
	log      zerolog.Logger
	config   Configuration
	validate Validator
	retrieve Retriever
}

// NewConstruction creates a new instance of the Construction API.
func NewConstruction(log zerolog.Logger, config Configuration, validate Validator, retrieve Retriever) *Construction {

	c := Construction{
		log:      log.With().Str("component", "rosetta_construction").Logger(),
		config:   config,
		validate: validate,
		retrieve: retrieve,
	}

	return &c
}
