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

package meta

// ErrorDefinition is the stable part of a Rosetta error: its code, its message
// and whether the same request might succeed later.
type ErrorDefinition struct {
	Code      uint   `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
}
