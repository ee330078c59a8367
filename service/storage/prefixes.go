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

package storage

// Key prefixes of the chain index.
const (
	PrefixFirst   = 1
	PrefixLast    = 2
	PrefixGenesis = 3

	PrefixHeader                = 4
	PrefixHeightForBlock        = 5
	PrefixTransactionsForHeight = 6

	PrefixTransaction          = 7
	PrefixHeightForTransaction = 8

	PrefixView            = 9
	PrefixCoin            = 10
	PrefixCoinsForAddress = 11
)
