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

package retriever

// Difficulty expands the compact target of a block header into the
// floating point difficulty relative to the lowest target.
func Difficulty(bits uint32) float64 {

	mantissa := bits & 0x00ffffff
	if mantissa == 0 {
		return 0
	}

	shift := (bits >> 24) & 0xff
	difficulty := float64(0x0000ffff) / float64(mantissa)
	for shift < 29 {
		difficulty *= 256
		shift++
	}
	for shift > 29 {
		difficulty /= 256
		shift--
	}

	return difficulty
}
