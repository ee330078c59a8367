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

package hns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCovenantType_Unspendable(t *testing.T) {
	tests := []struct {
		typ  CovenantType
		want bool
	}{
		{typ: CovenantNone, want: false},
		{typ: CovenantClaim, want: false},
		{typ: CovenantOpen, want: false},
		{typ: CovenantBid, want: false},
		{typ: CovenantReveal, want: false},
		{typ: CovenantRedeem, want: false},
		{typ: CovenantRegister, want: true},
		{typ: CovenantUpdate, want: true},
		{typ: CovenantRenew, want: true},
		{typ: CovenantTransfer, want: true},
		{typ: CovenantFinalize, want: true},
		{typ: CovenantRevoke, want: true},
		{typ: CovenantType(12), want: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.typ.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.typ.Unspendable())
			assert.Equal(t, test.want, Covenant{Type: test.typ}.Unspendable())
		})
	}
}

func TestCovenantType_String(t *testing.T) {
	assert.Equal(t, "NONE", CovenantNone.String())
	assert.Equal(t, "REGISTER", CovenantRegister.String())
	assert.Equal(t, "REVOKE", CovenantRevoke.String())
	assert.Equal(t, "UNKNOWN", CovenantType(200).String())
}
