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

// CovenantType is the action a covenant attaches to an output.
type CovenantType uint8

// Covenant types, in the order of their wire ordinals.
const (
	CovenantNone CovenantType = iota
	CovenantClaim
	CovenantOpen
	CovenantBid
	CovenantReveal
	CovenantRedeem
	CovenantRegister
	CovenantUpdate
	CovenantRenew
	CovenantTransfer
	CovenantFinalize
	CovenantRevoke
)

var covenantNames = [...]string{
	"NONE",
	"CLAIM",
	"OPEN",
	"BID",
	"REVEAL",
	"REDEEM",
	"REGISTER",
	"UPDATE",
	"RENEW",
	"TRANSFER",
	"FINALIZE",
	"REVOKE",
}

func (c CovenantType) String() string {
	if int(c) < len(covenantNames) {
		return covenantNames[c]
	}
	return "UNKNOWN"
}

// Unspendable returns whether coins carrying a covenant of this type are locked
// to a name and must be kept out of transfer operations and balances. This is
// the case for every type from REGISTER to REVOKE inclusive.
func (c CovenantType) Unspendable() bool {
	return c >= CovenantRegister && c <= CovenantRevoke
}

// Covenant is the name-related action attached to an output.
type Covenant struct {
	Type  CovenantType
	Items [][]byte
}

// Unspendable returns whether the covenant locks its output.
func (c Covenant) Unspendable() bool {
	return c.Type.Unspendable()
}
