// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package finance

// NetPresentValue discounts a series of periodic cash flows at the
// given rate. Following the spreadsheet NPV convention every flow is
// one period out: cashflows[0] is discounted by (1+rate), cashflows[1]
// by (1+rate)^2, and so on. This differs from the convention used by
// InternalRateOfReturn, where flow 0 is at the valuation date and is
// not discounted.
//
// No sign convention is enforced; inflows and outflows only need to
// carry opposite signs within one series.
func NetPresentValue(rate float64, cashflows []float64) float64 {
	var npv float64
	discount := 1 + rate
	for _, cf := range cashflows {
		npv += cf / discount
		discount *= 1 + rate
	}
	return npv
}
