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

// Package amortize builds period-by-period amortization schedules from
// the closed-form annuity functions in the finance package.
package amortize

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/penny-vault/pv-tvm/finance"
)

// ErrInvalidPeriods indicates a schedule was requested for fewer than
// one period.
var ErrInvalidPeriods = errors.New("periods must be at least 1")

// Entry is one row of an amortization schedule. Payment, Interest and
// Principal carry the spreadsheet sign convention: amounts paid out
// are negative. Payment equals Interest plus Principal for every row.
type Entry struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationTable is a complete payment schedule plus summary totals.
type AmortizationTable struct {
	Rate         float64  `json:"rate"`
	Periods      int      `json:"periods"`
	PresentValue float64  `json:"presentValue"`
	FutureValue  float64  `json:"futureValue"`
	DueAtStart   bool     `json:"dueAtStart"`
	Entries      []*Entry `json:"entries"`

	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPrincipal float64 `json:"totalPrincipal"`
}

// Schedule computes the full amortization table for a fixed-payment
// loan or annuity. Balance on each row is the value of the position
// after that period's payment in the FutureValue sign convention; the
// final balance equals futureValue to floating-point tolerance.
func Schedule(rate float64, periods int, presentValue, futureValue float64, dueAtStart bool) (*AmortizationTable, error) {
	if periods < 1 {
		return nil, ErrInvalidPeriods
	}

	pmt := finance.Payment(rate, periods, presentValue, futureValue, dueAtStart)

	entries := make([]*Entry, 0, periods)
	payments := make([]float64, periods)
	interest := make([]float64, periods)
	principal := make([]float64, periods)

	for period := 1; period <= periods; period++ {
		ipmt := finance.InterestPortion(rate, period, periods, presentValue, futureValue, dueAtStart)
		ppmt := finance.PrincipalPortion(rate, period, periods, presentValue, futureValue, dueAtStart)

		payments[period-1] = pmt
		interest[period-1] = ipmt
		principal[period-1] = ppmt

		entries = append(entries, &Entry{
			Period:    period,
			Payment:   pmt,
			Interest:  ipmt,
			Principal: ppmt,
			Balance:   finance.FutureValue(rate, float64(period), pmt, presentValue, dueAtStart),
		})
	}

	return &AmortizationTable{
		Rate:           rate,
		Periods:        periods,
		PresentValue:   presentValue,
		FutureValue:    futureValue,
		DueAtStart:     dueAtStart,
		Entries:        entries,
		TotalPaid:      floats.Sum(payments),
		TotalInterest:  floats.Sum(interest),
		TotalPrincipal: floats.Sum(principal),
	}, nil
}
