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

// Package finance implements the standard time-value-of-money
// calculations found in spreadsheet applications: PMT, IPMT, PPMT, FV,
// PV, NPV, NPER and IRR. Rates are periodic rates expressed as decimal
// fractions (0.01 = 1%). Monetary amounts follow the spreadsheet sign
// convention: money paid out is negative, money received is positive.
//
// Payments may be due at the beginning or the end of each compounding
// period; every formula shifts by a factor of (1 + rate) when payments
// are due at the start.
package finance

import (
	"errors"
	"math"
)

// ErrNoSolution indicates that the annuity equation has no real
// solution for the requested quantity.
var ErrNoSolution = errors.New("no real solution")

// timingFactor is (1 + rate) when payments fall at the start of each
// period and 1 when they fall at the end.
func timingFactor(rate float64, dueAtStart bool) float64 {
	if dueAtStart {
		return 1 + rate
	}
	return 1
}

// Payment computes the fixed periodic payment that amortizes
// presentValue down to futureValue over the given number of periods.
// It is the algebraic inverse of FutureValue solved for the payment
// term. Equivalent to the spreadsheet PMT function.
func Payment(rate float64, periods int, presentValue, futureValue float64, dueAtStart bool) float64 {
	n := float64(periods)
	if rate == 0 {
		// straight-line repayment, no compounding
		return -(presentValue + futureValue) / n
	}

	compound := math.Pow(1+rate, n)
	return -rate * (presentValue*compound + futureValue) /
		(timingFactor(rate, dueAtStart) * (compound - 1))
}

// InterestPortion computes the interest component of the payment due
// at the given period (1-based). The interest is the periodic rate
// applied to the balance outstanding after period-1 payments.
// Equivalent to the spreadsheet IPMT function.
func InterestPortion(rate float64, period, periods int, presentValue, futureValue float64, dueAtStart bool) float64 {
	pmt := Payment(rate, periods, presentValue, futureValue, dueAtStart)
	interest := FutureValue(rate, float64(period-1), pmt, presentValue, dueAtStart) * rate
	if dueAtStart {
		// the first payment is made before any interest accrues
		interest /= 1 + rate
	}
	return interest
}

// PrincipalPortion computes the principal component of the payment due
// at the given period (1-based). Payment, InterestPortion and
// PrincipalPortion satisfy payment = interest + principal exactly for
// identical arguments. Equivalent to the spreadsheet PPMT function.
func PrincipalPortion(rate float64, period, periods int, presentValue, futureValue float64, dueAtStart bool) float64 {
	return Payment(rate, periods, presentValue, futureValue, dueAtStart) -
		InterestPortion(rate, period, periods, presentValue, futureValue, dueAtStart)
}

// FutureValue computes the value after the given number of periods of
// a present amount plus a stream of fixed periodic payments. Periods
// may be fractional. Equivalent to the spreadsheet FV function.
func FutureValue(rate, periods, payment, presentValue float64, dueAtStart bool) float64 {
	if rate == 0 {
		// linear accumulation; the general form divides by rate
		return -(presentValue + periods*payment)
	}

	compound := math.Pow(1+rate, periods)
	return ((1-compound)*timingFactor(rate, dueAtStart)*payment)/rate -
		presentValue*compound
}

// PresentValue computes the current worth of a future amount plus a
// stream of fixed periodic payments. Periods may be fractional.
// Equivalent to the spreadsheet PV function.
func PresentValue(rate, periods, payment, futureValue float64, dueAtStart bool) float64 {
	if rate == 0 {
		return -(periods*payment + futureValue)
	}

	compound := math.Pow(1+rate, periods)
	return (((1-compound)/rate)*timingFactor(rate, dueAtStart)*payment - futureValue) /
		compound
}

// PeriodCount solves the annuity equation for the number of periods
// required to move presentValue to futureValue with the given fixed
// payment. The result is generally fractional. Equivalent to the
// spreadsheet NPER function.
//
// When the log arguments have no positive branch the annuity never
// reaches futureValue and PeriodCount returns NaN with ErrNoSolution.
// A zero payment at zero rate divides by zero and yields ±Inf; callers
// are expected to screen that input.
func PeriodCount(rate, payment, presentValue, futureValue float64, dueAtStart bool) (float64, error) {
	if rate == 0 {
		return -(futureValue + presentValue) / payment, nil
	}

	annuityFactor := timingFactor(rate, dueAtStart) * payment / rate

	// Both log arguments flip sign together; take the branch that
	// keeps them positive.
	var a1, a2 float64
	if annuityFactor-futureValue < 0 {
		a1 = futureValue - annuityFactor
		a2 = -presentValue - annuityFactor
	} else {
		a1 = annuityFactor - futureValue
		a2 = presentValue + annuityFactor
	}

	if a1 <= 0 || a2 <= 0 {
		return math.NaN(), ErrNoSolution
	}

	return (math.Log(a1) - math.Log(a2)) / math.Log(1+rate), nil
}
