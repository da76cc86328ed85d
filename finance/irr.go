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

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultGuess is the starting rate for InternalRateOfReturn when
	// the caller has no better estimate.
	DefaultGuess = 0.10

	irrMaxIterations = 20
	irrTolerance     = 1e-7
)

var (
	// ErrDidNotConverge indicates the iteration budget was exhausted
	// before the rate estimate stabilized.
	ErrDidNotConverge = errors.New("did not converge")

	// ErrZeroDerivative indicates the solver reached a stationary
	// point of the NPV curve and cannot take another step.
	ErrZeroDerivative = errors.New("zero derivative")

	// ErrZeroDenominator indicates the rate estimate reached -1,
	// where the discount factor is undefined.
	ErrZeroDenominator = errors.New("zero denominator")
)

// InternalRateOfReturn finds the rate at which the net present value
// of the cash-flow series is zero, using Newton-Raphson iteration.
// values[0] is the flow at the valuation date and is not discounted;
// values[k] is discounted by (1+rate)^k. Equivalent to the spreadsheet
// IRR function.
//
// The NPV and its derivative are accumulated in a single pass so both
// are evaluated at exactly the same rate. Iteration stops when two
// successive estimates differ by no more than 1e-7. There is no
// fallback solver: a series with no root, or with several roots that
// bounce the iteration around, returns NaN with a non-nil error and
// the caller may retry with a different guess.
//
// InternalRateOfReturn panics if values is empty.
func InternalRateOfReturn(values []float64, guess float64) (float64, error) {
	rate := guess

	for i := 0; i < irrMaxIterations; i++ {
		factor := 1 + rate
		denominator := factor
		if denominator == 0 {
			return math.NaN(), ErrZeroDenominator
		}

		npv := values[0]
		var derivative float64
		for k := 1; k < len(values); k++ {
			value := values[k]
			npv += value / denominator
			denominator *= factor
			derivative -= float64(k) * value / denominator
		}

		if derivative == 0 {
			return math.NaN(), ErrZeroDerivative
		}

		next := rate - npv/derivative
		if math.Abs(next-rate) <= irrTolerance {
			return next, nil
		}

		rate = next
	}

	log.Debug().Float64("Guess", guess).Int("MaxIterations", irrMaxIterations).Msg("irr iteration budget exhausted")
	return math.NaN(), ErrDidNotConverge
}
