// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package finance_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pv-tvm/finance"
)

// npvAtValuationDate discounts with flow 0 at the valuation date, the
// convention InternalRateOfReturn solves against.
func npvAtValuationDate(rate float64, values []float64) float64 {
	var npv float64
	for k, value := range values {
		npv += value / math.Pow(1+rate, float64(k))
	}
	return npv
}

var _ = Describe("InternalRateOfReturn", func() {
	Context("with an investment followed by growing inflows", func() {
		var series []float64

		BeforeEach(func() {
			series = []float64{-1000, 300, 400, 500, 600}
		})

		It("finds a rate that zeroes the net present value", func() {
			rate, err := finance.InternalRateOfReturn(series, finance.DefaultGuess)
			Expect(err).To(BeNil())
			Expect(npvAtValuationDate(rate, series)).Should(BeNumerically("~", 0, 1e-5))
		})

		It("finds the same root from a different starting guess", func() {
			r1, err := finance.InternalRateOfReturn(series, finance.DefaultGuess)
			Expect(err).To(BeNil())
			r2, err := finance.InternalRateOfReturn(series, 0.35)
			Expect(err).To(BeNil())
			Expect(r2).Should(BeNumerically("~", r1, 1e-6))
		})
	})

	Context("with a single sign change and an even split", func() {
		It("returns a zero rate for break-even flows", func() {
			rate, err := finance.InternalRateOfReturn([]float64{-100, 100}, finance.DefaultGuess)
			Expect(err).To(BeNil())
			Expect(rate).Should(BeNumerically("~", 0, 1e-7))
		})

		It("returns the simple return for a one-period doubling", func() {
			rate, err := finance.InternalRateOfReturn([]float64{-100, 200}, finance.DefaultGuess)
			Expect(err).To(BeNil())
			Expect(rate).Should(BeNumerically("~", 1.0, 1e-6))
		})
	})

	Context("with no sign change in the series", func() {
		It("reports failure instead of hanging", func() {
			rate, err := finance.InternalRateOfReturn([]float64{100, 200, 300}, finance.DefaultGuess)
			Expect(err).To(HaveOccurred())
			Expect(math.IsNaN(rate)).Should(BeTrue())
		})
	})

	Context("with a guess that lands on a degenerate discount factor", func() {
		It("returns ErrZeroDenominator", func() {
			rate, err := finance.InternalRateOfReturn([]float64{-100, 50, 50}, -1.0)
			Expect(err).To(MatchError(finance.ErrZeroDenominator))
			Expect(math.IsNaN(rate)).Should(BeTrue())
		})
	})
})
