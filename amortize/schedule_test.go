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

package amortize_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pv-tvm/amortize"
	"github.com/penny-vault/pv-tvm/finance"
)

var _ = Describe("Schedule", func() {
	Context("for a 12-month loan at 1% monthly interest", func() {
		var table *amortize.AmortizationTable

		BeforeEach(func() {
			var err error
			table, err = amortize.Schedule(0.01, 12, 1_000_000, 0, false)
			Expect(err).To(BeNil())
		})

		It("produces one entry per period", func() {
			Expect(table.Entries).To(HaveLen(12))
			Expect(table.Entries[0].Period).To(Equal(1))
			Expect(table.Entries[11].Period).To(Equal(12))
		})

		It("splits every payment into interest plus principal", func() {
			for _, entry := range table.Entries {
				Expect(entry.Interest + entry.Principal).Should(BeNumerically("~", entry.Payment, 1e-9))
			}
		})

		It("charges first-period interest on the full principal", func() {
			Expect(table.Entries[0].Interest).Should(BeNumerically("~", -10_000, 1e-6))
		})

		It("retires the balance with the final payment", func() {
			Expect(table.Entries[11].Balance).Should(BeNumerically("~", 0, 1e-6))
		})

		It("totals payments, interest and principal consistently", func() {
			pmt := finance.Payment(0.01, 12, 1_000_000, 0, false)
			Expect(table.TotalPaid).Should(BeNumerically("~", 12*pmt, 1e-6))
			Expect(table.TotalInterest + table.TotalPrincipal).Should(BeNumerically("~", table.TotalPaid, 1e-6))
			Expect(table.TotalPrincipal).Should(BeNumerically("~", -1_000_000, 1e-6))
		})
	})

	Context("for a zero-rate loan", func() {
		It("splits the principal evenly with no interest", func() {
			table, err := amortize.Schedule(0, 10, 100_000, 0, false)
			Expect(err).To(BeNil())
			Expect(table.Entries).To(HaveLen(10))
			for _, entry := range table.Entries {
				Expect(entry.Payment).Should(BeNumerically("~", -10_000, 1e-9))
				Expect(entry.Interest).Should(BeNumerically("~", 0, 1e-9))
			}
			Expect(table.TotalInterest).Should(BeNumerically("~", 0, 1e-9))
		})
	})

	Context("with a balloon future value", func() {
		It("leaves the balloon outstanding at the end of the term", func() {
			table, err := amortize.Schedule(0.01, 12, 1_000_000, -100_000, false)
			Expect(err).To(BeNil())
			Expect(table.Entries[11].Balance).Should(BeNumerically("~", -100_000, 1e-6))
		})
	})

	Context("with an invalid term", func() {
		It("rejects zero periods", func() {
			_, err := amortize.Schedule(0.01, 0, 1_000_000, 0, false)
			Expect(err).To(MatchError(amortize.ErrInvalidPeriods))
		})
	})
})

var _ = Describe("Table", func() {
	It("renders a row per period with headers and totals", func() {
		table, err := amortize.Schedule(0.01, 3, 3_000, 0, false)
		Expect(err).To(BeNil())

		rendered := table.Table()
		Expect(rendered).To(ContainSubstring("PERIOD"))
		Expect(rendered).To(ContainSubstring("BALANCE"))
		Expect(rendered).To(ContainSubstring("TOTAL"))
		Expect(strings.Count(rendered, "\n")).Should(BeNumerically(">=", 5))
	})
})
