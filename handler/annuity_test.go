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

package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pv-tvm/amortize"
	"github.com/penny-vault/pv-tvm/finance"
	"github.com/penny-vault/pv-tvm/handler"
	"github.com/penny-vault/pv-tvm/router"
)

func postJSON(app *fiber.App, path, body string) (*http.Response, []byte) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	Expect(err).To(BeNil())

	raw, err := io.ReadAll(resp.Body)
	Expect(err).To(BeNil())
	return resp, raw
}

var _ = Describe("Annuity endpoints", func() {
	var app *fiber.App

	BeforeEach(func() {
		app = fiber.New()
		router.SetupRoutes(app)
	})

	Describe("POST /v1/annuity/payment", func() {
		It("computes the periodic payment", func() {
			resp, raw := postJSON(app, "/v1/annuity/payment", `{"rate":0.01,"periods":12,"presentValue":1000000}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var out handler.AmountResponse
			Expect(json.Unmarshal(raw, &out)).To(Succeed())
			Expect(out.Amount).Should(BeNumerically("~", finance.Payment(0.01, 12, 1_000_000, 0, false), 1e-9))
		})

		It("rejects a zero-period annuity", func() {
			resp, _ := postJSON(app, "/v1/annuity/payment", `{"rate":0.01,"periods":0,"presentValue":1000000}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})

		It("rejects malformed JSON", func() {
			resp, _ := postJSON(app, "/v1/annuity/payment", `{"rate":`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Describe("POST /v1/annuity/interest", func() {
		It("rejects a period outside the annuity term", func() {
			resp, _ := postJSON(app, "/v1/annuity/interest", `{"rate":0.01,"period":13,"periods":12,"presentValue":1000000}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})

		It("computes the first-period interest", func() {
			resp, raw := postJSON(app, "/v1/annuity/interest", `{"rate":0.01,"period":1,"periods":12,"presentValue":1000000}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var out handler.AmountResponse
			Expect(json.Unmarshal(raw, &out)).To(Succeed())
			Expect(out.Amount).Should(BeNumerically("~", -10_000, 1e-6))
		})
	})

	Describe("POST /v1/annuity/nper", func() {
		It("reports an unprocessable entity when no real solution exists", func() {
			resp, _ := postJSON(app, "/v1/annuity/nper", `{"rate":0.01,"payment":100,"presentValue":0,"futureValue":20000}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusUnprocessableEntity))
		})

		It("computes the term of a loan", func() {
			resp, raw := postJSON(app, "/v1/annuity/nper", `{"rate":0,"payment":-100,"presentValue":1000}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var out handler.PeriodsResponse
			Expect(json.Unmarshal(raw, &out)).To(Succeed())
			Expect(out.Periods).Should(BeNumerically("~", 10.0, 1e-9))
		})
	})

	Describe("POST /v1/annuity/schedule", func() {
		It("returns the full amortization table and serves repeats from cache", func() {
			body := `{"rate":0.01,"periods":12,"presentValue":1000000}`

			resp, raw := postJSON(app, "/v1/annuity/schedule", body)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var table amortize.AmortizationTable
			Expect(json.Unmarshal(raw, &table)).To(Succeed())
			Expect(table.Entries).To(HaveLen(12))

			// second request is a cache hit and must be byte-identical
			resp2, raw2 := postJSON(app, "/v1/annuity/schedule", body)
			Expect(resp2.StatusCode).To(Equal(fiber.StatusOK))
			Expect(raw2).To(Equal(raw))
		})
	})
})

var _ = Describe("Cash-flow endpoints", func() {
	var app *fiber.App

	BeforeEach(func() {
		app = fiber.New()
		router.SetupRoutes(app)
	})

	Describe("POST /v1/cashflow/npv", func() {
		It("discounts every flow by one extra period", func() {
			resp, raw := postJSON(app, "/v1/cashflow/npv", `{"rate":0.1,"cashflows":[100,100,100]}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var out handler.AmountResponse
			Expect(json.Unmarshal(raw, &out)).To(Succeed())
			Expect(out.Amount).Should(BeNumerically("~", 248.685, 1e-3))
		})

		It("rejects an empty series", func() {
			resp, _ := postJSON(app, "/v1/cashflow/npv", `{"rate":0.1,"cashflows":[]}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusBadRequest))
		})
	})

	Describe("POST /v1/cashflow/irr", func() {
		It("solves for the internal rate of return", func() {
			resp, raw := postJSON(app, "/v1/cashflow/irr", `{"cashflows":[-1000,300,400,500,600]}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var out handler.RateResponse
			Expect(json.Unmarshal(raw, &out)).To(Succeed())

			expected, err := finance.InternalRateOfReturn([]float64{-1000, 300, 400, 500, 600}, finance.DefaultGuess)
			Expect(err).To(BeNil())
			Expect(out.Rate).Should(BeNumerically("~", expected, 1e-9))
		})

		It("reports an unprocessable entity when the solver fails", func() {
			resp, _ := postJSON(app, "/v1/cashflow/irr", `{"cashflows":[100,200,300]}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusUnprocessableEntity))
		})

		It("honors the caller's starting guess", func() {
			resp, raw := postJSON(app, "/v1/cashflow/irr", `{"cashflows":[-100,200],"guess":0.5}`)
			Expect(resp.StatusCode).To(Equal(fiber.StatusOK))

			var out handler.RateResponse
			Expect(json.Unmarshal(raw, &out)).To(Succeed())
			Expect(out.Rate).Should(BeNumerically("~", 1.0, 1e-6))
		})
	})
})
