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

package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/penny-vault/pv-tvm/handler"
)

// SetupRoutes setup router api
func SetupRoutes(app *fiber.App) {
	api := app.Group("/v1")
	api.Get("/", handler.Ping)

	// Annuity closed forms
	annuity := api.Group("/annuity")
	annuity.Post("/payment", handler.CalcPayment)
	annuity.Post("/interest", handler.CalcInterestPortion)
	annuity.Post("/principal", handler.CalcPrincipalPortion)
	annuity.Post("/fv", handler.CalcFutureValue)
	annuity.Post("/pv", handler.CalcPresentValue)
	annuity.Post("/nper", handler.CalcPeriodCount)
	annuity.Post("/schedule", handler.CalcSchedule)

	// Cash-flow series
	cashflow := api.Group("/cashflow")
	cashflow.Post("/npv", handler.CalcNetPresentValue)
	cashflow.Post("/irr", handler.CalcInternalRateOfReturn)
}
