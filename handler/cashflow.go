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

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/penny-vault/pv-tvm/finance"
)

// NpvRequest is the request body for the net present value endpoint.
// Cashflows follow the spreadsheet NPV convention: every flow is one
// period out, so cashflows[0] is discounted once.
type NpvRequest struct {
	Rate      float64   `json:"rate"`
	Cashflows []float64 `json:"cashflows"`
}

// IrrRequest is the request body for the internal rate of return
// endpoint. Cashflows[0] falls at the valuation date and is not
// discounted. Guess defaults to 0.10 when omitted.
type IrrRequest struct {
	Cashflows []float64 `json:"cashflows"`
	Guess     *float64  `json:"guess"`
}

// CalcNetPresentValue discounts a cash-flow series at a fixed rate (NPV)
func CalcNetPresentValue(c *fiber.Ctx) error {
	var req NpvRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if len(req.Cashflows) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cashflows must not be empty")
	}

	return c.JSON(AmountResponse{
		Amount: finance.NetPresentValue(req.Rate, req.Cashflows),
	})
}

// CalcInternalRateOfReturn solves for the discount rate that zeroes
// the net present value of a cash-flow series (IRR)
func CalcInternalRateOfReturn(c *fiber.Ctx) error {
	var req IrrRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if len(req.Cashflows) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cashflows must not be empty")
	}

	guess := finance.DefaultGuess
	if req.Guess != nil {
		guess = *req.Guess
	}

	rate, err := finance.InternalRateOfReturn(req.Cashflows, guess)
	if err != nil {
		log.Debug().Err(err).Floats64("Cashflows", req.Cashflows).Float64("Guess", guess).Msg("irr failed")
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(RateResponse{Rate: rate})
}
