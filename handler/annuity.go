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
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/penny-vault/pv-tvm/finance"
)

// AnnuityRequest is the request body shared by the annuity endpoints.
// FutureValue and DueAtStart default to 0 and false when omitted.
type AnnuityRequest struct {
	Rate         float64 `json:"rate"`
	Period       int     `json:"period"`
	Periods      int     `json:"periods"`
	Payment      float64 `json:"payment"`
	PresentValue float64 `json:"presentValue"`
	FutureValue  float64 `json:"futureValue"`
	DueAtStart   bool    `json:"dueAtStart"`
}

// FlexPeriodsRequest is the request body for the endpoints that allow
// fractional period counts (future value and present value).
type FlexPeriodsRequest struct {
	Rate         float64 `json:"rate"`
	Periods      float64 `json:"periods"`
	Payment      float64 `json:"payment"`
	PresentValue float64 `json:"presentValue"`
	FutureValue  float64 `json:"futureValue"`
	DueAtStart   bool    `json:"dueAtStart"`
}

func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := json.Unmarshal(c.Body(), req); err != nil {
		log.Warn().Err(err).Str("Body", string(c.Body())).Msg("cannot parse request body")
		return fiber.ErrBadRequest
	}
	return nil
}

// CalcPayment computes the periodic payment for an annuity (PMT)
func CalcPayment(c *fiber.Ctx) error {
	var req AnnuityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Periods < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "periods must be at least 1")
	}

	return c.JSON(AmountResponse{
		Amount: finance.Payment(req.Rate, req.Periods, req.PresentValue, req.FutureValue, req.DueAtStart),
	})
}

// CalcInterestPortion computes the interest component of a payment (IPMT)
func CalcInterestPortion(c *fiber.Ctx) error {
	var req AnnuityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Periods < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "periods must be at least 1")
	}
	if req.Period < 1 || req.Period > req.Periods {
		return fiber.NewError(fiber.StatusBadRequest, "period must fall within the annuity term")
	}

	return c.JSON(AmountResponse{
		Amount: finance.InterestPortion(req.Rate, req.Period, req.Periods, req.PresentValue, req.FutureValue, req.DueAtStart),
	})
}

// CalcPrincipalPortion computes the principal component of a payment (PPMT)
func CalcPrincipalPortion(c *fiber.Ctx) error {
	var req AnnuityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Periods < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "periods must be at least 1")
	}
	if req.Period < 1 || req.Period > req.Periods {
		return fiber.NewError(fiber.StatusBadRequest, "period must fall within the annuity term")
	}

	return c.JSON(AmountResponse{
		Amount: finance.PrincipalPortion(req.Rate, req.Period, req.Periods, req.PresentValue, req.FutureValue, req.DueAtStart),
	})
}

// CalcFutureValue computes the future value of an annuity (FV)
func CalcFutureValue(c *fiber.Ctx) error {
	var req FlexPeriodsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	return c.JSON(AmountResponse{
		Amount: finance.FutureValue(req.Rate, req.Periods, req.Payment, req.PresentValue, req.DueAtStart),
	})
}

// CalcPresentValue computes the present value of an annuity (PV)
func CalcPresentValue(c *fiber.Ctx) error {
	var req FlexPeriodsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	return c.JSON(AmountResponse{
		Amount: finance.PresentValue(req.Rate, req.Periods, req.Payment, req.FutureValue, req.DueAtStart),
	})
}

// CalcPeriodCount solves the annuity equation for the number of
// periods (NPER)
func CalcPeriodCount(c *fiber.Ctx) error {
	var req AnnuityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Payment == 0 && req.Rate == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "payment must be non-zero when rate is zero")
	}

	periods, err := finance.PeriodCount(req.Rate, req.Payment, req.PresentValue, req.FutureValue, req.DueAtStart)
	if err != nil {
		if errors.Is(err, finance.ErrNoSolution) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(PeriodsResponse{Periods: periods})
}
