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

	"github.com/penny-vault/pv-tvm/amortize"
	"github.com/penny-vault/pv-tvm/common"
)

// ScheduleRequest is the request body for the amortization schedule
// endpoint.
type ScheduleRequest struct {
	Rate         float64 `json:"rate"`
	Periods      int     `json:"periods"`
	PresentValue float64 `json:"presentValue"`
	FutureValue  float64 `json:"futureValue"`
	DueAtStart   bool    `json:"dueAtStart"`
}

// CalcSchedule computes a full amortization schedule. Schedules are
// deterministic in their parameters and can run to hundreds of rows,
// so results are cached.
func CalcSchedule(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	key := common.CacheKey("schedule", req)
	if cached, err := common.CacheGet(key); err == nil && len(cached) > 0 {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	}

	table, err := amortize.Schedule(req.Rate, req.Periods, req.PresentValue, req.FutureValue, req.DueAtStart)
	if err != nil {
		if errors.Is(err, amortize.ErrInvalidPeriods) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.ErrInternalServerError
	}

	raw, err := json.Marshal(table)
	if err != nil {
		log.Error().Err(err).Msg("could not marshal amortization table")
		return fiber.ErrInternalServerError
	}

	if err := common.CacheSet(key, raw); err != nil {
		log.Warn().Err(err).Str("Key", key).Msg("could not cache amortization table")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
