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

package cmd

import (
	"strconv"

	"github.com/rs/zerolog/log"
)

func parseFloat(arg string) float64 {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		log.Fatal().Err(err).Str("Arg", arg).Msg("argument is not a number")
	}
	return v
}

func parseInt(arg string) int {
	v, err := strconv.Atoi(arg)
	if err != nil {
		log.Fatal().Err(err).Str("Arg", arg).Msg("argument is not an integer")
	}
	return v
}

func parseFloatSlice(args []string) []float64 {
	values := make([]float64, len(args))
	for ii, arg := range args {
		values[ii] = parseFloat(arg)
	}
	return values
}
