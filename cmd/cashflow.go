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
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/penny-vault/pv-tvm/common"
	"github.com/penny-vault/pv-tvm/finance"
)

func init() {
	irrCmd.Flags().Float64("guess", finance.DefaultGuess, "starting rate estimate")

	rootCmd.AddCommand(npvCmd)
	rootCmd.AddCommand(irrCmd)
}

var npvCmd = &cobra.Command{
	Use:   "npv <rate> <cashflow>...",
	Short: "compute the net present value of a cash-flow series",
	Long: `Compute the net present value of a series of periodic cash flows.
Every flow is one period out: the first cash flow is discounted by
(1+rate), the second by (1+rate)^2, and so on.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		fmt.Printf("%.6f\n", finance.NetPresentValue(parseFloat(args[0]), parseFloatSlice(args[1:])))
	},
}

var irrCmd = &cobra.Command{
	Use:   "irr <cashflow>...",
	Short: "compute the internal rate of return of a cash-flow series",
	Long: `Compute the internal rate of return of a series of cash flows. The
first cash flow falls at the valuation date and is not discounted;
outflows are negative and inflows positive.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		guess, _ := cmd.Flags().GetFloat64("guess")
		rate, err := finance.InternalRateOfReturn(parseFloatSlice(args), guess)
		if err != nil {
			log.Fatal().Err(err).Float64("Guess", guess).Msg("irr failed; try a different guess")
		}
		fmt.Printf("%.8f\n", rate)
	},
}
