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
	for _, c := range []*cobra.Command{pmtCmd, ipmtCmd, ppmtCmd, nperCmd} {
		c.Flags().Float64("fv", 0, "future value remaining at the end of the term")
		c.Flags().Bool("due", false, "payments fall at the start of each period")
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{fvCmd, pvCmd} {
		c.Flags().Bool("due", false, "payments fall at the start of each period")
		rootCmd.AddCommand(c)
	}
}

var pmtCmd = &cobra.Command{
	Use:   "pmt <rate> <periods> <presentValue>",
	Short: "compute the fixed periodic payment of an annuity",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		fv, _ := cmd.Flags().GetFloat64("fv")
		due, _ := cmd.Flags().GetBool("due")
		fmt.Printf("%.6f\n", finance.Payment(parseFloat(args[0]), parseInt(args[1]), parseFloat(args[2]), fv, due))
	},
}

var ipmtCmd = &cobra.Command{
	Use:   "ipmt <rate> <period> <periods> <presentValue>",
	Short: "compute the interest portion of a payment",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		fv, _ := cmd.Flags().GetFloat64("fv")
		due, _ := cmd.Flags().GetBool("due")
		fmt.Printf("%.6f\n", finance.InterestPortion(parseFloat(args[0]), parseInt(args[1]), parseInt(args[2]), parseFloat(args[3]), fv, due))
	},
}

var ppmtCmd = &cobra.Command{
	Use:   "ppmt <rate> <period> <periods> <presentValue>",
	Short: "compute the principal portion of a payment",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		fv, _ := cmd.Flags().GetFloat64("fv")
		due, _ := cmd.Flags().GetBool("due")
		fmt.Printf("%.6f\n", finance.PrincipalPortion(parseFloat(args[0]), parseInt(args[1]), parseInt(args[2]), parseFloat(args[3]), fv, due))
	},
}

var fvCmd = &cobra.Command{
	Use:   "fv <rate> <periods> <payment> <presentValue>",
	Short: "compute the future value of an annuity",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		due, _ := cmd.Flags().GetBool("due")
		fmt.Printf("%.6f\n", finance.FutureValue(parseFloat(args[0]), parseFloat(args[1]), parseFloat(args[2]), parseFloat(args[3]), due))
	},
}

var pvCmd = &cobra.Command{
	Use:   "pv <rate> <periods> <payment> <futureValue>",
	Short: "compute the present value of an annuity",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		due, _ := cmd.Flags().GetBool("due")
		fmt.Printf("%.6f\n", finance.PresentValue(parseFloat(args[0]), parseFloat(args[1]), parseFloat(args[2]), parseFloat(args[3]), due))
	},
}

var nperCmd = &cobra.Command{
	Use:   "nper <rate> <payment> <presentValue>",
	Short: "compute the number of periods of an annuity",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		fv, _ := cmd.Flags().GetFloat64("fv")
		due, _ := cmd.Flags().GetBool("due")
		periods, err := finance.PeriodCount(parseFloat(args[0]), parseFloat(args[1]), parseFloat(args[2]), fv, due)
		if err != nil {
			log.Fatal().Err(err).Msg("annuity term is undefined for these inputs")
		}
		fmt.Printf("%.6f\n", periods)
	},
}
