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

	"github.com/penny-vault/pv-tvm/amortize"
	"github.com/penny-vault/pv-tvm/common"
)

func init() {
	amortCmd.Flags().Float64("fv", 0, "future value remaining at the end of the term")
	amortCmd.Flags().Bool("due", false, "payments fall at the start of each period")

	rootCmd.AddCommand(amortCmd)
}

var amortCmd = &cobra.Command{
	Use:   "amort <rate> <periods> <presentValue>",
	Short: "print the amortization schedule of a fixed-payment loan",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()
		fv, _ := cmd.Flags().GetFloat64("fv")
		due, _ := cmd.Flags().GetBool("due")

		table, err := amortize.Schedule(parseFloat(args[0]), parseInt(args[1]), parseFloat(args[2]), fv, due)
		if err != nil {
			log.Fatal().Err(err).Msg("could not build amortization schedule")
		}
		fmt.Println(table.Table())
	},
}
