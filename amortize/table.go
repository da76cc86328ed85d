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

package amortize

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Table renders the schedule as an ASCII formatted table
func (at *AmortizationTable) Table() string {
	if len(at.Entries) == 0 {
		return "<NO DATA>"
	}

	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader([]string{"Period", "Payment", "Interest", "Principal", "Balance"})
	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%.2f", at.TotalPaid),
		fmt.Sprintf("%.2f", at.TotalInterest),
		fmt.Sprintf("%.2f", at.TotalPrincipal),
		"",
	})
	table.SetBorder(false)

	for _, entry := range at.Entries {
		table.Append([]string{
			fmt.Sprintf("%d", entry.Period),
			fmt.Sprintf("%.2f", entry.Payment),
			fmt.Sprintf("%.2f", entry.Interest),
			fmt.Sprintf("%.2f", entry.Principal),
			fmt.Sprintf("%.2f", entry.Balance),
		})
	}

	table.Render()
	return s.String()
}
