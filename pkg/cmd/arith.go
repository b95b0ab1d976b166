// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var arithCmd = &cobra.Command{
	Use:   "arith [flags] polynomial_file(s)",
	Short: "combine pairs of polynomials.",
	Long: `Print the sum, difference and product of every pair of polynomials
	given in one or more TOML files.  The operations reported can be restricted
	using --op.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		ops, err := FindOperations(GetStringArray(cmd, "op")...)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		// Read polynomials
		polys := readPolynomialFiles(args...)
		//
		if len(polys) < 2 {
			log.Warnf("only %d polynomial(s) given, nothing to combine", len(polys))
		}
		//
		printProperties(os.Stdout, polys)
		printOperations(os.Stdout, polys, ops)
	},
}

func init() {
	rootCmd.AddCommand(arithCmd)
	arithCmd.Flags().StringSlice("op", []string{"add", "sub", "mul"}, "operation(s) to report (add, sub, mul)")
}
