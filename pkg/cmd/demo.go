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
	"io"
	"os"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "print some sample polynomials and operations between them.",
	Long: `Construct four sample polynomials, print their properties, evaluate them
	at a few points and print the sum, difference and product of each pair.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		Demo(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// DEMO_POINTS are the points at which the sample polynomials are evaluated.
var DEMO_POINTS = []float64{-2.4, -1.7, 0, 1, 3, 7.7}

// SamplePolynomials constructs the four sample polynomials used by the demo.
func SamplePolynomials() []NamedPolynomial {
	return []NamedPolynomial{
		// + 5 x^11 + 25 x^8 - 17 x^5
		{"P1", poly.FromTerms(poly.MustMonomial(5, 11), poly.MustMonomial(25, 8), poly.MustMonomial(-17, 5))},
		// + 2 x^4 - x^3 + 5 x - 5
		{"P2", poly.FromTerms(poly.MustMonomial(2, 4), poly.MustMonomial(-1, 3), poly.MustMonomial(5, 1),
			poly.MustMonomial(-5, 0))},
		// + 15 x^11
		{"P3", poly.FromTerms(poly.MustMonomial(15, 11))},
		// + 1
		{"P4", poly.FromTerms(poly.MustMonomial(1, 0))},
	}
}

// Demo writes the demonstration report to a given writer.
func Demo(w io.Writer) {
	polys := SamplePolynomials()
	//
	fmt.Fprintln(w, "This program defines some polynomials and performs")
	fmt.Fprintln(w, "operations between them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "POLYNOMIALS AND THEIR PROPERTIES")
	fmt.Fprintln(w)
	printProperties(w, polys)
	fmt.Fprintln(w, "EVALUATION OF POLYNOMIALS")
	fmt.Fprintln(w)
	printValues(w, polys, DEMO_POINTS)
	fmt.Fprintln(w, "OPERATION BETWEEN POLYNOMIALS")
	fmt.Fprintln(w)
	printOperations(w, polys, OPERATIONS)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "THANK YOU FOR USING THIS PROGRAM!")
}
