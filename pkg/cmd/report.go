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
	"strconv"
	"strings"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/consensys/go-polynomial/pkg/util/collection/array"
)

// Operation identifies a binary polynomial operation reported by the arith and
// demo commands.
type Operation struct {
	// Name used for selecting this operation on the command line.
	Name string
	// Label used for reporting the result.
	Label string
	// Apply this operation to a pair of polynomials.
	Apply func(lhs, rhs *poly.Polynomial) *poly.Polynomial
}

// OPERATIONS lists the supported binary operations, in reporting order.
var OPERATIONS = []Operation{
	{"add", "SUM", (*poly.Polynomial).Add},
	{"sub", "DIFFERENCE", (*poly.Polynomial).Sub},
	{"mul", "PRODUCT", (*poly.Polynomial).Mul},
}

// FindOperations returns the operations matching the given names, in reporting
// order.  An unknown name is reported as an error.
func FindOperations(names ...string) ([]Operation, error) {
	var ops []Operation
	//
	for _, name := range names {
		if !containsOperation(name) {
			return nil, fmt.Errorf("unknown operation \"%s\"", name)
		}
	}
	//
	for _, op := range OPERATIONS {
		for _, name := range names {
			if op.Name == name {
				ops = append(ops, op)
				break
			}
		}
	}
	//
	return ops, nil
}

func containsOperation(name string) bool {
	for _, op := range OPERATIONS {
		if op.Name == name {
			return true
		}
	}
	//
	return false
}

// Print each polynomial along with its coefficients, exponents and degree.
func printProperties(w io.Writer, polys []NamedPolynomial) {
	for _, p := range polys {
		fmt.Fprintf(w, "%s(x) = %s\n", p.Name, p.Polynomial.String())
		fmt.Fprintf(w, "* Coefficients: %s\n", formatList(p.Polynomial.Coefficients(), poly.FormatReal))
		fmt.Fprintf(w, "* Exponents: %s\n", formatList(p.Polynomial.Exponents(), formatUint))
		fmt.Fprintf(w, "* Degree: %d\n", p.Polynomial.Degree())
		fmt.Fprintln(w)
	}
}

// Print the value of each polynomial at each point, grouped by point.
func printValues(w io.Writer, polys []NamedPolynomial, points []float64) {
	for _, x := range points {
		for _, p := range polys {
			fmt.Fprintf(w, "%s(%s) = %s\n", p.Name, poly.FormatReal(x), poly.FormatReal(p.Polynomial.Eval(x)))
		}
		//
		fmt.Fprintln(w)
	}
}

// Print the result of each operation for every ordered pair of distinct
// polynomials (i, j) with i < j.
func printOperations(w io.Writer, polys []NamedPolynomial, ops []Operation) {
	for i, lhs := range polys {
		for _, rhs := range polys[i+1:] {
			fmt.Fprintf(w, "%s(x) and %s(x)\n", lhs.Name, rhs.Name)
			//
			for _, op := range ops {
				result := op.Apply(lhs.Polynomial, rhs.Polynomial)
				fmt.Fprintf(w, "* %s: %s\n", op.Label, result.String())
			}
			//
			fmt.Fprintln(w)
		}
	}
}

func formatList[T any](items []T, format func(T) string) string {
	return "[" + strings.Join(array.Map(items, format), ",") + "]"
}

func formatUint(val uint) string {
	return strconv.FormatUint(uint64(val), 10)
}
