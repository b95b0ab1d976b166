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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FindOperations_0(t *testing.T) {
	ops, err := FindOperations("mul", "add")
	//
	require.NoError(t, err)
	require.Len(t, ops, 2)
	// Reporting order is preserved
	require.Equal(t, "SUM", ops[0].Label)
	require.Equal(t, "PRODUCT", ops[1].Label)
}

func Test_FindOperations_1(t *testing.T) {
	_, err := FindOperations("add", "div")
	require.ErrorContains(t, err, "div")
}

func Test_Properties_0(t *testing.T) {
	var buf bytes.Buffer
	//
	printProperties(&buf, SamplePolynomials()[1:2])
	//
	require.Equal(t, strings.Join([]string{
		"P2(x) = + 2.0 x^4 - x^3 + 5.0 x - 5.0",
		"* Coefficients: [2.0,-1.0,5.0,-5.0]",
		"* Exponents: [4,3,1,0]",
		"* Degree: 4",
		"", ""}, "\n"), buf.String())
}

func Test_Operations_0(t *testing.T) {
	var (
		buf   bytes.Buffer
		polys = SamplePolynomials()
	)
	//
	printOperations(&buf, []NamedPolynomial{polys[0], polys[2]}, OPERATIONS)
	//
	require.Equal(t, strings.Join([]string{
		"P1(x) and P3(x)",
		"* SUM: + 20.0 x^11 + 25.0 x^8 - 17.0 x^5",
		"* DIFFERENCE: - 10.0 x^11 + 25.0 x^8 - 17.0 x^5",
		"* PRODUCT: + 75.0 x^22 + 375.0 x^19 - 255.0 x^16",
		"", ""}, "\n"), buf.String())
}

func Test_Demo_0(t *testing.T) {
	var buf bytes.Buffer
	//
	Demo(&buf)
	//
	lines := strings.Split(buf.String(), "\n")
	require.Contains(t, lines, "P1(x) = + 5.0 x^11 + 25.0 x^8 - 17.0 x^5")
	require.Contains(t, lines, "* Exponents: [11,8,5]")
	require.Contains(t, lines, "P4(x) = + 1.0")
	require.Contains(t, lines, "P2(0.0) = -5.0")
	require.Contains(t, lines, "P2(1.0) = 1.0")
	require.Contains(t, lines, "P4(7.7) = 1.0")
	require.Contains(t, lines, "P3(x) and P4(x)")
	require.Contains(t, lines, "* PRODUCT: + 15.0 x^11")
	require.Equal(t, "THANK YOU FOR USING THIS PROGRAM!", lines[len(lines)-2])
}

func Test_Demo_1(t *testing.T) {
	var (
		buf     bytes.Buffer
		samples = SamplePolynomials()
	)
	// Multiplying by the constant polynomial is the identity.
	require.True(t, samples[0].Polynomial.Equal(samples[0].Polynomial.Mul(samples[3].Polynomial)))
	//
	Demo(&buf)
	// Six pairs are reported
	require.Equal(t, 6, strings.Count(buf.String(), "* SUM: "))
}
