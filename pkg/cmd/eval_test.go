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
	"math"
	"strings"
	"testing"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/stretchr/testify/require"
)

func Test_SamplePoints_0(t *testing.T) {
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, SamplePoints(0, 1, 5))
	require.Equal(t, []float64{-2}, SamplePoints(-2, 2, 1))
	require.Empty(t, SamplePoints(0, 1, 0))
}

func Test_Summarise_0(t *testing.T) {
	summary, err := Summarise([]float64{4, 1, 3, 2})
	//
	require.NoError(t, err)
	require.Equal(t, 1.0, summary.Min)
	require.Equal(t, 4.0, summary.Max)
	require.Equal(t, 2.5, summary.Mean)
	require.Equal(t, 2.5, summary.Median)
	require.InDelta(t, math.Sqrt(1.25), summary.StdDev, 1e-12)
}

func Test_Summarise_1(t *testing.T) {
	_, err := Summarise(nil)
	require.Error(t, err)
}

func Test_EvalTable_0(t *testing.T) {
	polys := SamplePolynomials()[1:2]
	//
	table, err := EvalTable(polys, []float64{0, 1, 2}, false)
	//
	require.NoError(t, err)
	require.Equal(t, uint(4), table.Height())
	require.Equal(t, "P2(x)", table.Get(1, 0))
	require.Equal(t, "-5.0", table.Get(1, 1))
	require.Equal(t, "1.0", table.Get(1, 2))
	require.Equal(t, "29.0", table.Get(1, 3))
}

func Test_EvalTable_1(t *testing.T) {
	polys := []NamedPolynomial{{"Q", poly.FromTerms(poly.MustMonomial(1, 1))}}
	//
	table, err := EvalTable(polys, []float64{1, 2, 3}, true)
	//
	require.NoError(t, err)
	require.Equal(t, uint(4+len(SUMMARY_ROWS)), table.Height())
	require.Equal(t, "mean", table.Get(0, 6))
	require.Equal(t, "2.0", table.Get(1, 6))
	require.Equal(t, "3.0", table.Get(1, 5))
}

func Test_EvalTable_2(t *testing.T) {
	var buf bytes.Buffer
	//
	polys := []NamedPolynomial{{"Q", poly.FromTerms(poly.MustMonomial(-1, 0))}}
	require.NoError(t, printEvalTable(&buf, polys, []float64{0}, false, false))
	// Escapes are disabled
	require.False(t, strings.Contains(buf.String(), "\033"))
	require.Equal(t, "   x | Q(x) |\n 0.0 | -1.0 |\n", buf.String())
}
