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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-polynomial/pkg/poly"
	"github.com/consensys/go-polynomial/pkg/util/termio"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] polynomial_file(s)",
	Short: "evaluate polynomials at one or more points.",
	Long: `Evaluate each polynomial given in one or more TOML files at a set of
	points.  Points are either given explicitly (--at) or sampled evenly from an
	interval (--from, --to, --samples).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		configureLogging(cmd)
		//
		points := GetFloatArray(cmd, "at")
		from := GetFloat(cmd, "from")
		to := GetFloat(cmd, "to")
		samples := GetUint(cmd, "samples")
		summarise := GetFlag(cmd, "stats")
		//
		if len(points) == 0 {
			points = SamplePoints(from, to, samples)
		}
		//
		if len(points) == 0 {
			log.Error("no evaluation points (use --at or --samples)")
			os.Exit(1)
		}
		// Read polynomials
		polys := readPolynomialFiles(args...)
		log.Debugf("evaluating %d polynomial(s) at %d point(s)", len(polys), len(points))
		//
		if err := printEvalTable(os.Stdout, polys, points, summarise, useColour(cmd, os.Stdout)); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Float64Slice("at", nil, "evaluate at the given point(s)")
	evalCmd.Flags().Float64("from", 0, "start of sampling interval")
	evalCmd.Flags().Float64("to", 1, "end of sampling interval")
	evalCmd.Flags().Uint("samples", 0, "number of evenly spaced points to sample")
	evalCmd.Flags().Bool("stats", false, "summarise values of each polynomial")
}

// Summary captures simple statistics over the values of a polynomial.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// SUMMARY_ROWS are the labels of the statistics rows in an evaluation table.
var SUMMARY_ROWS = []string{"min", "max", "mean", "median", "stddev"}

func (p Summary) values() []float64 {
	return []float64{p.Min, p.Max, p.Mean, p.Median, p.StdDev}
}

// SamplePoints returns n evenly spaced points covering the interval [from, to].
// A single sample yields just the start of the interval.
func SamplePoints(from, to float64, n uint) []float64 {
	points := make([]float64, n)
	//
	for i := range n {
		if n == 1 {
			points[i] = from
		} else {
			points[i] = from + float64(i)*(to-from)/float64(n-1)
		}
	}
	//
	return points
}

// Evaluate a polynomial at each of the given points.
func Evaluate(p *poly.Polynomial, points []float64) []float64 {
	values := make([]float64, len(points))
	//
	for i, x := range points {
		values[i] = p.Eval(x)
	}
	//
	return values
}

// Summarise a non-empty set of values.
func Summarise(values []float64) (Summary, error) {
	var (
		summary Summary
		err     error
		errs    []error
	)
	//
	summary.Min, err = stats.Min(values)
	errs = append(errs, err)
	summary.Max, err = stats.Max(values)
	errs = append(errs, err)
	summary.Mean, err = stats.Mean(values)
	errs = append(errs, err)
	summary.Median, err = stats.Median(values)
	errs = append(errs, err)
	summary.StdDev, err = stats.StandardDeviation(values)
	errs = append(errs, err)
	//
	if err := errors.Join(errs...); err != nil {
		return Summary{}, fmt.Errorf("summarising values: %w", err)
	}
	//
	return summary, nil
}

// EvalTable constructs a table with one row per point and one column per
// polynomial (after an initial column giving the point).  When requested,
// summary statistics for each polynomial are appended as additional rows.
func EvalTable(polys []NamedPolynomial, points []float64, summarise bool) (*termio.TablePrinter, error) {
	var (
		width  = uint(len(polys)) + 1
		height = uint(len(points)) + 1
		bold   = termio.BoldAnsiEscape()
	)
	//
	if summarise {
		height += uint(len(SUMMARY_ROWS))
	}
	//
	table := termio.NewTablePrinter(width, height)
	table.Set(0, 0, "x")
	table.SetEscape(0, 0, bold)
	//
	for i, x := range points {
		table.Set(0, uint(i)+1, poly.FormatReal(x))
	}
	//
	for j, p := range polys {
		col := uint(j) + 1
		values := Evaluate(p.Polynomial, points)
		//
		table.Set(col, 0, fmt.Sprintf("%s(x)", p.Name))
		table.SetEscape(col, 0, bold)
		//
		for i, val := range values {
			table.Set(col, uint(i)+1, poly.FormatReal(val))
			//
			if val < 0 {
				table.SetEscape(col, uint(i)+1, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
			}
		}
		//
		if summarise {
			summary, err := Summarise(values)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name, err)
			}
			//
			for k, val := range summary.values() {
				table.Set(col, uint(len(points)+k)+1, poly.FormatReal(val))
			}
		}
	}
	//
	if summarise {
		for k, label := range SUMMARY_ROWS {
			row := uint(len(points)+k) + 1
			table.Set(0, row, label)
			table.SetEscape(0, row, termio.NewAnsiEscape().FgColour(termio.TERM_BLUE))
		}
	}
	//
	return table, nil
}

// Write the evaluation table for a set of polynomials to a given writer.
func printEvalTable(w io.Writer, polys []NamedPolynomial, points []float64, summarise bool, colour bool) error {
	table, err := EvalTable(polys, points, summarise)
	if err != nil {
		return err
	}
	//
	table.AnsiEscapes(colour)
	table.Print(w)
	//
	return nil
}
