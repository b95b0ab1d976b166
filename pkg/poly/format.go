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
package poly

import (
	"math"
	"strconv"
	"strings"
)

// FormatReal renders a real number using the shortest decimal representation
// which round trips, always including a fractional part.  For example, 5
// renders as "5.0" and 0.25 as "0.25".  Magnitudes outside [1e-3, 1e7) use
// scientific notation, such as "1.0E7" or "2.5E-4".
func FormatReal(value float64) string {
	var abs = math.Abs(value)
	//
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0 || (abs >= 1e-3 && abs < 1e7):
		return withFraction(strconv.FormatFloat(value, 'f', -1, 64))
	}
	// Scientific notation, e.g. "1.5E+07" becomes "1.5E7".
	str := strconv.FormatFloat(value, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(str, "E")
	exp, _ := strconv.Atoi(exponent)
	//
	return withFraction(mantissa) + "E" + strconv.Itoa(exp)
}

func withFraction(str string) string {
	if strings.Contains(str, ".") {
		return str
	}
	//
	return str + ".0"
}
