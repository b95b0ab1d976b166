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
package assert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Tolerance is the relative (and absolute, near zero) difference permitted by
// the approximate comparisons in this package.
const Tolerance = 1e-9

// Equal errors if actual is not equal to expected.  Values are compared
// structurally, and the difference is reported on failure.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if diff := cmp.Diff(expected, actual); diff != "" {
		fail(t, fmt.Sprintf("mismatch (-expected +actual):\n%s", diff), msg...)
	}
}

// Approx errors if actual differs from expected by more than Tolerance.  This
// applies to individual floats, as well as to slices of floats.
func Approx(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	opt := cmpopts.EquateApprox(Tolerance, Tolerance)
	//
	if diff := cmp.Diff(expected, actual, opt); diff != "" {
		fail(t, fmt.Sprintf("mismatch beyond tolerance (-expected +actual):\n%s", diff), msg...)
	}
}

// ErrorIs errors if err does not match target, according to errors.Is.
func ErrorIs(t *testing.T, err, target error, msg ...any) {
	t.Helper()
	//
	if !errors.Is(err, target) {
		fail(t, fmt.Sprintf("expected error %q, got %v", target, err), msg...)
	}
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		fail(t, fmt.Sprintf("unexpected error: %v", err), msg...)
	}
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		fail(t, "condition is false", msg...)
	}
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		fail(t, "condition is true", msg...)
	}
}

func fail(t *testing.T, reason string, msg ...any) {
	t.Helper()
	t.Errorf("%s", reason)
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}
