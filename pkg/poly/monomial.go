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
	"bytes"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidExponent is returned when constructing a monomial with a negative
// exponent.
var ErrInvalidExponent = errors.New("exponent must be a nonnegative integer")

// ErrMismatchedExponents is returned when adding or subtracting two monomials
// whose exponents differ.
var ErrMismatchedExponents = errors.New("monomial exponents do not match")

// ErrDivisionInvalid is returned when dividing by a monomial with a zero
// coefficient, or by a monomial whose exponent exceeds that of the dividend.
var ErrDivisionInvalid = errors.New("invalid monomial division")

// Monomial represents a single term c*x^e with a real coefficient c and a
// nonnegative exponent e.  Monomials are immutable values, hence every
// operation returns a fresh monomial.  Observe that the zero value of Monomial
// corresponds with 0*x^0.
type Monomial struct {
	coefficient float64
	exponent    uint
}

// NewMonomial constructs a new monomial with a given coefficient and exponent.
// This fails with ErrInvalidExponent if the exponent is negative.
func NewMonomial(coefficient float64, exponent int) (Monomial, error) {
	if exponent < 0 {
		return Monomial{}, fmt.Errorf("%w (was %d)", ErrInvalidExponent, exponent)
	}
	//
	return Monomial{coefficient, uint(exponent)}, nil
}

// MustMonomial constructs a new monomial, panicking if the exponent is
// negative.  This is intended for literal construction only.
func MustMonomial(coefficient float64, exponent int) Monomial {
	m, err := NewMonomial(coefficient, exponent)
	if err != nil {
		panic(err.Error())
	}
	//
	return m
}

// Coefficient returns the coefficient of this monomial.
func (p Monomial) Coefficient() float64 {
	return p.coefficient
}

// Exponent returns the exponent of this monomial.
func (p Monomial) Exponent() uint {
	return p.exponent
}

// IsZero checks whether or not the coefficient of this monomial is zero.
func (p Monomial) IsZero() bool {
	return p.coefficient == 0
}

// Equal performs structural equality between two monomials.
func (p Monomial) Equal(other Monomial) bool {
	return p.coefficient == other.coefficient && p.exponent == other.exponent
}

// Neg returns a negated copy of this monomial.
func (p Monomial) Neg() Monomial {
	return Monomial{-p.coefficient, p.exponent}
}

// Add returns the sum of this monomial and another.  Both must have the same
// exponent, otherwise ErrMismatchedExponents is returned.
func (p Monomial) Add(other Monomial) (Monomial, error) {
	if p.exponent != other.exponent {
		return Monomial{}, fmt.Errorf("add x^%d and x^%d: %w", p.exponent, other.exponent, ErrMismatchedExponents)
	}
	//
	return Monomial{p.coefficient + other.coefficient, p.exponent}, nil
}

// Sub returns the difference of this monomial and another.  Both must have the
// same exponent, otherwise ErrMismatchedExponents is returned.
func (p Monomial) Sub(other Monomial) (Monomial, error) {
	if p.exponent != other.exponent {
		return Monomial{}, fmt.Errorf("subtract x^%d and x^%d: %w", p.exponent, other.exponent, ErrMismatchedExponents)
	}
	//
	return Monomial{p.coefficient - other.coefficient, p.exponent}, nil
}

// Mul returns a fresh monomial representing the multiplication of this monomial
// and another.  There are no restrictions on the operands.
func (p Monomial) Mul(other Monomial) Monomial {
	return Monomial{p.coefficient * other.coefficient, p.exponent + other.exponent}
}

// Div returns the quotient of this monomial by a given divisor.  The divisor
// must have a non-zero coefficient and an exponent no larger than this
// monomial's exponent, otherwise ErrDivisionInvalid is returned.
func (p Monomial) Div(divisor Monomial) (Monomial, error) {
	if divisor.coefficient == 0 {
		return Monomial{}, fmt.Errorf("divide by zero coefficient: %w", ErrDivisionInvalid)
	} else if p.exponent < divisor.exponent {
		return Monomial{}, fmt.Errorf("divide x^%d by x^%d: %w", p.exponent, divisor.exponent, ErrDivisionInvalid)
	}
	//
	return Monomial{p.coefficient / divisor.coefficient, p.exponent - divisor.exponent}, nil
}

// Eval evaluates this monomial at a given value.  A zero exponent always
// yields the coefficient, since 0^0 = 1 here.
func (p Monomial) Eval(value float64) float64 {
	return p.coefficient * math.Pow(value, float64(p.exponent))
}

// String returns the canonical rendering of this monomial, such as "+ 5.0 x^11",
// "- x" or "+ 3.5".  A zero coefficient is always rendered as "+ 0".
func (p Monomial) String() string {
	var buf bytes.Buffer
	// Special case
	if p.coefficient == 0 {
		return "+ 0"
	}
	// Sign
	if p.coefficient >= 0 {
		buf.WriteString("+ ")
	} else {
		buf.WriteString("- ")
	}
	// Unit coefficients are dropped in front of a power.
	if magnitude := FormatReal(math.Abs(p.coefficient)); p.exponent == 0 {
		buf.WriteString(magnitude)
	} else if magnitude != "1.0" {
		buf.WriteString(magnitude)
		buf.WriteString(" ")
	}
	// Power
	switch p.exponent {
	case 0:
	case 1:
		buf.WriteString("x")
	default:
		fmt.Fprintf(&buf, "x^%d", p.exponent)
	}
	//
	return buf.String()
}
