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
	"strings"

	"github.com/consensys/go-polynomial/pkg/util/collection/array"
)

// Polynomial represents a sum of monomials in a single variable.  The terms of
// a polynomial are always simplified: there is at most one term for any given
// exponent, and terms are sorted by exponent from highest to lowest.  The zero
// polynomial is represented by a single term 0*x^0 (the canonical zero).
// Observe that an uninitialised Polynomial variable also corresponds with the
// canonical zero.
//
// Arithmetic operations never modify their operands.  Instead, they always
// return a fresh polynomial.  The only way to mutate a polynomial is through
// Insert.
type Polynomial struct {
	terms []Monomial
}

// NewPolynomial constructs a polynomial equivalent to zero.
func NewPolynomial() *Polynomial {
	return &Polynomial{[]Monomial{{}}}
}

// FromTerms constructs a polynomial by inserting zero or more terms, in the
// order given, into the zero polynomial.
func FromTerms(terms ...Monomial) *Polynomial {
	var res = NewPolynomial()
	//
	for _, term := range terms {
		res.Insert(term)
	}
	//
	return res
}

// Len returns the number of terms in this polynomial.  This is never less than
// one, since the zero polynomial has exactly one term.
func (p *Polynomial) Len() uint {
	return uint(len(p.view()))
}

// Term returns the ith term in this polynomial, where the zeroth term has the
// highest exponent.
func (p *Polynomial) Term(ith uint) Monomial {
	return p.view()[ith]
}

// Terms returns a copy of the terms of this polynomial, from highest to lowest
// exponent.
func (p *Polynomial) Terms() []Monomial {
	var (
		terms  = p.view()
		nterms = make([]Monomial, len(terms))
	)
	//
	copy(nterms, terms)
	//
	return nterms
}

// Coefficients returns the coefficients of this polynomial, one per term,
// ordered from highest to lowest exponent.
func (p *Polynomial) Coefficients() []float64 {
	return array.Map(p.view(), Monomial.Coefficient)
}

// Exponents returns the exponents of this polynomial, one per term, ordered
// from highest to lowest.
func (p *Polynomial) Exponents() []uint {
	return array.Map(p.view(), Monomial.Exponent)
}

// Degree returns the exponent of the highest term in this polynomial.  Observe
// that the degree of the zero polynomial is taken to be 0.
func (p *Polynomial) Degree() uint {
	return p.view()[0].exponent
}

// IsZero checks whether or not this polynomial is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].IsZero())
}

// Clone performs a deep copy of this polynomial.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{p.Terms()}
}

// Equal checks whether this polynomial is identical, term for term, to another.
func (p *Polynomial) Equal(other *Polynomial) bool {
	var (
		lhs = p.view()
		rhs = other.view()
	)
	//
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !lhs[i].Equal(rhs[i]) {
			return false
		}
	}
	//
	return true
}

// Insert a single monomial into this polynomial, such that this polynomial is
// updated in place.  The monomial is merged with any existing term of the same
// exponent, and that term is removed when their coefficients cancel.  Inserting
// a monomial with a zero coefficient has no effect.
func (p *Polynomial) Insert(term Monomial) {
	if term.IsZero() {
		return
	} else if p.IsZero() {
		// Replace the canonical zero
		p.terms = []Monomial{term}
		return
	}
	//
	for i, ith := range p.terms {
		if term.exponent > ith.exponent {
			// Insert before first lower term
			p.terms = array.InsertAt(p.terms, term, uint(i))
			return
		} else if term.exponent == ith.exponent {
			// Merge with matching term
			if sum := ith.coefficient + term.coefficient; sum != 0 {
				p.terms[i] = Monomial{sum, ith.exponent}
			} else {
				p.terms = array.RemoveAt(p.terms, uint(i))
				p.normalise()
			}
			//
			return
		}
	}
	// Lower than all existing terms
	p.terms = append(p.terms, term)
}

// Neg returns the negation of this polynomial.
func (p *Polynomial) Neg() *Polynomial {
	var res = NewPolynomial()
	//
	for _, term := range p.view() {
		res.Insert(term.Neg())
	}
	//
	return res
}

// Add returns the sum of this polynomial and another.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	var res = NewPolynomial()
	//
	for _, term := range p.view() {
		res.Insert(term)
	}
	//
	for _, term := range other.view() {
		res.Insert(term)
	}
	//
	return res
}

// Sub returns the difference of this polynomial and another.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	var res = NewPolynomial()
	//
	for _, term := range p.view() {
		res.Insert(term)
	}
	//
	for _, term := range other.view() {
		res.Insert(term.Neg())
	}
	//
	return res
}

// Mul returns the product of this polynomial and another.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	var res = NewPolynomial()
	//
	for _, ith := range p.view() {
		for _, jth := range other.view() {
			res.Insert(ith.Mul(jth))
		}
	}
	//
	return res
}

// Eval evaluates this polynomial at a given value.  Terms are summed from
// highest to lowest exponent.
func (p *Polynomial) Eval(value float64) float64 {
	var val float64
	//
	for _, term := range p.view() {
		val += term.Eval(value)
	}
	//
	return val
}

// String returns the canonical rendering of this polynomial, for example
// "+ 2.0 x^4 - x^3 + 5.0 x - 5.0".
func (p *Polynomial) String() string {
	var builder strings.Builder
	//
	for _, term := range p.view() {
		builder.WriteString(" ")
		builder.WriteString(term.String())
	}
	//
	return strings.TrimSpace(builder.String())
}

// Restore the canonical zero after a term has been removed.
func (p *Polynomial) normalise() {
	if len(p.terms) == 0 || (len(p.terms) == 1 && p.terms[0].IsZero()) {
		p.terms = []Monomial{{}}
	}
}

// View the terms of this polynomial, accounting for the uninitialised case.
func (p *Polynomial) view() []Monomial {
	if len(p.terms) == 0 {
		return canonicalZero
	}
	//
	return p.terms
}

var canonicalZero = []Monomial{{}}
