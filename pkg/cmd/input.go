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
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/consensys/go-polynomial/pkg/poly"
	log "github.com/sirupsen/logrus"
)

// NamedPolynomial associates a polynomial with the name it is reported under.
type NamedPolynomial struct {
	Name       string
	Polynomial *poly.Polynomial
}

// polynomialFile describes the TOML layout of an input file.
type polynomialFile struct {
	Polynomials []polynomialEntry `toml:"polynomial"`
}

type polynomialEntry struct {
	Name  string      `toml:"name"`
	Terms []termEntry `toml:"terms"`
}

type termEntry struct {
	Coefficient float64 `toml:"coefficient"`
	Exponent    int     `toml:"exponent"`
}

// ParsePolynomials parses a TOML document into zero or more named polynomials.
// Each [[polynomial]] table lists its terms, which are inserted in the order
// given.  Unknown keys are rejected, as are terms with negative exponents.
// Polynomials without a name are named after their (one-based) position.
func ParsePolynomials(data string) ([]NamedPolynomial, error) {
	var doc polynomialFile
	//
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, err
	} else if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		//
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	//
	polys := make([]NamedPolynomial, len(doc.Polynomials))
	//
	for i, entry := range doc.Polynomials {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		//
		p := poly.NewPolynomial()
		//
		for j, term := range entry.Terms {
			m, err := poly.NewMonomial(term.Coefficient, term.Exponent)
			if err != nil {
				return nil, fmt.Errorf("polynomial %s, term %d: %w", name, j+1, err)
			}
			//
			p.Insert(m)
		}
		//
		log.Debugf("loaded polynomial %s with %d term(s)", name, p.Len())
		//
		polys[i] = NamedPolynomial{name, p}
	}
	//
	return polys, nil
}

// ReadPolynomialFile reads and parses a TOML file of polynomials.
func ReadPolynomialFile(filename string) ([]NamedPolynomial, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	polys, err := ParsePolynomials(string(bytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("read %d polynomial(s) from %s", len(polys), filename)
	//
	return polys, nil
}

// Read polynomial files, exiting if an error arises.
func readPolynomialFiles(filenames ...string) []NamedPolynomial {
	var polys []NamedPolynomial
	//
	for _, filename := range filenames {
		ps, err := ReadPolynomialFile(filename)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		polys = append(polys, ps...)
	}
	//
	return polys
}
