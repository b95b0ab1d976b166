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
package termio

import (
	"bytes"
	"testing"
)

func Test_Table_0(t *testing.T) {
	table := NewTablePrinter(2, 2)
	table.SetRow(0, "x", "P(x)")
	table.SetRow(1, "1.0", "5.0")
	//
	checkTable(t, table, "   x | P(x) |\n 1.0 |  5.0 |\n")
}

func Test_Table_1(t *testing.T) {
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "abcdefgh")
	table.SetMaxWidth(0, 5)
	//
	checkTable(t, table, " abc.. |\n")
}

func Test_Table_2(t *testing.T) {
	table := NewTablePrinter(1, 1)
	table.Set(0, 0, "ab")
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_RED))
	//
	checkTable(t, table, "\033[31m ab\033[0m |\n")
	// Disabled escapes
	table.AnsiEscapes(false)
	checkTable(t, table, " ab |\n")
}

func Test_Terminal_0(t *testing.T) {
	var buf bytes.Buffer
	//
	if IsTerminal(&buf) {
		t.Errorf("buffer reported as terminal")
	}
}

func checkTable(t *testing.T, table *TablePrinter, expected string) {
	t.Helper()
	//
	var buf bytes.Buffer
	//
	table.Print(&buf)
	//
	if actual := buf.String(); actual != expected {
		t.Errorf("expected %q, got %q", expected, actual)
	}
}
