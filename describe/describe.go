// This file is part of Turing.
//
// Turing is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Turing is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Turing.  If not, see <https://www.gnu.org/licenses/>.

// Package describe writes a human readable description of a machine,
// including the rules table.
//
// The rules table has one row for each symbol and one column for each state.
// Each cell shows the symbol to write, the movement (L, R or N) and the next
// state. Pairs without a rule are shown as a single dash.
package describe

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/turing/hardware/machine"
)

// column widths of the rules table
const (
	headingWidth = 8
	cellWidth    = 15
)

// Write the description of the machine to io.Writer.
func Write(output io.Writer, m *machine.Machine) error {
	tbl := m.Table()
	symbols := tbl.Symbols()
	states := tbl.States()

	s := &strings.Builder{}

	sym := make([]string, len(symbols))
	for i := range symbols {
		sym[i] = string(symbols[i])
	}
	stt := make([]string, len(states))
	for i := range states {
		stt[i] = states[i].String()
	}

	fmt.Fprintf(s, "Machine: %s\n", m.Name())
	fmt.Fprintf(s, "Symbols: [%s]\n", strings.Join(sym, ", "))
	fmt.Fprintf(s, "States: [%s]\n", strings.Join(stt, ", "))
	fmt.Fprintf(s, "Start State: %s\n", m.State())
	fmt.Fprintf(s, "Blank symbol: %s\n", m.Tape().Blank())
	fmt.Fprintf(s, "Rules table:\n")

	border := func() {
		s.WriteString("+")
		s.WriteString(strings.Repeat("-", headingWidth))
		s.WriteString("+")
		for range states {
			s.WriteString(strings.Repeat("-", cellWidth))
			s.WriteString("+")
		}
		s.WriteString("\n")
	}

	border()
	fmt.Fprintf(s, "|%*s|", headingWidth, "")
	for _, st := range stt {
		fmt.Fprintf(s, "%*s|", cellWidth, st)
	}
	s.WriteString("\n")
	border()

	for _, symbol := range symbols {
		fmt.Fprintf(s, "|%*s|", headingWidth, symbol)
		for _, state := range states {
			cell := "-"
			if r, ok := tbl.Lookup(symbol, state); ok {
				cell = fmt.Sprintf(" %s", r)
			}
			fmt.Fprintf(s, "%*s|", cellWidth, cell)
		}
		s.WriteString("\n")
		border()
	}

	_, err := io.WriteString(output, s.String())
	return err
}
