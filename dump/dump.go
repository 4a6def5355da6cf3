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

// Package dump writes a graphviz rendering of the machine's data structures.
// The output is suitable for the dot tool:
//
//	turing dump -steps 10 -out machine.dot example.tm
//	dot -Tpng machine.dot > machine.png
//
// The rendering is provided by "github.com/bradleyjkemp/memviz".
package dump

import (
	"bytes"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/hardware/machine"
	"github.com/jetsetilly/turing/hardware/tape"
)

// Machine writes the graph of the machine, including the rule table and the
// tape.
func Machine(output io.Writer, m *machine.Machine) error {
	return write(output, m)
}

// Tape writes the graph of the tape only.
func Tape(output io.Writer, tp *tape.Tape) error {
	return write(output, tp)
}

func write(output io.Writer, v interface{}) error {
	// memviz does not report write errors so render to a buffer first
	var b bytes.Buffer
	memviz.Map(&b, v)
	if _, err := output.Write(b.Bytes()); err != nil {
		return curated.Errorf("dump: %v", err)
	}
	return nil
}
