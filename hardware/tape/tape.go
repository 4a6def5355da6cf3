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

package tape

import (
	"strings"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/hardware/rules"
)

// Sentinal errors.
const (
	// the direction is included as the single value
	Overrun = "tape: overrun (%s)"

	Empty = "tape: empty"
)

// Side indicates which end of the tape to use in the Append() function.
type Side int

// List of valid Side values.
const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// Cell is a single cell of the tape.
type Cell struct {
	Symbol rules.Symbol
}

// Tape is the machine's tape and head.
type Tape struct {
	infinite bool
	blank    rules.Symbol

	// right[i] is the cell at position i. left[i] is the cell at position
	// -(i+1)
	right []Cell
	left  []Cell

	// the position of the head. only meaningful if the tape is not empty
	head int
}

// NewTape is the preferred method of initialisation for the Tape type.
func NewTape(infinite bool, blank rules.Symbol) *Tape {
	return &Tape{
		infinite: infinite,
		blank:    blank,
	}
}

// Infinite returns true if the tape grows on demand.
func (tp *Tape) Infinite() bool {
	return tp.infinite
}

// Blank returns the symbol used to fill new cells.
func (tp *Tape) Blank() rules.Symbol {
	return tp.blank
}

// Len returns the number of cells that exist.
func (tp *Tape) Len() int {
	return len(tp.left) + len(tp.right)
}

// Leftmost returns the position of the leftmost cell. Zero on an empty tape.
func (tp *Tape) Leftmost() int {
	return -len(tp.left)
}

// Rightmost returns the position of the rightmost cell. Zero on an empty
// tape.
func (tp *Tape) Rightmost() int {
	if len(tp.right) == 0 {
		return 0
	}
	return len(tp.right) - 1
}

// Position returns the position of the head.
func (tp *Tape) Position() int {
	return tp.head
}

// cell returns the cell at the position. the position must exist.
func (tp *Tape) cell(pos int) *Cell {
	if pos >= 0 {
		return &tp.right[pos]
	}
	return &tp.left[-pos-1]
}

// exists returns true if there is a cell at the position.
func (tp *Tape) exists(pos int) bool {
	if pos >= 0 {
		return pos < len(tp.right)
	}
	return -pos-1 < len(tp.left)
}

// origin creates the first cell of an empty tape and puts the head on it.
func (tp *Tape) origin(symbol rules.Symbol) {
	tp.right = append(tp.right, Cell{Symbol: symbol})
	tp.head = 0
}

// Append a cell to the specified end of the tape. The head does not move
// unless this is the first cell, in which case the head is placed on it.
func (tp *Tape) Append(symbol rules.Symbol, side Side) {
	if tp.Len() == 0 {
		tp.origin(symbol)
		return
	}

	if side == LeftSide {
		tp.left = append(tp.left, Cell{Symbol: symbol})
	} else {
		tp.right = append(tp.right, Cell{Symbol: symbol})
	}
}

// MoveLeft moves the head one position to the left.
func (tp *Tape) MoveLeft() error {
	return tp.move(-1, LeftSide)
}

// MoveRight moves the head one position to the right.
func (tp *Tape) MoveRight() error {
	return tp.move(1, RightSide)
}

func (tp *Tape) move(delta int, side Side) error {
	if tp.Len() == 0 {
		if !tp.infinite {
			return curated.Errorf(Empty)
		}

		// the first cell of an empty infinite tape is created at the origin
		// whichever direction the head is moving
		tp.origin(tp.blank)
		return nil
	}

	pos := tp.head + delta
	if !tp.exists(pos) {
		if !tp.infinite {
			return curated.Errorf(Overrun, side)
		}
		tp.Append(tp.blank, side)
	}

	tp.head = pos
	return nil
}

// CurrentCell returns the cell under the head. The blank origin cell is
// created if the tape is empty and infinite.
//
// The returned pointer is only valid until the next call to a function that
// moves the head or appends to the tape.
func (tp *Tape) CurrentCell() (*Cell, error) {
	if tp.Len() == 0 {
		if !tp.infinite {
			return nil, curated.Errorf(Empty)
		}
		tp.origin(tp.blank)
	}
	return tp.cell(tp.head), nil
}

// CurrentValue returns the symbol under the head. The blank origin cell is
// created if the tape is empty and infinite.
func (tp *Tape) CurrentValue() (rules.Symbol, error) {
	c, err := tp.CurrentCell()
	if err != nil {
		return "", err
	}
	return c.Symbol, nil
}

// Write symbol to the cell under the head.
func (tp *Tape) Write(symbol rules.Symbol) error {
	c, err := tp.CurrentCell()
	if err != nil {
		return err
	}
	c.Symbol = symbol
	return nil
}

// Symbols returns every symbol on the tape from left to right.
func (tp *Tape) Symbols() []rules.Symbol {
	s := make([]rules.Symbol, 0, tp.Len())
	for i := len(tp.left) - 1; i >= 0; i-- {
		s = append(s, tp.left[i].Symbol)
	}
	for i := range tp.right {
		s = append(s, tp.right[i].Symbol)
	}
	return s
}

// Snapshot creates a copy of the tape in its current state.
func (tp *Tape) Snapshot() *Tape {
	n := *tp
	n.left = append([]Cell(nil), tp.left...)
	n.right = append([]Cell(nil), tp.right...)
	return &n
}

// String renders the tape from left to right. The cell under the head is
// rendered as >s< and every other cell as [s].
func (tp *Tape) String() string {
	s := strings.Builder{}
	for pos := tp.Leftmost(); tp.exists(pos); pos++ {
		if pos == tp.head {
			s.WriteString(">")
			s.WriteString(string(tp.cell(pos).Symbol))
			s.WriteString("<")
		} else {
			s.WriteString("[")
			s.WriteString(string(tp.cell(pos).Symbol))
			s.WriteString("]")
		}
	}
	return s.String()
}
