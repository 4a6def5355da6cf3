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

package tape_test

import (
	"testing"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/hardware/rules"
	"github.com/jetsetilly/turing/hardware/tape"
	"github.com/jetsetilly/turing/test"
)

// seed returns a tape with the symbols appended to the right
func seed(infinite bool, symbols ...rules.Symbol) *tape.Tape {
	tp := tape.NewTape(infinite, "_")
	for _, s := range symbols {
		tp.Append(s, tape.RightSide)
	}
	return tp
}

func TestSeeding(t *testing.T) {
	tp := seed(false, "1", "0", "1")
	test.ExpectEquality(t, tp.Len(), 3)
	test.ExpectEquality(t, tp.Position(), 0)
	test.ExpectEquality(t, tp.String(), ">1<[0][1]")

	// appending to the left does not move the head
	tp.Append("x", tape.LeftSide)
	test.ExpectEquality(t, tp.Position(), 0)
	test.ExpectEquality(t, tp.Leftmost(), -1)
	test.ExpectEquality(t, tp.Rightmost(), 2)
	test.ExpectEquality(t, tp.String(), "[x]>1<[0][1]")

	v, err := tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, rules.Symbol("1"))
}

func TestFiniteMovement(t *testing.T) {
	tp := seed(false, "a", "b", "c")

	test.ExpectSuccess(t, tp.MoveRight())
	test.ExpectSuccess(t, tp.MoveRight())
	test.ExpectEquality(t, tp.Position(), 2)
	test.ExpectEquality(t, tp.String(), "[a][b]>c<")

	// overrun on the right does not change the tape
	err := tp.MoveRight()
	test.ExpectSuccess(t, curated.Is(err, tape.Overrun))
	test.ExpectEquality(t, err.Error(), "tape: overrun (right)")
	test.ExpectEquality(t, tp.Len(), 3)
	test.ExpectEquality(t, tp.Position(), 2)
	test.ExpectEquality(t, tp.String(), "[a][b]>c<")

	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectEquality(t, tp.Position(), 0)

	// and on the left
	err = tp.MoveLeft()
	test.ExpectSuccess(t, curated.Is(err, tape.Overrun))
	test.ExpectEquality(t, err.Error(), "tape: overrun (left)")
	test.ExpectEquality(t, tp.Len(), 3)
	test.ExpectEquality(t, tp.Position(), 0)
}

func TestInfiniteGrowth(t *testing.T) {
	tp := seed(true, "1")

	test.ExpectSuccess(t, tp.MoveRight())
	test.ExpectEquality(t, tp.Len(), 2)
	test.ExpectEquality(t, tp.Position(), 1)
	v, err := tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, rules.Symbol("_"))

	// moving back does not create a new cell
	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectEquality(t, tp.Len(), 2)
	test.ExpectEquality(t, tp.Position(), 0)
	test.ExpectEquality(t, tp.String(), ">1<[_]")

	// grow to the left of the origin
	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectEquality(t, tp.Len(), 4)
	test.ExpectEquality(t, tp.Position(), -2)
	test.ExpectEquality(t, tp.Leftmost(), -2)
	test.ExpectEquality(t, tp.String(), ">_<[_][1][_]")

	// right then left from a boundary returns to the same cell
	test.ExpectSuccess(t, tp.Write("x"))
	test.ExpectSuccess(t, tp.MoveRight())
	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectEquality(t, tp.Len(), 4)
	v, err = tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, rules.Symbol("x"))
}

// the positions of cells are contiguous and never duplicated however the
// head wanders
func TestInfiniteWander(t *testing.T) {
	tp := tape.NewTape(true, "_")

	moves := "RRLLLLLRRRRRRRRLLL"
	for _, m := range moves {
		if m == 'R' {
			test.DemandSuccess(t, tp.MoveRight())
		} else {
			test.DemandSuccess(t, tp.MoveLeft())
		}
		test.ExpectEquality(t, tp.Len(), tp.Rightmost()-tp.Leftmost()+1)
		test.ExpectEquality(t, len(tp.Symbols()), tp.Len())
	}

	// first move materialises the origin, the rest move the head from there
	test.ExpectEquality(t, tp.Position(), 1)
	test.ExpectEquality(t, tp.Leftmost(), -4)
	test.ExpectEquality(t, tp.Rightmost(), 4)
}

func TestEmptyInfinite(t *testing.T) {
	tp := tape.NewTape(true, "_")
	test.ExpectEquality(t, tp.Len(), 0)
	test.ExpectEquality(t, tp.String(), "")

	v, err := tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, rules.Symbol("_"))
	test.ExpectEquality(t, tp.Len(), 1)
	test.ExpectEquality(t, tp.Position(), 0)
	test.ExpectEquality(t, tp.String(), ">_<")

	// a second call does not create another cell
	_, err = tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tp.Len(), 1)
}

func TestEmptyInfiniteMove(t *testing.T) {
	tp := tape.NewTape(true, "_")
	test.ExpectSuccess(t, tp.MoveLeft())
	test.ExpectEquality(t, tp.Len(), 1)
	test.ExpectEquality(t, tp.Position(), 0)

	tp = tape.NewTape(true, "_")
	test.ExpectSuccess(t, tp.MoveRight())
	test.ExpectEquality(t, tp.Len(), 1)
	test.ExpectEquality(t, tp.Position(), 0)
}

func TestEmptyFinite(t *testing.T) {
	tp := tape.NewTape(false, "_")

	_, err := tp.CurrentValue()
	test.ExpectSuccess(t, curated.Is(err, tape.Empty))

	_, err = tp.CurrentCell()
	test.ExpectSuccess(t, curated.Is(err, tape.Empty))

	test.ExpectSuccess(t, curated.Is(tp.MoveLeft(), tape.Empty))
	test.ExpectSuccess(t, curated.Is(tp.MoveRight(), tape.Empty))
	test.ExpectSuccess(t, curated.Is(tp.Write("x"), tape.Empty))
	test.ExpectEquality(t, tp.Len(), 0)
}

func TestWriteThenRead(t *testing.T) {
	tp := seed(false, "0", "0")

	c, err := tp.CurrentCell()
	test.DemandSuccess(t, err)
	c.Symbol = "X"

	v, err := tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, rules.Symbol("X"))

	test.ExpectSuccess(t, tp.MoveRight())
	test.ExpectSuccess(t, tp.Write("Y"))
	v, err = tp.CurrentValue()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, rules.Symbol("Y"))
	test.ExpectEquality(t, tp.String(), "[X]>Y<")
}

func TestSnapshot(t *testing.T) {
	tp := seed(true, "a", "b")
	snap := tp.Snapshot()

	test.ExpectSuccess(t, tp.Write("z"))
	test.ExpectSuccess(t, tp.MoveLeft())

	test.ExpectEquality(t, snap.String(), ">a<[b]")
	test.ExpectEquality(t, snap.Len(), 2)
	test.ExpectEquality(t, tp.String(), ">_<[z][b]")
	test.ExpectSuccess(t, snap.Infinite())
	test.ExpectEquality(t, snap.Blank(), rules.Symbol("_"))
}
