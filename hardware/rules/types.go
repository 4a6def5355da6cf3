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

package rules

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/turing/curated"
)

// Symbol is a single token of the tape alphabet.
type Symbol string

// HaltName is the reserved state name that ParseState() converts to Halt.
const HaltName = "HALT"

// State is a control state of the machine. The zero value is not a valid
// state.
type State struct {
	name string
	halt bool
}

// Halt is the terminal state.
var Halt = State{name: HaltName, halt: true}

// Running returns a running state with the specified name.
func Running(name string) State {
	return State{name: name}
}

// Halted returns true if the state is the Halt state.
func (s State) Halted() bool {
	return s.halt
}

// Valid returns false for the zero value of State.
func (s State) Valid() bool {
	return s.halt || s.name != ""
}

func (s State) String() string {
	return s.name
}

// Sentinal errors returned by the parse functions.
const (
	InvalidState = "rules: invalid state (%q)"
	InvalidMove  = "rules: invalid movement (%q)"
)

// ParseState converts a state name to a State. The name "HALT" is converted
// to the Halt state. Surrounding white space is ignored.
func ParseState(name string) (State, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "":
		return State{}, curated.Errorf(InvalidState, name)
	case HaltName:
		return Halt, nil
	}
	return Running(name), nil
}

// Move is the movement of the head after a symbol has been written.
type Move int

// List of valid Move values.
const (
	Stay Move = iota
	Left
	Right
)

func (m Move) String() string {
	switch m {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "N"
}

// ParseMove converts a movement token to a Move. Accepted tokens are L, R and
// N (case insensitive) or a signed integer. A positive integer is Right, a
// negative integer is Left and zero is Stay.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "N":
		return Stay, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Stay, curated.Errorf(InvalidMove, s)
	}

	switch {
	case n > 0:
		return Right, nil
	case n < 0:
		return Left, nil
	}
	return Stay, nil
}
