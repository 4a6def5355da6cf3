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

// Package machine implements the stepper of a single-tape Turing machine.
//
// A Machine is created from a rule table, a seeded tape and a start state.
// It is advanced one transition at a time with the Step() function. Every
// step reads the symbol under the head, looks up the rule for the symbol and
// the current state, writes the rule's symbol, moves the head and finally
// changes state.
//
// A rule that leads to the halt state is detected before anything is written
// or moved. The step that finds such a rule leaves the tape exactly as it
// was and returns an error matching the NormalHalt pattern.
//
// All terminal conditions are returned as curated errors:
//
//	NormalHalt    the rule routes to the halt state
//	OffTape       the head moved past the end of a finite tape
//	NoRule        there is no rule for the symbol and state
//	tape.Empty    the tape is finite and has no cells
//
// The IsTerminal() function answers whether an error is any of these.
package machine
