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

// Package rules defines the vocabulary of a Turing machine: tape symbols,
// control states, head movements and the transition table.
//
// States are a closed variant. A State is either Halt or a running state
// created with Running(). The halt test is the Halted() function and never a
// comparison of names. The reserved name "HALT" is only meaningful to
// ParseState(), which is intended for use by file format adapters.
//
// A Table is built once with NewTable() and is read-only afterwards. Duplicate
// (symbol, state) keys are rejected during construction. A table is not
// required to be total over the cross product of its symbols and states; the
// Missing() function lists the gaps.
package rules
