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

// Package machineloader reads machine description files and creates a
// machine from them.
//
// The Loader type specifies where the description is to be loaded from.
// Local files and data over HTTP are supported:
//
//	ld := machineloader.NewLoader("machines/increment.tm")
//	m, err := ld.Machine()
//
// A description file has six header lines followed by one line of rules for
// each tape symbol:
//
//	<machine name>
//	INFINITE_TAPE:<true|false>
//	TAPE:<NONE | sym1|sym2|...>
//	DEAFULT_TAPE_SYMBOL:<blank symbol>
//	TAPE_POSITION:<integer N>
//	START_STATE:<state name>
//	<symbol>=<state>:<write>,<L|R|N|integer>,<next>|<state>:...
//
// The misspelled DEAFULT_TAPE_SYMBOL key is the historical spelling and is
// required by existing description files. DEFAULT_TAPE_SYMBOL is also
// accepted.
//
// The head is placed N cells to the right of the first cell on the tape. The
// next state HALT is the halt state. Empty rule lines and lines beginning
// with # are ignored.
//
// A rule for the same symbol and state appearing more than once is an error.
// Rule tables that do not cover every symbol and state pair are accepted
// but a warning is added to the log.
package machineloader
