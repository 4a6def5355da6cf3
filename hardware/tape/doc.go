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

// Package tape implements the tape of a single-head Turing machine.
//
// The tape is a sequence of cells with a read/write head. Each cell has a
// logical position relative to the first cell ever created, which is
// position zero. The tape grows at either end on demand if it is infinite;
// a finite tape never grows once seeding is complete and moving past either
// end is an error.
//
// Cells are stored in an arena of two slices, one for the positions to the
// left of the origin and one for the origin and the positions to the right.
// Growing the tape is an append to one of the slices.
//
// Before the head is moved for the first time the tape can be seeded with the
// Append() function. The head stays on the first cell appended.
package tape
