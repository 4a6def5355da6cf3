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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function is the most basic helper. It compares two
// comparable values and fails the test (but does not stop it) if they differ.
//
// The ExpectSuccess() and ExpectFailure() functions accept bool and error
// values. For error values success means the error is nil.
//
// The Demand*() variants call t.Fatal() rather than t.Error().
//
// The CompareWriter and RingWriter types are io.Writer implementations
// useful for capturing output.
package test
