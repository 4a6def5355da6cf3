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

// Package run drives a machine from its initial configuration until it
// halts, runs into an error or reaches a step limit. Every step is written to
// an io.Writer as a single line, numbered from one:
//
//	1. (q0) [1]>0<[1]
//
// The initial configuration is written first as step zero. When the run ends
// the cause is written, followed by a line that says whether the computation
// completed normally.
//
// Steps can be paced with a fixed delay and can be gated by a Stepper, which
// is how interactive single stepping is implemented by the easyterm
// sub-package.
package run
