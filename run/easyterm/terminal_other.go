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

//go:build !unix

package easyterm

import (
	"os"

	"github.com/jetsetilly/turing/curated"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is not supported on this platform. Initialise() will always fail.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise always returns an error on this platform.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return curated.Errorf("easyterm: interactive terminal not supported on this platform")
}

// CleanUp does nothing on this platform.
func (pt *Terminal) CleanUp() {
}

// CanonicalMode does nothing on this platform.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// CBreakMode does nothing on this platform.
func (pt *Terminal) CBreakMode() error {
	return nil
}

// UpdateGeometry does nothing on this platform.
func (pt *Terminal) UpdateGeometry() error {
	return nil
}

// Geometry returns the zero value on this platform.
func (pt *Terminal) Geometry() TermGeometry {
	return TermGeometry{}
}

// Width returns zero on this platform.
func (pt *Terminal) Width() int {
	return 0
}

// Stepper returns a new Stepper using the terminal's input and output files.
func (pt *Terminal) Stepper() *Stepper {
	return NewStepper(pt.input, pt.output)
}
