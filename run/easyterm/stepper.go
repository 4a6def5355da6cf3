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

package easyterm

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/run"
)

// Prompt is written before every key press is waited for.
const Prompt = "[space] step  [c] continue  [q] quit\r"

// Stepper implements the run.Stepper interface. Each call to Wait() reads key
// presses until one of them maps to an action.
type Stepper struct {
	input  io.Reader
	prompt io.Writer
}

// NewStepper is the preferred method of initialisation for the Stepper type.
// The prompt argument can be nil.
func NewStepper(input io.Reader, prompt io.Writer) *Stepper {
	return &Stepper{
		input:  input,
		prompt: prompt,
	}
}

// Wait implements the run.Stepper interface.
func (stp *Stepper) Wait() (run.Action, error) {
	if stp.prompt != nil {
		if _, err := fmt.Fprint(stp.prompt, Prompt); err != nil {
			return run.Quit, err
		}
	}

	b := make([]byte, 1)
	for {
		n, err := stp.input.Read(b)
		if err != nil {
			// end of input is treated like a quit key
			if errors.Is(err, io.EOF) {
				return run.Quit, nil
			}
			return run.Quit, curated.Errorf("easyterm: %v", err)
		}
		if n == 0 {
			continue // for loop
		}

		switch b[0] {
		case KeySpace, KeyCarriageReturn, KeyLineFeed, 's', 'S':
			return run.Step, nil
		case 'c', 'C':
			return run.Continue, nil
		case 'q', 'Q', KeyEsc, KeyCtrlC, KeyCtrlD:
			return run.Quit, nil
		}
	}
}
