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

package easyterm_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/run"
	"github.com/jetsetilly/turing/run/easyterm"
	"github.com/jetsetilly/turing/test"
)

func TestStepperKeys(t *testing.T) {
	stp := easyterm.NewStepper(strings.NewReader(" \rxyzcq"), nil)

	act, err := stp.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, act, run.Step)

	act, err = stp.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, act, run.Step)

	// unmapped keys are ignored
	act, err = stp.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, act, run.Continue)

	act, err = stp.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, act, run.Quit)

	// end of input
	act, err = stp.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, act, run.Quit)
}

func TestStepperPrompt(t *testing.T) {
	w := &test.CompareWriter{}
	stp := easyterm.NewStepper(strings.NewReader("  "), w)
	_, _ = stp.Wait()
	_, _ = stp.Wait()
	test.ExpectSuccess(t, w.Compare(easyterm.Prompt+easyterm.Prompt))
}

type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestStepperError(t *testing.T) {
	stp := easyterm.NewStepper(failReader{}, nil)
	act, err := stp.Wait()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectEquality(t, act, run.Quit)
}

func TestTerminalNotATerminal(t *testing.T) {
	var term easyterm.Terminal
	test.ExpectFailure(t, term.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, term.Initialise(os.Stdin, nil))

	// a regular file has no terminal attributes
	f, err := os.Create(filepath.Join(t.TempDir(), "notaterm"))
	test.DemandSuccess(t, err)
	defer f.Close()

	err = term.Initialise(f, f)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectEquality(t, term.Width(), 0)
}
