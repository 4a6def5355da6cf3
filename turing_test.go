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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/turing/test"
)

const (
	increment = "machineloader/testdata/increment.tm"
	beaver    = "machineloader/testdata/beaver.tm"
	offTape   = "testdata/offtape.tm"
)

// configure a temporary user config directory so that preferences are not
// read from or written to the real one
func tempConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestRunMode(t *testing.T) {
	tempConfig(t)

	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"-pacing", "0", "-digest", increment})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(w.String(), "Computation ended. (normal halt)\nComputation complete.\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "digest: "))

	// the machine description comes before the trace
	out := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "Machine: Binary increment\n"))
	tbl := strings.Index(out, "Rules table:")
	initial := strings.Index(out, "Initial state:")
	test.ExpectSuccess(t, tbl > 0)
	test.ExpectSuccess(t, initial > tbl)

	w.Clear()
	v = launch(context.Background(), w, []string{"run", "-pacing", "0", "-describe=false", increment})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "\nInitial state:\n"))
	test.ExpectFailure(t, strings.Contains(w.String(), "Rules table:"))

	w.Clear()
	v = launch(context.Background(), w, []string{"run", "-pacing", "0", beaver, "5"})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(w.String(), "======  COMPUTATION END  ========\n"))

	w.Clear()
	v = launch(context.Background(), w, []string{"run", beaver, "many"})
	test.ExpectEquality(t, v, exitModeError)

	w.Clear()
	v = launch(context.Background(), w, []string{"run"})
	test.ExpectEquality(t, v, exitModeError)
}

func TestSavePrefs(t *testing.T) {
	tempConfig(t)

	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"run", "-pacing", "0", "-saveprefs", beaver, "3"})
	test.DemandEquality(t, v, exitOkay)

	// the saved step limit is used when none is given
	w.Clear()
	v = launch(context.Background(), w, []string{"run", beaver})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(w.String(), "3. "))
	test.ExpectFailure(t, strings.Contains(w.String(), "4. "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "======  COMPUTATION END  ========\n"))

	// the saved machine is used when no filename is given
	w.Clear()
	v = launch(context.Background(), w, []string{"run"})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Machine: Three state busy beaver\n"))

	// a negative step limit cannot be saved
	w.Clear()
	v = launch(context.Background(), w, []string{"run", "-saveprefs", beaver, "-1"})
	test.ExpectEquality(t, v, exitModeError)
}

func TestLogTail(t *testing.T) {
	tempConfig(t)

	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"run", "-pacing", "0", "-tail", "1", offTape})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.HasSuffix(w.String(),
		"Unexpected computation end!\nRecent log entries:\nrun: Off tape: ran off tape after 2 steps\n"))

	// nothing from the log after a normal end
	w.Clear()
	v = launch(context.Background(), w, []string{"run", "-pacing", "0", "-tail", "1", increment})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectFailure(t, strings.Contains(w.String(), "Recent log entries:"))
}

func TestDescribeMode(t *testing.T) {
	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"describe", increment})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Machine: Binary increment\n"))
	test.ExpectFailure(t, strings.Contains(w.String(), "machineloader: "))

	w.Clear()
	v = launch(context.Background(), w, []string{"describe", "-log", increment})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(w.String(), "machineloader: Binary increment: 3 rules for 3 symbols and 1 states\n"))

	w.Clear()
	v = launch(context.Background(), w, []string{"describe", increment, "10"})
	test.ExpectEquality(t, v, exitModeError)

	w.Clear()
	v = launch(context.Background(), w, []string{"describe", "-nosuchflag", increment})
	test.ExpectEquality(t, v, exitModeError)

	w.Clear()
	v = launch(context.Background(), w, []string{"describe", "nosuchfile.tm"})
	test.ExpectEquality(t, v, exitModeError)
}

func TestDigestMode(t *testing.T) {
	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"digest", beaver})
	test.DemandEquality(t, v, exitOkay)

	hash, detail, ok := strings.Cut(strings.TrimSpace(w.String()), " ")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(hash), 40)
	test.ExpectEquality(t, detail, "(13 steps, normal halt)")

	w.Clear()
	v = launch(context.Background(), w, []string{"digest", "-verify", hash, beaver})
	test.ExpectEquality(t, v, exitOkay)

	w.Clear()
	v = launch(context.Background(), w, []string{"digest", "-verify", hash, beaver, "12"})
	test.ExpectEquality(t, v, exitModeError)
}

func TestDumpMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.dot")

	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"dump", "-steps", "4", "-out", fn, beaver})
	test.DemandEquality(t, v, exitOkay)

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(d), "digraph"))

	w.Clear()
	v = launch(context.Background(), w, []string{"dump", "-machine", increment})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "digraph"))
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"version"})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Turing "))
}

func TestHelp(t *testing.T) {
	tempConfig(t)

	w := &test.CompareWriter{}
	v := launch(context.Background(), w, []string{"-help"})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: RUN, DESCRIBE, DIGEST, DUMP, VERSION"))

	w.Clear()
	v = launch(context.Background(), w, []string{"run", "-help"})
	test.ExpectEquality(t, v, exitOkay)
	test.ExpectSuccess(t, strings.Contains(w.String(), "Usage: for RUN mode\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "In interactive mode press space"))
}
