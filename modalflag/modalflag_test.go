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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/turing/modalflag"
	"github.com/jetsetilly/turing/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-interactive", "-limit", "100", "machine.tm", "20"})
	interactive := md.AddBool("interactive", false, "single step")
	limit := md.AddInt("limit", 0, "step limit")

	test.ExpectEquality(t, *interactive, false)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *interactive, true)
	test.ExpectEquality(t, *limit, 100)

	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "machine.tm")
	test.ExpectEquality(t, md.GetArg(1), "20")
	test.ExpectEquality(t, md.GetArg(2), "")

	var visited []string
	md.Visit(func(f string) { visited = append(visited, f) })
	test.ExpectEquality(t, len(visited), 2)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"describe", "machine.tm"})
	md.AddSubModes("RUN", "DESCRIBE")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "DESCRIBE")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "machine.tm")
	test.ExpectEquality(t, md.Path(), "DESCRIBE")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"machine.tm"})
	md.AddSubModes("DESCRIBE", "DIGEST")
	md.AddDefaultSubMode("run")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// the argument was not a sub-mode and so has not been consumed
	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "machine.tm")

	// flags for the default mode are not an error at this level
	md = modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-pacing", "1s", "machine.tm"})
	md.AddSubModes("RUN", "DESCRIBE")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	pacing := md.AddDuration("pacing", 0, "delay between steps")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pacing.Seconds(), 1.0)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"run", "-help"})
	md.AddSubModes("RUN", "DESCRIBE")

	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("extra")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage: for RUN mode\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"extra\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}
