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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles the command line of a program with modes and sub-modes.
type Modes struct {
	// where to print help messages. defaults to os.Stdout
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes declared since the most recent call to NewMode(). the first
	// entry is the default
	subModes []string

	// every mode selected by calls to Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. The empty string if no mode
// has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the previous level. Arguments
// not yet consumed by Parse() remain.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the flag and sub-mode information in the
// help message for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if sub-modes were declared then Mode() has been
	// updated
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned as the second return value
	ParseError
)

// Parse the remaining arguments against the flags and sub-modes declared for
// the current level.
func (md *Modes) Parse() (ParseResult, error) {
	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	usage := &usageBuffer{}
	md.flags.SetOutput(usage)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage.help(output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// unknown flags belong to the default sub-mode if there is one
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left after the most recent call to
// Parse().
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the remaining argument at index i. The empty string if there
// is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes declares the sub-modes of the current level. The first sub-mode
// is the default unless AddDefaultSubMode() is called.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddDefaultSubMode declares a sub-mode and makes it the default.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for the current mode.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that was set on the command line.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
