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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/jetsetilly/turing/describe"
	"github.com/jetsetilly/turing/digest"
	"github.com/jetsetilly/turing/dump"
	"github.com/jetsetilly/turing/hardware/machine"
	"github.com/jetsetilly/turing/logger"
	"github.com/jetsetilly/turing/machineloader"
	"github.com/jetsetilly/turing/modalflag"
	"github.com/jetsetilly/turing/run"
	"github.com/jetsetilly/turing/run/easyterm"
	"github.com/jetsetilly/turing/statsview"
	"github.com/jetsetilly/turing/version"
)

// exit values returned by launch()
const (
	exitOkay       = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc stops the machine between steps
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(ctx context.Context, output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("DESCRIBE", "DIGEST", "DUMP", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOkay

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = runMachine(ctx, output, md)

	case "DESCRIBE":
		err = describeMachine(output, md)

	case "DIGEST":
		err = digestMachine(ctx, output, md)

	case "DUMP":
		err = dumpMachine(ctx, output, md)

	case "VERSION":
		err = showVersion(output, md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOkay
}

// parseLimit converts the optional step limit argument. the empty string
// returns the default value.
func parseLimit(arg string, def int) (int, error) {
	if arg == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("step limit must be a number (%s)", arg)
	}
	return limit, nil
}

// loadMachine from the filename argument. if there is no filename argument
// then the default filename is used, if there is one. the filename and the
// step limit argument are returned unparsed.
func loadMachine(md *modalflag.Modes, defFilename string) (*machine.Machine, string, string, error) {
	filename := md.GetArg(0)

	switch len(md.RemainingArgs()) {
	case 0:
		if defFilename == "" {
			return nil, "", "", fmt.Errorf("machine description required for %s mode", md)
		}
		filename = defFilename
	case 1, 2:
	default:
		return nil, "", "", fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := machineloader.NewLoader(filename)
	m, err := ld.Machine()
	if err != nil {
		return nil, "", "", err
	}
	logger.Logf(logger.Allow, "turing", "loaded %s (%s)", ld.ShortName(), ld.Hash)

	return m, filename, md.GetArg(1), nil
}

const runHelp = `The step limit argument is optional. Without it the step limit preference
is used. A step limit of zero means the machine runs until it halts.

Without a filename the machine most recently saved with -saveprefs is run.

In interactive mode press space or enter to perform the next step, c to
continue without stopping and q to quit.`

func runMachine(ctx context.Context, output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	prf, err := run.NewPreferences()
	if err != nil {
		return err
	}

	pacing := md.AddDuration("pacing", prf.PacingDuration(), "delay between steps")
	interactive := md.AddBool("interactive", false, "wait for key press before every step")
	showDesc := md.AddBool("describe", prf.Describe.Get().(bool), "print the machine description before the computation")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	tail := md.AddInt("tail", 0, "number of log entries to print if the computation ends unexpectedly")
	showDigest := md.AddBool("digest", false, "print digest of trace at end of computation")
	savePrefs := md.AddBool("saveprefs", false, "save the machine and any pacing, describe or step limit values given as the new defaults")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp(runHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	// the tail of the log should only show entries for this machine
	logger.Clear()

	m, filename, arg, err := loadMachine(md, prf.LastMachine.String())
	if err != nil {
		return err
	}

	limit, err := parseLimit(arg, prf.Limit.Get().(int))
	if err != nil {
		return err
	}

	if *savePrefs {
		set := make(map[string]bool)
		md.Visit(func(f string) {
			set[f] = true
		})

		if set["pacing"] {
			if err := prf.Pacing.Set(*pacing); err != nil {
				return err
			}
		}
		if set["describe"] {
			if err := prf.Describe.Set(*showDesc); err != nil {
				return err
			}
		}
		if arg != "" {
			if err := prf.Limit.Set(limit); err != nil {
				return err
			}
		}
		if err := prf.LastMachine.Set(filename); err != nil {
			return err
		}
		if err := prf.Save(); err != nil {
			return err
		}
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	if *showDesc {
		if err := describe.Write(output, m); err != nil {
			return err
		}
	}

	opts := run.Options{
		Limit:  limit,
		Pacing: *pacing,
	}

	if *showDigest {
		opts.Digest = digest.NewTrace()
	}

	if *interactive {
		var term easyterm.Terminal
		if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		defer term.CleanUp()

		if err := term.CBreakMode(); err != nil {
			return err
		}

		opts.Stepper = term.Stepper()
		opts.Width = term.Width
		opts.Pacing = 0
	}

	res, err := run.Run(ctx, output, m, opts)
	if err != nil {
		return err
	}

	if !res.Reason.Normal() && *tail > 0 {
		fmt.Fprintln(output, "Recent log entries:")
		logger.Tail(output, *tail)
	}

	if opts.Digest != nil {
		fmt.Fprintf(output, "digest: %s\n", opts.Digest)
	}

	return nil
}

func describeMachine(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "write the loader log after the description")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	logger.Clear()

	m, _, _, err := loadMachine(md, "")
	if err != nil {
		return err
	}

	if err := describe.Write(output, m); err != nil {
		return err
	}

	if *log {
		logger.Write(output)
	}

	return nil
}

func digestMachine(ctx context.Context, output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	verify := md.AddString("verify", "", "expected digest. mismatches are an error")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, _, arg, err := loadMachine(md, "")
	if err != nil {
		return err
	}

	limit, err := parseLimit(arg, 0)
	if err != nil {
		return err
	}

	dig := digest.NewTrace()
	res, err := run.Run(ctx, io.Discard, m, run.Options{
		Limit:  limit,
		Digest: dig,
		Quiet:  true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s (%d steps, %s)\n", dig, res.Steps, res.Reason)

	if *verify != "" && *verify != dig.Hash() {
		return fmt.Errorf("digest does not match %s", *verify)
	}

	return nil
}

func dumpMachine(ctx context.Context, output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	steps := md.AddInt("steps", 0, "number of steps to run before the dump")
	out := md.AddString("out", "", "write dump to file rather than stdout")
	whole := md.AddBool("machine", false, "dump the entire machine and not just the tape")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, _, _, err := loadMachine(md, "")
	if err != nil {
		return err
	}

	if *steps > 0 {
		_, err = run.Run(ctx, io.Discard, m, run.Options{Limit: *steps, Quiet: true})
		if err != nil {
			return err
		}
	}

	w := output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if *whole {
		return dump.Machine(w, m)
	}
	return dump.Tape(w, m.Tape())
}

func showVersion(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
