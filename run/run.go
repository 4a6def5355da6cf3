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

package run

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/digest"
	"github.com/jetsetilly/turing/hardware/machine"
	"github.com/jetsetilly/turing/hardware/tape"
	"github.com/jetsetilly/turing/logger"
)

// Reason indicates why a run ended.
type Reason int

// List of valid Reason values.
const (
	LimitReached Reason = iota
	NormalHalt
	OffTape
	NoRule
	EmptyTape
	Interrupted
)

func (r Reason) String() string {
	switch r {
	case LimitReached:
		return "step limit reached"
	case NormalHalt:
		return "normal halt"
	case OffTape:
		return "ran off tape"
	case NoRule:
		return "no rule"
	case EmptyTape:
		return "empty tape"
	case Interrupted:
		return "interrupted"
	}
	return "unknown"
}

// Normal returns true if the reason is counted as a normal end to the
// computation.
func (r Reason) Normal() bool {
	return r == LimitReached || r == NormalHalt
}

// Interrupt is the sentinal error used when the run has been interrupted.
const Interrupt = "user interrupt"

// Action is returned by a Stepper.
type Action int

// List of valid Action values.
const (
	// perform the next step and ask again
	Step Action = iota

	// perform all remaining steps without asking again
	Continue

	// end the run
	Quit
)

// Stepper implementations are consulted before every step.
type Stepper interface {
	Wait() (Action, error)
}

// Options for the Run() function.
type Options struct {
	// maximum number of steps. zero or less for no limit
	Limit int

	// delay between steps
	Pacing time.Duration

	// optional. consulted before every step
	Stepper Stepper

	// optional. every snapshot, including the initial snapshot, is added to
	// the digest
	Digest *digest.Trace

	// do not write the trace. the termination message is still written
	Quiet bool

	// optional. trace lines are clipped to the returned width. a width of
	// zero or less means no clipping. called for every line so the width can
	// change during the run
	Width func() int
}

// Result summarises a completed run.
type Result struct {
	// number of successful steps
	Steps int

	Reason Reason

	// the terminal condition. nil if the step limit was reached
	Err error
}

// reason classifies a terminal error.
func reason(err error) Reason {
	switch {
	case curated.Is(err, machine.NormalHalt):
		return NormalHalt
	case curated.Is(err, machine.OffTape):
		return OffTape
	case curated.Is(err, machine.NoRule):
		return NoRule
	case curated.Is(err, tape.Empty):
		return EmptyTape
	}
	return Interrupted
}

// the banners written around the trace
const (
	beginBanner = "====== COMPUTATION BEGIN ========"
	endBanner   = "======  COMPUTATION END  ========"
)

// Run the machine. A non-nil error is returned only if the run failed for a
// reason that is not a terminal condition of the machine, for example an
// error writing to output.
func Run(ctx context.Context, output io.Writer, m *machine.Machine, opts Options) (Result, error) {
	var res Result

	// the step count is aligned to the width of the limit
	format := "%d. %s"
	if opts.Limit > 0 {
		format = fmt.Sprintf("%%%dd. %%s", len(strconv.Itoa(opts.Limit)))
	}

	w := &writer{out: output}

	if !opts.Quiet {
		w.printf("\nInitial state:\n%s\n", clip(fmt.Sprintf("0. %s", m), opts.Width))
		w.printf("%s\n", beginBanner)
	}
	if opts.Digest != nil {
		opts.Digest.Add(m.Snapshot())
	}

	stepper := opts.Stepper

	for res.Err == nil && w.err == nil {
		if opts.Limit > 0 && res.Steps >= opts.Limit {
			res.Reason = LimitReached
			break // for loop
		}

		if ctx.Err() != nil {
			res.Reason = Interrupted
			res.Err = curated.Errorf(Interrupt)
			break // for loop
		}

		if stepper != nil {
			act, err := stepper.Wait()
			if err != nil {
				return res, err
			}
			switch act {
			case Quit:
				res.Reason = Interrupted
				res.Err = curated.Errorf(Interrupt)
				continue // for loop
			case Continue:
				stepper = nil
			}
		}

		if err := m.Step(); err != nil {
			if !machine.IsTerminal(err) {
				return res, err
			}
			res.Reason = reason(err)
			res.Err = err
			continue // for loop
		}

		res.Steps++

		if !opts.Quiet {
			w.printf("%s\n", clip(fmt.Sprintf(format, res.Steps, m), opts.Width))
		}
		if opts.Digest != nil {
			opts.Digest.Add(m.Snapshot())
		}

		if opts.Pacing > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(opts.Pacing):
			}
		}
	}

	if w.err != nil {
		return res, w.err
	}

	if res.Err == nil {
		if !opts.Quiet {
			w.printf("%s\n", endBanner)
		}
	} else {
		w.printf("Computation ended. (%v)\n", res.Err)
	}

	if res.Reason.Normal() {
		w.printf("Computation complete.\n")
	} else {
		w.printf("Unexpected computation end!\n")
	}

	logger.Logf(logger.Allow, "run", "%s: %s after %d steps", m.Name(), res.Reason, res.Steps)

	return res, w.err
}

// clipMarker ends a trace line that has been clipped.
const clipMarker = "..."

// clip the line to the width returned by the width function.
func clip(line string, width func() int) string {
	if width == nil {
		return line
	}
	n := width()
	if n <= len(clipMarker) {
		return line
	}
	r := []rune(line)
	if len(r) <= n {
		return line
	}
	return string(r[:n-len(clipMarker)]) + clipMarker
}

// writer remembers the first error from the underlying io.Writer. once an
// error has occurred nothing more is written.
type writer struct {
	out io.Writer
	err error
}

func (w *writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}
