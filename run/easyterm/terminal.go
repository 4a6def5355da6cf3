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

//go:build unix

package easyterm

import (
	"os"
	"os/signal"
	"sync"

	"github.com/jetsetilly/turing/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// closed by CleanUp() to stop the resize watcher
	done chan struct{}
	ack  chan struct{}

	mu       sync.Mutex
	geometry TermGeometry
}

// Initialise the fields in the Terminal struct. The terminal is left in
// canonical mode. The geometry is kept up to date until CleanUp() is called.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf("easyterm: Terminal requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf("easyterm: Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	// geometry is not available if output is not a terminal. the width
	// will be zero in that case
	_ = pt.UpdateGeometry()

	pt.done = make(chan struct{})
	pt.ack = make(chan struct{})

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			close(pt.ack)
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.done:
				return
			}
		}
	}()

	return nil
}

// CleanUp stops the resize watcher and restores the terminal to canonical
// mode.
func (pt *Terminal) CleanUp() {
	if pt.done != nil {
		close(pt.done)
		<-pt.ack
		pt.done = nil
	}
	_ = pt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available to the
// input file immediately and are not echoed.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: error updating terminal geometry information: %v", err)
	}
	pt.geometry.Rows = ws.Row
	pt.geometry.Cols = ws.Col
	return nil
}

// Geometry returns the most recent dimensions found by UpdateGeometry().
func (pt *Terminal) Geometry() TermGeometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// Width returns the number of columns in the output terminal. Suitable for
// the Width field of run.Options.
func (pt *Terminal) Width() int {
	return int(pt.Geometry().Cols)
}

// Stepper returns a new Stepper using the terminal's input and output files.
func (pt *Terminal) Stepper() *Stepper {
	return NewStepper(pt.input, pt.output)
}
