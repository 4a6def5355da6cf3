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

package machine

import (
	"fmt"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/hardware/rules"
	"github.com/jetsetilly/turing/hardware/tape"
)

// Sentinal errors returned by Step().
const (
	NormalHalt = "normal halt"
	OffTape    = "machine halted: ran off tape: %v"
	NoRule     = "no rule for symbol %q in state %s"
)

// IsNormalHalt returns true if the error indicates a normal halt.
func IsNormalHalt(err error) bool {
	return curated.Is(err, NormalHalt)
}

// IsTerminal returns true if the error is one of the conditions that end a
// run.
func IsTerminal(err error) bool {
	return curated.Is(err, NormalHalt) || curated.Is(err, OffTape) ||
		curated.Is(err, NoRule) || curated.Is(err, tape.Empty)
}

// Machine is a single-tape Turing machine.
type Machine struct {
	name  string
	table *rules.Table
	tape  *tape.Tape
	state rules.State
	steps int
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The table is not copied and must not be changed by the caller.
func NewMachine(name string, table *rules.Table, tp *tape.Tape, start rules.State) *Machine {
	return &Machine{
		name:  name,
		table: table,
		tape:  tp,
		state: start,
	}
}

// Name of the machine.
func (m *Machine) Name() string {
	return m.name
}

// State returns the current state.
func (m *Machine) State() rules.State {
	return m.state
}

// Tape returns the machine's tape. The tape should not be changed by the
// caller.
func (m *Machine) Tape() *tape.Tape {
	return m.tape
}

// Table returns the rule table.
func (m *Machine) Table() *rules.Table {
	return m.table
}

// Steps returns the number of completed steps.
func (m *Machine) Steps() int {
	return m.steps
}

// String renders the machine as the current state followed by the tape.
func (m *Machine) String() string {
	return fmt.Sprintf("(%s) %s", m.state, m.tape)
}

// Step performs a single transition. Returns an error for every terminal
// condition, in which case the state of the machine is unchanged.
//
// With the exception of the OffTape condition, where the head movement
// fails after the write, no part of a failed step is committed.
func (m *Machine) Step() error {
	symbol, err := m.tape.CurrentValue()
	if err != nil {
		return err
	}

	// the start state may be the halt state
	if m.state.Halted() {
		return curated.Errorf(NormalHalt)
	}

	rule, ok := m.table.Lookup(symbol, m.state)
	if !ok {
		return curated.Errorf(NoRule, symbol, m.state)
	}

	// check for halt before writing or moving
	if rule.Next.Halted() {
		return curated.Errorf(NormalHalt)
	}

	cell, err := m.tape.CurrentCell()
	if err != nil {
		return err
	}
	cell.Symbol = rule.Write

	switch rule.Move {
	case rules.Left:
		err = m.tape.MoveLeft()
	case rules.Right:
		err = m.tape.MoveRight()
	}
	if err != nil {
		if curated.Is(err, tape.Overrun) {
			return curated.Errorf(OffTape, err)
		}
		return err
	}

	m.state = rule.Next
	m.steps++

	return nil
}

// Snapshot is a copy of the observable machine state.
type Snapshot struct {
	State rules.State
	Tape  *tape.Tape
	Steps int
}

func (s Snapshot) String() string {
	return fmt.Sprintf("(%s) %s", s.State, s.Tape)
}

// Snapshot creates a copy of the machine's state and tape.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		State: m.state,
		Tape:  m.tape.Snapshot(),
		Steps: m.steps,
	}
}
