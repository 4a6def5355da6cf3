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

package rules

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/turing/curated"
)

// Rule is the action taken by the machine for a single (symbol, state) pair.
type Rule struct {
	Write Symbol
	Move  Move
	Next  State
}

func (r Rule) String() string {
	return fmt.Sprintf("%s, %s, %s", r.Write, r.Move, r.Next)
}

// Key identifies a Rule in the Table.
type Key struct {
	Symbol Symbol
	State  State
}

func (k Key) String() string {
	return fmt.Sprintf("%s=%s", k.Symbol, k.State)
}

// Entry is used to construct a Table.
type Entry struct {
	Key
	Rule Rule
}

// Sentinal errors returned by NewTable().
const (
	DuplicateRule = "rules: duplicate rule for symbol %q in state %s"
	HaltedRule    = "rules: rule for symbol %q cannot be keyed on the halt state"
	BadRule       = "rules: rule for symbol %q in state %q: %s"
)

// Table is the transition table of the machine. It is read-only once
// created.
type Table struct {
	rules   map[Key]Rule
	symbols []Symbol
	states  []State
}

// NewTable is the preferred method of initialisation for the Table type.
// Duplicate keys are an error.
func NewTable(entries ...Entry) (*Table, error) {
	tbl := &Table{
		rules: make(map[Key]Rule, len(entries)),
	}

	symbols := make(map[Symbol]bool)
	states := make(map[State]bool)

	for _, e := range entries {
		if e.State.Halted() {
			return nil, curated.Errorf(HaltedRule, e.Symbol)
		}
		if !e.State.Valid() {
			return nil, curated.Errorf(BadRule, e.Symbol, e.State, "no state")
		}
		if !e.Rule.Next.Valid() {
			return nil, curated.Errorf(BadRule, e.Symbol, e.State, "no next state")
		}
		if _, ok := tbl.rules[e.Key]; ok {
			return nil, curated.Errorf(DuplicateRule, e.Symbol, e.State)
		}

		tbl.rules[e.Key] = e.Rule
		symbols[e.Symbol] = true
		states[e.State] = true
	}

	for s := range symbols {
		tbl.symbols = append(tbl.symbols, s)
	}
	sort.Slice(tbl.symbols, func(i, j int) bool {
		return tbl.symbols[i] < tbl.symbols[j]
	})

	for s := range states {
		tbl.states = append(tbl.states, s)
	}
	sort.Slice(tbl.states, func(i, j int) bool {
		return tbl.states[i].name < tbl.states[j].name
	})

	return tbl, nil
}

// Lookup the rule for the symbol and state.
func (tbl *Table) Lookup(symbol Symbol, state State) (Rule, bool) {
	r, ok := tbl.rules[Key{Symbol: symbol, State: state}]
	return r, ok
}

// Len returns the number of rules in the table.
func (tbl *Table) Len() int {
	return len(tbl.rules)
}

// Symbols returns the sorted list of symbols that have at least one rule.
func (tbl *Table) Symbols() []Symbol {
	return append([]Symbol(nil), tbl.symbols...)
}

// States returns the sorted list of states that have at least one rule.
func (tbl *Table) States() []State {
	return append([]State(nil), tbl.states...)
}

// Missing returns the (symbol, state) pairs of the cross product of Symbols()
// and States() for which there is no rule.
func (tbl *Table) Missing() []Key {
	var m []Key
	for _, sym := range tbl.symbols {
		for _, st := range tbl.states {
			k := Key{Symbol: sym, State: st}
			if _, ok := tbl.rules[k]; !ok {
				m = append(m, k)
			}
		}
	}
	return m
}
