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

package machineloader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/hardware/machine"
	"github.com/jetsetilly/turing/hardware/rules"
	"github.com/jetsetilly/turing/hardware/tape"
	"github.com/jetsetilly/turing/logger"
)

// Sentinal errors returned by Parse().
const (
	MissingHeader = "line %d: expected %s"
	InvalidHeader = "line %d: invalid %s value (%s)"
	InvalidRule   = "line %d: %v"
	InvalidTable  = "rule table: %v"
	SeekFailure   = "tape position %d: %v"
)

// header keys in the order they appear in the file
const (
	keyInfinite = "INFINITE_TAPE"
	keyTape     = "TAPE"
	keyBlank    = "DEAFULT_TAPE_SYMBOL"
	keyPosition = "TAPE_POSITION"
	keyStart    = "START_STATE"
)

// alternative spelling for keyBlank
const keyBlankAlt = "DEFAULT_TAPE_SYMBOL"

// the value of keyTape that indicates an empty tape
const emptyTape = "NONE"

// separators used in the rules lines
const (
	symbolSep = "="
	stateSep  = "|"
	actionSep = ":"
	fieldSep  = ","
)

// lineReader numbers the lines of the description.
type lineReader struct {
	scanner *bufio.Scanner
	num     int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.scanner.Scan() {
		return "", false
	}
	lr.num++
	return strings.TrimRight(lr.scanner.Text(), "\r"), true
}

// header reads the next line and returns the value for the specified key.
// alternative keys are permitted.
func (lr *lineReader) header(key string, alt ...string) (string, error) {
	l, ok := lr.next()
	if !ok {
		return "", curated.Errorf(MissingHeader, lr.num+1, key)
	}

	l = strings.TrimSpace(l)
	for _, k := range append([]string{key}, alt...) {
		if strings.HasPrefix(l, k+actionSep) {
			return strings.TrimSpace(strings.TrimPrefix(l, k+actionSep)), nil
		}
	}

	return "", curated.Errorf(MissingHeader, lr.num, key)
}

// Parse a machine description.
func Parse(r io.Reader) (*machine.Machine, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}

	name, ok := lr.next()
	if !ok {
		return nil, curated.Errorf(MissingHeader, 1, "machine name")
	}
	name = strings.TrimSpace(name)

	v, err := lr.header(keyInfinite)
	if err != nil {
		return nil, err
	}
	infinite := strings.EqualFold(v, "true")

	symbols, err := lr.header(keyTape)
	if err != nil {
		return nil, err
	}

	blank, err := lr.header(keyBlank, keyBlankAlt)
	if err != nil {
		return nil, err
	}
	if blank == "" {
		return nil, curated.Errorf(InvalidHeader, lr.num, keyBlank, blank)
	}

	tp := tape.NewTape(infinite, rules.Symbol(blank))
	if symbols != emptyTape {
		for _, s := range strings.Split(symbols, stateSep) {
			tp.Append(rules.Symbol(strings.TrimSpace(s)), tape.RightSide)
		}
	}

	v, err = lr.header(keyPosition)
	if err != nil {
		return nil, err
	}
	pos, err := strconv.Atoi(v)
	if err != nil {
		return nil, curated.Errorf(InvalidHeader, lr.num, keyPosition, v)
	}

	// a negative position is the same as zero. the head of an empty finite
	// tape cannot move so the position is ignored. the empty tape is
	// reported by the first step of the machine
	if !infinite && tp.Len() == 0 {
		pos = 0
	}
	for i := 0; i < pos; i++ {
		if err := tp.MoveRight(); err != nil {
			return nil, curated.Errorf(SeekFailure, pos, err)
		}
	}

	v, err = lr.header(keyStart)
	if err != nil {
		return nil, err
	}
	start, err := rules.ParseState(v)
	if err != nil {
		return nil, curated.Errorf(InvalidHeader, lr.num, keyStart, v)
	}

	// an empty infinite tape gets its first cell now
	if infinite {
		if _, err := tp.CurrentValue(); err != nil {
			return nil, err
		}
	}

	var entries []rules.Entry
	for {
		l, ok := lr.next()
		if !ok {
			break // for loop
		}

		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue // for loop
		}

		e, err := parseRules(l)
		if err != nil {
			return nil, curated.Errorf(InvalidRule, lr.num, err)
		}
		entries = append(entries, e...)
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, err
	}

	tbl, err := rules.NewTable(entries...)
	if err != nil {
		return nil, curated.Errorf(InvalidTable, err)
	}

	logger.Logf(logger.Allow, "machineloader", "%s: %d rules for %d symbols and %d states",
		name, tbl.Len(), len(tbl.Symbols()), len(tbl.States()))

	if missing := tbl.Missing(); len(missing) > 0 {
		s := make([]string, len(missing))
		for i := range missing {
			s[i] = missing[i].String()
		}
		logger.Logf(logger.Allow, "machineloader", "%s: no rules for %s", name, strings.Join(s, ", "))
	}

	return machine.NewMachine(name, tbl, tp, start), nil
}

// parseRules parses a single line of the rules table. the line has the form:
//
//	<symbol>=<state>:<write>,<move>,<next>|<state>:...
func parseRules(l string) ([]rules.Entry, error) {
	sym, states, ok := strings.Cut(l, symbolSep)
	if !ok {
		return nil, curated.Errorf("missing %q after symbol", symbolSep)
	}

	sym = strings.TrimSpace(sym)
	if sym == "" {
		return nil, curated.Errorf("missing symbol")
	}

	var entries []rules.Entry

	for _, st := range strings.Split(states, stateSep) {
		state, action, ok := strings.Cut(st, actionSep)
		if !ok {
			return nil, curated.Errorf("missing %q after state for symbol %q", actionSep, sym)
		}

		s, err := rules.ParseState(state)
		if err != nil {
			return nil, err
		}

		f := strings.Split(action, fieldSep)
		if len(f) != 3 {
			return nil, curated.Errorf("rule for symbol %q in state %s requires three fields", sym, s)
		}

		mv, err := rules.ParseMove(f[1])
		if err != nil {
			return nil, err
		}

		next, err := rules.ParseState(f[2])
		if err != nil {
			return nil, err
		}

		entries = append(entries, rules.Entry{
			Key: rules.Key{
				Symbol: rules.Symbol(sym),
				State:  s,
			},
			Rule: rules.Rule{
				Write: rules.Symbol(strings.TrimSpace(f[0])),
				Move:  mv,
				Next:  next,
			},
		})
	}

	return entries, nil
}
