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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/turing/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key and the value on each line of the file.
const KeySep = " :: "

// Sentinal errors.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	DuplicateKey = "prefs: key already registered (%s)"
	InvalidFile  = "prefs: %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the Disk under the supplied key.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preferences to their default values.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the key/value pairs from the prefs file.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(InvalidFile, dsk.path, err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		l := scanner.Text()
		if first {
			first = false
			if l == WarningBoilerPlate {
				continue
			}
		}

		k, v, ok := strings.Cut(l, KeySep)
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(InvalidFile, dsk.path, err)
	}

	return values, nil
}

// Load preference values from disk. If saveOnFirstUse is true and the file
// does not exist then the current values are saved to create the file.
//
// An error matching NoPrefsFile is returned if the file does not exist and
// saveOnFirstUse is false.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	values, err := dsk.read()
	if err != nil {
		if saveOnFirstUse && curated.Is(err, NoPrefsFile) {
			return dsk.Save()
		}
		return err
	}

	for k, v := range values {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(InvalidFile, dsk.path, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Values in the file that have not
// been registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(InvalidFile, dsk.path, err)
	}

	return nil
}
