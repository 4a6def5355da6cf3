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
	"fmt"
	"time"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/logger"
	"github.com/jetsetilly/turing/paths"
	"github.com/jetsetilly/turing/prefs"
)

// default values for the run preferences
const (
	defaultPacing   = 10 * time.Millisecond
	defaultLimit    = 0
	defaultDescribe = true
)

// InvalidLimit is the sentinal error returned when the Limit preference is
// set to a negative value.
const InvalidLimit = "run: step limit cannot be negative (%d)"

// Preferences defines and collates the preference values used when running a
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// delay between steps. stored on disk as a duration string, eg. 10ms
	Pacing *prefs.Generic
	pacing time.Duration

	// step limit used when no limit is given on the command line. zero for
	// no limit
	Limit prefs.Int

	// write the machine description before the computation begins
	Describe prefs.Bool

	// filename of the most recently run machine. used when no filename is
	// given on the command line
	LastMachine prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFile(pth)
}

// NewPreferencesFile is like NewPreferences but values are loaded from the
// specified file.
func NewPreferencesFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Pacing = prefs.NewGeneric(
		func(v prefs.Value) error {
			switch v := v.(type) {
			case time.Duration:
				p.pacing = v
			case string:
				d, err := time.ParseDuration(v)
				if err != nil {
					return fmt.Errorf("run: pacing: %w", err)
				}
				p.pacing = d
			default:
				return fmt.Errorf("run: pacing: cannot use %T", v)
			}
			return nil
		},
		func() prefs.Value {
			return p.pacing
		},
	)

	p.Limit.SetHookPre(func(v prefs.Value) error {
		if n, ok := v.(int); ok && n < 0 {
			return curated.Errorf(InvalidLimit, n)
		}
		return nil
	})

	p.LastMachine.SetHookPost(func(v prefs.Value) error {
		if s, ok := v.(string); ok && s != "" {
			logger.Logf(logger.Allow, "run", "last machine: %s", s)
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.pacing", p.Pacing)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.limit", &p.Limit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.describe", &p.Describe)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.last", &p.LastMachine)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Pacing.Set(defaultPacing); err != nil {
		return err
	}
	if err := p.Limit.Set(defaultLimit); err != nil {
		return err
	}
	if err := p.Describe.Set(defaultDescribe); err != nil {
		return err
	}
	return p.LastMachine.Set("")
}

// PacingDuration returns the Pacing value as a time.Duration.
func (p *Preferences) PacingDuration() time.Duration {
	return p.pacing
}

// Load current run preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current run preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
