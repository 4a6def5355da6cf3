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
	"fmt"
	"io"
	"strings"
)

// usageBuffer collects the usage message written by the flag package so
// that it can be rewritten with the mode and sub-mode information.
type usageBuffer struct {
	b strings.Builder
}

func (u *usageBuffer) Write(p []byte) (int, error) {
	return u.b.Write(p)
}

func (u *usageBuffer) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	s := u.b.String()

	// the flag package writes only the heading if there are no flags
	if s == "Usage:\n" && len(subModes) == 0 {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	heading, flags, _ := strings.Cut(s, "\n")
	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", heading, path)
	} else {
		fmt.Fprintln(output, heading)
	}
	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
