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

// Package modalflag builds on the flag package of the standard library to
// handle program modes. Each mode can have its own set of flags and can be
// followed by further sub-modes.
//
// Arguments are given with NewArgs() and are then consumed by successive calls
// to Parse(). Between calls to Parse() the flags and sub-modes for the next
// level are declared:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DESCRIBE")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		limit := md.AddInt("limit", 0, "step limit")
//		p, err = md.Parse()
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default. It is selected if
// the next argument does not name a sub-mode. Sub-mode names are case
// insensitive and Mode() always returns them upper case.
//
// Path() returns every mode selected so far, joined with a slash. It is used
// to title help messages, which are written to Output when the -help flag is
// found.
package modalflag
