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

// Package logger is the central log for the application. Entries are tagged
// and consecutive identical entries are collapsed into a single entry with a
// repeat count.
//
// Log entries are made with the Log() and Logf() functions. The first
// argument is a Permission; logger.Allow is used when logging should always
// happen.
//
//	logger.Log(logger.Allow, "machineloader", "loaded 12 rules")
//
// The detail argument of Log() can be a string, an error or a fmt.Stringer.
//
// The log is bounded and older entries are forgotten. Entries can be echoed
// to an io.Writer as they are created with SetEcho().
package logger
