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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are typed (Bool, Int, String, Generic) and are
// registered with a Disk instance under a key. The Disk saves and loads the
// values to a plain text file, one value per line:
//
//	run.pacing :: 10ms
//
// Lines in the file for keys that have not been registered with the Disk
// instance are kept and are written back unchanged by Save(). This means that
// more than one Disk instance can use the same file without conflict.
//
// The values of the typed preferences are safe for concurrent access.
package prefs
