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

// Package digest produces a cryptographic hash of a machine trace. The hash
// can be used to compare the trace of subsequent runs of the same machine. If
// a new hash differs from a previously recorded value then something has
// changed.
//
// The hash of each snapshot in the trace is chained with the hash of the
// previous snapshot so the final value depends on the whole trace and on the
// order of the snapshots.
//
// Note that the use of sha1 is fine for this application because this is not
// a cryptographic task.
package digest

// Digest implementations return a cryptographic hash of everything they have
// seen.
type Digest interface {
	Hash() string
	ResetDigest()
}
