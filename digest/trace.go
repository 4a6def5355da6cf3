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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/turing/hardware/machine"
)

// Trace is an implementation of the Digest interface for machine snapshots.
type Trace struct {
	digest [sha1.Size]byte
	buffer []byte
	count  int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{
		buffer: make([]byte, 0, sha1.Size+256),
	}
}

// Hash implements the Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Trace) String() string {
	return dig.Hash()
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.count = 0
}

// Len returns the number of snapshots added since the last reset.
func (dig *Trace) Len() int {
	return dig.count
}

// Add the next snapshot of the trace.
func (dig *Trace) Add(snapshot machine.Snapshot) {
	dig.AddString(snapshot.String())
}

// AddString adds the next line of the trace.
func (dig *Trace) AddString(s string) {
	dig.buffer = dig.buffer[:0]
	dig.buffer = append(dig.buffer, dig.digest[:]...)
	dig.buffer = append(dig.buffer, s...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.count++
}
