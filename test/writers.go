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

package test

import (
	"fmt"
	"strings"
)

// CompareWriter buffers everything written to it. The buffer can be compared
// against an expected string.
type CompareWriter struct {
	buffer []byte
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

// Clear the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

// Compare buffer with the supplied string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

// Lines returns the buffer split into lines. The final newline does not
// produce an empty line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(string(tw.buffer), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}

// RingWriter keeps only the most recent bytes written to it.
type RingWriter struct {
	buffer  []byte
	size    int
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	if r.wrapped {
		return string(r.buffer[r.cursor:]) + string(r.buffer[:r.cursor])
	}
	return string(r.buffer[:r.cursor])
}

// Reset the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// only the tail of an oversized write can fit
	if len(p) > r.size {
		p = p[len(p)-r.size:]
	}

	for len(p) > 0 {
		c := copy(r.buffer[r.cursor:], p)
		p = p[c:]
		r.cursor += c
		if r.cursor == r.size {
			r.cursor = 0
			r.wrapped = true
		}
	}

	return n, nil
}
