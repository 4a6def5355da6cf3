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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function.
//
// Errorf() takes a pattern string and a list of values. The pattern is
// stored alongside the values and is used to identify the error later on.
// For example, the tape package declares the pattern for an overrun error:
//
//	const Overrun = "tape: overrun (%s)"
//
// and returns the error with:
//
//	return curated.Errorf(Overrun, "right")
//
// Callers can then test for the condition with the Is() function:
//
//	if curated.Is(err, tape.Overrun) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. Errors are chained by passing an error as a value to
// Errorf():
//
//	return curated.Errorf(OffTape, err)
//
// In this example, curated.Is(err, tape.Overrun) is false but
// curated.Has(err, tape.Overrun) is true.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of this as the difference between 'expected' and
// 'unexpected' errors.
//
// The Error() implementation normalises the error chain by removing
// duplicate adjacent parts. Parts are the sub-strings separated by ": ". For
// example, chaining "load: %v" around "load: file not found" produces:
//
//	load: file not found
//
// and not:
//
//	load: load: file not found
//
// Curated errors also implement the Unwrap() method so the errors package
// in the standard library can see through the chain.
package curated
