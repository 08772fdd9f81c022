// This file is part of k9.
//
// k9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// k9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with k9.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is the identity of the error. Sentinal patterns should be
// stored as a const string, suitably named and commented. For example, the
// console package declares:
//
//	const CommandNotFound = "console: command not found: %s"
//
// and reports a missing command with:
//
//	return curated.Errorf(CommandNotFound, name)
//
// The Is() function checks whether an error was created with a specific
// pattern:
//
//	if curated.Is(err, console.CommandNotFound) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(console.TooFewArguments, 1, 2)
//	f := curated.Errorf("dispatch: %v", e)
//
//	curated.Has(f, console.TooFewArguments) // true
//	curated.Is(f, console.TooFewArguments)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being 'expected' and 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not begin with
// duplicate adjacent parts. For example, wrapping a console error in another
// console error:
//
//	e := curated.Errorf("console: %v", curated.Errorf("console: bad input"))
//
// results in the message "console: bad input" and not "console: console: bad
// input". For the purposes of this package we think of chains as being
// composed of parts separated by the sub-string ': ' as suggested on p239 of
// "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors implement Unwrap() so that an uncurated error used as a
// placeholder value can be found with errors.Is() and errors.As() from the
// standard library.
package curated
