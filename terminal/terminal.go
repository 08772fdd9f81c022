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

package terminal

import (
	"github.com/k9engine/k9/console/autocomplete"
)

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
// Not all terminal implementations will return UserInterrupt.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input, without the line ending. The
	// prompt is displayed if the terminal is interactive.
	TermRead(prompt string) (string, error)

	// IsInteractive() should return true for implementations that require
	// user interaction. Instances that don't expect user intervention should
	// return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the console's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. not all
	// terminal implementations will need to do anything.
	CleanUp()

	// Register an autocomplete engine to use for tab completion. Not all
	// implementations need to respond meaningfully to this.
	RegisterTabCompletion(*autocomplete.Engine)

	// Silence all output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is true.
	Silence(silenced bool)
}
