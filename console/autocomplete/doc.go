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

// Package autocomplete tracks the state of a console input line and the
// command names that could complete it.
//
// The Engine is driven by the user interface. Every edit of the input line
// is passed to SetText(), which recomputes the list of candidates. Keyboard
// navigation is handled by the Up(), Down(), Tab() and Accept() functions.
// The Lines() function prepares a window of the candidate list for display
// when there isn't enough room to show every candidate.
//
// The Engine also keeps the history of submitted command lines. History is
// only browsed when the input line is empty and there are no candidates.
//
// An Engine is not safe for concurrent use. It should be accessed only from
// the goroutine that services the user interface.
package autocomplete
